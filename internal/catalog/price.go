package catalog

import (
	"regexp"
	"strconv"
)

var priceRe = regexp.MustCompile(`\$(\d+)`)

// MinPrice extracts the numeric value from a price label like "$50+" or
// "$150". Labels without a $<digits> component ("Free", "Consultation")
// contribute zero to estimated totals.
func MinPrice(label string) int {
	m := priceRe.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
