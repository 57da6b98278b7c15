package booking

import (
	"strconv"
	"strings"
	"time"
)

// NewReference builds a booking reference like LUNA-ABC123: the last six
// characters of the base36-encoded millisecond timestamp.
func NewReference(now time.Time) string {
	encoded := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	if len(encoded) > 6 {
		encoded = encoded[len(encoded)-6:]
	}
	return "LUNA-" + encoded
}
