package wizard

import (
	"time"

	"github.com/sahelnejat/Luna/internal/catalog"
)

// ServiceKey identifies a selected service inside the draft. A service can
// be added at most once per (category, item) pair.
type ServiceKey struct {
	CategoryID int
	Name       string
}

// SelectedService is a catalog item annotated with its source category.
type SelectedService struct {
	Key      ServiceKey
	Category string
	Name     string
	Price    string
	Duration int
}

type ClientInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Notes     string
}

type Totals struct {
	DurationMinutes int
	MinPrice        int
}

// Draft is the in-progress booking being assembled by the wizard. It is the
// single mutable aggregate of a wizard session; there is no other shared
// state.
type Draft struct {
	services  []SelectedService
	date      *time.Time
	timeLabel string
	stylist   *catalog.Stylist
	client    ClientInfo
}

func NewDraft() *Draft {
	return &Draft{}
}

// AddService inserts the item keyed by (category.ID, item.Name). Adding a
// service that is already selected is a no-op, not an error.
func (d *Draft) AddService(category catalog.ServiceCategory, item catalog.ServiceItem) {
	key := ServiceKey{CategoryID: category.ID, Name: item.Name}
	if d.HasService(key) {
		return
	}
	d.services = append(d.services, SelectedService{
		Key:      key,
		Category: category.Category,
		Name:     item.Name,
		Price:    item.Price,
		Duration: item.Duration,
	})
}

// RemoveService removes by key; removing an absent service is a no-op.
func (d *Draft) RemoveService(key ServiceKey) {
	for i, s := range d.services {
		if s.Key == key {
			d.services = append(d.services[:i], d.services[i+1:]...)
			return
		}
	}
}

func (d *Draft) HasService(key ServiceKey) bool {
	for _, s := range d.services {
		if s.Key == key {
			return true
		}
	}
	return false
}

// Services returns the selected services in insertion order.
func (d *Draft) Services() []SelectedService {
	out := make([]SelectedService, len(d.services))
	copy(out, d.services)
	return out
}

func (d *Draft) Date() (time.Time, bool) {
	if d.date == nil {
		return time.Time{}, false
	}
	return *d.date, true
}

func (d *Draft) TimeLabel() string {
	return d.timeLabel
}

func (d *Draft) Stylist() (catalog.Stylist, bool) {
	if d.stylist == nil {
		return catalog.Stylist{}, false
	}
	return *d.stylist, true
}

func (d *Draft) Client() ClientInfo {
	return d.client
}

// Totals derives the running duration and minimum-price totals. Recomputed
// on every call; the draft mutates rarely enough that caching buys nothing.
func (d *Draft) Totals() Totals {
	var t Totals
	for _, s := range d.services {
		t.DurationMinutes += s.Duration
		t.MinPrice += catalog.MinPrice(s.Price)
	}
	return t
}
