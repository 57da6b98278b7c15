package booking

import (
	"context"
	"time"

	"github.com/sahelnejat/Luna/internal/cache"
	"github.com/sahelnejat/Luna/internal/catalog"
	domain "github.com/sahelnejat/Luna/internal/domain/booking"
	"github.com/sahelnejat/Luna/internal/httperr"
)

type AvailabilityInput struct {
	Date      string // yyyy-MM-dd
	StylistID int    // 0 or the "Any Available" id means no stylist filter
}

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewGetAvailability(repo domain.Repository, availability *cache.Availability) *GetAvailability {
	return &GetAvailability{repo: repo, cache: availability}
}

// Execute returns the time-slot labels still open on a date: the full slot
// enumeration minus times already booked. A request for a specific stylist
// only counts that stylist's bookings; "Any Available" counts them all.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	stylistID := in.StylistID
	if stylistID == catalog.AnyAvailableStylistID {
		stylistID = 0
	}

	booked, ok := uc.cache.GetBookedTimes(ctx, in.Date, stylistID)
	if !ok {
		var err error
		booked, err = uc.repo.ListBookedTimes(ctx, in.Date, stylistID)
		if err != nil {
			return nil, err
		}
		uc.cache.SetBookedTimes(ctx, in.Date, stylistID, booked)
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	available := make([]string, 0, len(catalog.TimeSlots))
	for _, slot := range catalog.TimeSlots {
		if !taken[slot] {
			available = append(available, slot)
		}
	}
	return available, nil
}
