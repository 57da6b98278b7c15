package booking

import (
	"context"

	"github.com/sahelnejat/Luna/internal/audit"
	"github.com/sahelnejat/Luna/internal/cache"
	domain "github.com/sahelnejat/Luna/internal/domain/booking"
	"github.com/sahelnejat/Luna/internal/httperr"
	"github.com/sahelnejat/Luna/internal/models"
	"github.com/sahelnejat/Luna/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
	tz    string
}

func NewCancelBooking(
	repo domain.Repository,
	availability *cache.Availability,
	dispatcher *audit.Dispatcher,
	tz string,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		cache: availability,
		audit: dispatcher,
		tz:    tz,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDate(ctx, b.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
