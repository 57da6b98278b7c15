package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sahelnejat/Luna/internal/audit"
	"github.com/sahelnejat/Luna/internal/cache"
	"github.com/sahelnejat/Luna/internal/catalog"
	domain "github.com/sahelnejat/Luna/internal/domain/booking"
	"github.com/sahelnejat/Luna/internal/httperr"
	"github.com/sahelnejat/Luna/internal/logger"
	"github.com/sahelnejat/Luna/internal/models"
	"github.com/sahelnejat/Luna/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ServiceLineInput struct {
	Category string
	Name     string
	Price    string
	Duration int
}

type ClientInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Notes     string
}

type CreateBookingInput struct {
	Services      []ServiceLineInput
	TotalDuration int
	TotalPriceMin string

	Date string // yyyy-MM-dd
	Time string

	StylistID   int
	StylistName string

	Client ClientInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
	tz    string
}

func NewCreateBooking(
	repo domain.Repository,
	availability *cache.Availability,
	dispatcher *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		cache: availability,
		audit: dispatcher,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if len(in.Services) == 0 {
		return nil, httperr.ErrBusiness("no_services")
	}

	day, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	today := timezone.StartOfDay(timezone.NowIn(uc.tz))
	if day.Before(today) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	if !catalog.IsValidTimeSlot(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	stylist, ok := catalog.FindStylist(in.StylistID)
	if !ok {
		return nil, httperr.ErrBusiness("stylist_not_found")
	}

	lines := make([]models.BookingService, 0, len(in.Services))
	totalDuration := 0
	totalMin := 0
	for _, s := range in.Services {
		lines = append(lines, models.BookingService{
			Category: s.Category,
			Name:     s.Name,
			Price:    s.Price,
			Duration: s.Duration,
		})
		totalDuration += s.Duration
		totalMin += catalog.MinPrice(s.Price)
	}

	// The wizard sends its own totals; fall back to the recomputed ones if
	// the caller left them out.
	if in.TotalDuration > 0 {
		totalDuration = in.TotalDuration
	}
	totalPriceMin := in.TotalPriceMin
	if totalPriceMin == "" {
		totalPriceMin = fmt.Sprintf("$%d+", totalMin)
	}

	b := &models.Booking{
		ID:        uuid.NewString(),
		Reference: domain.NewReference(timezone.NowIn(uc.tz)),
		Status:    string(domain.InitialStatus()),

		Services: lines,

		TotalDuration: totalDuration,
		TotalPriceMin: totalPriceMin,

		Date: in.Date,
		Time: in.Time,

		StylistID:   stylist.ID,
		StylistName: stylist.Name,

		ClientFirstName: in.Client.FirstName,
		ClientLastName:  in.Client.LastName,
		ClientEmail:     in.Client.Email,
		ClientPhone:     in.Client.Phone,
		ClientNotes:     in.Client.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.InvalidateDate(ctx, b.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	logger.Get().Info("booking created",
		zap.String("reference", b.Reference),
		zap.String("client_email", b.ClientEmail))

	return b, nil
}
