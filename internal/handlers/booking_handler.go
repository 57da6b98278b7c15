package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	domain "github.com/sahelnejat/Luna/internal/domain/booking"
	"github.com/sahelnejat/Luna/internal/dto"
	"github.com/sahelnejat/Luna/internal/httperr"
	"github.com/sahelnejat/Luna/internal/httpresp"
	"github.com/sahelnejat/Luna/internal/models"
	ucBooking "github.com/sahelnejat/Luna/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	create *ucBooking.CreateBooking
	cancel *ucBooking.CancelBooking
	repo   domain.Repository
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	cancel *ucBooking.CancelBooking,
	repo domain.Repository,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		cancel: cancel,
		repo:   repo,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type BookingServiceRequest struct {
	Category string `json:"category"`
	Name     string `json:"name" binding:"required"`
	Price    string `json:"price"`
	Duration int    `json:"duration"`
}

type BookingClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Notes     string `json:"notes"`
}

type CreateBookingRequest struct {
	Services      []BookingServiceRequest `json:"services" binding:"required,min=1"`
	TotalDuration int                     `json:"total_duration"`
	TotalPriceMin string                  `json:"total_price_min"`
	Date          string                  `json:"date" binding:"required"` // yyyy-MM-dd
	Time          string                  `json:"time" binding:"required"`
	StylistID     int                     `json:"stylist_id" binding:"required"`
	StylistName   string                  `json:"stylist_name"`
	Client        BookingClientRequest    `json:"client" binding:"required"`
}

////////////////////////////////////////////////////////
// CREATE
////////////////////////////////////////////////////////

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	lines := make([]ucBooking.ServiceLineInput, 0, len(req.Services))
	for _, s := range req.Services {
		lines = append(lines, ucBooking.ServiceLineInput{
			Category: s.Category,
			Name:     s.Name,
			Price:    s.Price,
			Duration: s.Duration,
		})
	}

	b, err := h.create.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			Services:      lines,
			TotalDuration: req.TotalDuration,
			TotalPriceMin: req.TotalPriceMin,
			Date:          req.Date,
			Time:          req.Time,
			StylistID:     req.StylistID,
			StylistName:   req.StylistName,
			Client: ucBooking.ClientInput{
				FirstName: req.Client.FirstName,
				LastName:  req.Client.LastName,
				Email:     req.Client.Email,
				Phone:     req.Client.Phone,
				Notes:     req.Client.Notes,
			},
		},
	)
	if err != nil {
		mapCreateBookingErrors(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"id":              b.ID,
		"reference":       b.Reference,
		"status":          b.Status,
		"services":        b.Services,
		"total_duration":  b.TotalDuration,
		"total_price_min": b.TotalPriceMin,
		"date":            b.Date,
		"time":            b.Time,
		"stylist_name":    b.StylistName,
		"client_name":     fmt.Sprintf("%s %s", b.ClientFirstName, b.ClientLastName),
		"client_email":    b.ClientEmail,
		"created_at":      b.CreatedAt,
	})
}

func mapCreateBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "no_services"):
		httperr.BadRequest(c, "no_services", "At least one service is required.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
	case httperr.IsBusiness(err, "date_in_past"):
		httperr.BadRequest(c, "date_in_past", "The requested date has already passed.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Invalid time slot.")
	case httperr.IsBusiness(err, "stylist_not_found"):
		httperr.BadRequest(c, "stylist_not_found", "Unknown stylist.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
	}
}

////////////////////////////////////////////////////////
// READ (admin list + public lookup)
////////////////////////////////////////////////////////

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.ListBookings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingListDTO(b))
	}

	httpresp.List(c, out)
}

func toBookingListDTO(b models.Booking) dto.BookingListDTO {
	return dto.BookingListDTO{
		ID:            b.ID,
		Reference:     b.Reference,
		Status:        b.Status,
		Date:          b.Date,
		Time:          b.Time,
		StylistName:   b.StylistName,
		ClientName:    fmt.Sprintf("%s %s", b.ClientFirstName, b.ClientLastName),
		ClientEmail:   b.ClientEmail,
		ServiceCount:  len(b.Services),
		TotalDuration: b.TotalDuration,
		TotalPriceMin: b.TotalPriceMin,
		CreatedAt:     b.CreatedAt,
	}
}

func (h *BookingHandler) GetByReference(c *gin.Context) {
	reference := c.Param("reference")

	b, err := h.repo.GetBookingByReference(c.Request.Context(), reference)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	httpresp.OK(c, b)
}

////////////////////////////////////////////////////////
// CANCEL (admin)
////////////////////////////////////////////////////////

func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	b, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.Conflict(c, "invalid_state", "Booking is not cancellable.")
		default:
			httperr.Internal(c, "failed_to_cancel_booking", "Failed to cancel booking.")
		}
		return
	}

	httpresp.OK(c, b)
}
