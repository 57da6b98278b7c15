package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sahelnejat/Luna/internal/catalog"
	"github.com/sahelnejat/Luna/internal/httperr"
	ucBooking "github.com/sahelnejat/Luna/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type CatalogHandler struct {
	availability *ucBooking.GetAvailability
}

func NewCatalogHandler(availability *ucBooking.GetAvailability) *CatalogHandler {
	return &CatalogHandler{availability: availability}
}

////////////////////////////////////////////////////////
// REFERENCE DATA
////////////////////////////////////////////////////////

func (h *CatalogHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Luna Hair Salon API",
		"status":  "running",
	})
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.Services})
}

func (h *CatalogHandler) ListStylists(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stylists": catalog.Stylists})
}

////////////////////////////////////////////////////////
// TIME SLOTS
////////////////////////////////////////////////////////

func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "A date is required.")
		return
	}

	stylistID := 0
	if raw := c.Query("stylist_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist.")
			return
		}
		stylistID = id
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		ucBooking.AvailabilityInput{
			Date:      date,
			StylistID: stylistID,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "availability_failed", "Failed to compute available times.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":            date,
		"stylist_id":      stylistID,
		"available_slots": slots,
	})
}
