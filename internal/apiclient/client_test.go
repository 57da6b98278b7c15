package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahelnejat/Luna/internal/catalog"
	"github.com/sahelnejat/Luna/internal/wizard"
)

func TestCreateBooking(t *testing.T) {
	var got BookingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(BookingResponse{
			ID:        "b1",
			Reference: "LUNA-ABC123",
			Status:    "confirmed",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.CreateBooking(context.Background(), BookingRequest{
		Services: []ServiceLine{
			{Category: "Haircuts & Styling", Name: "HairCut", Price: "$50+", Duration: 45},
		},
		TotalDuration: 45,
		TotalPriceMin: "$50+",
		Date:          "2026-03-13",
		Time:          "2:00 PM",
		StylistID:     2,
		StylistName:   "Emma Chen",
		Client:        ClientInfo{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Phone: "6135551234"},
	})
	require.NoError(t, err)
	assert.Equal(t, "LUNA-ABC123", resp.Reference)
	assert.Equal(t, "confirmed", resp.Status)

	assert.Equal(t, "2026-03-13", got.Date)
	assert.Equal(t, 2, got.StylistID)
	require.Len(t, got.Services, 1)
	assert.Equal(t, "HairCut", got.Services[0].Name)
}

func TestCreateBookingBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"date_in_past"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateBooking(context.Background(), BookingRequest{})
	require.Error(t, err)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "create_booking", subErr.Op)
	assert.Equal(t, http.StatusUnprocessableEntity, subErr.StatusCode)
}

func TestCreateBookingTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, WithTimeout(time.Second))
	_, err := c.CreateBooking(context.Background(), BookingRequest{})

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Zero(t, subErr.StatusCode)
	assert.Error(t, subErr.Unwrap())
}

func TestCreateContactMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ContactResponse{ID: "m1", Status: "received"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.CreateContactMessage(context.Background(), ContactRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Subject:   "Hours",
		Message:   "Are you open Sundays?",
	})
	require.NoError(t, err)
	assert.Equal(t, "received", resp.Status)
}

func TestSubmitAdaptsSnapshot(t *testing.T) {
	var got BookingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(BookingResponse{Reference: "LUNA-QWERTY"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ref, err := c.Submit(context.Background(), wizard.Submission{
		Services: []wizard.SelectedService{
			{Category: "Color Services", Name: "Full Color", Price: "$125+", Duration: 90},
		},
		TotalDuration: 90,
		TotalPriceMin: "$125+",
		Date:          time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		Time:          "2:00 PM",
		Stylist:       catalog.Stylist{ID: 2, Name: "Emma Chen"},
		Client:        wizard.ClientInfo{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Phone: "6135551234"},
	})
	require.NoError(t, err)
	assert.Equal(t, "LUNA-QWERTY", ref)

	assert.Equal(t, "2026-03-13", got.Date)
	assert.Equal(t, "Emma Chen", got.StylistName)
	assert.Equal(t, "$125+", got.TotalPriceMin)
}

func TestSubmitPropagatesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	ref, err := c.Submit(context.Background(), wizard.Submission{
		Date: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	})
	assert.Empty(t, ref)
	require.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))
}
