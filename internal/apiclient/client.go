// Package apiclient is the HTTP client for the salon booking API. It is the
// submission side of the booking funnel: one request per user-initiated
// action, no retries, no backoff.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sahelnejat/Luna/internal/wizard"
)

// ServiceLine is one selected service as sent over the wire.
type ServiceLine struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Duration int    `json:"duration"`
}

type ClientInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// BookingRequest is the body of POST /api/bookings.
type BookingRequest struct {
	Services      []ServiceLine `json:"services"`
	TotalDuration int           `json:"total_duration"`
	TotalPriceMin string        `json:"total_price_min"`
	Date          string        `json:"date"` // yyyy-MM-dd
	Time          string        `json:"time"`
	StylistID     int           `json:"stylist_id"`
	StylistName   string        `json:"stylist_name"`
	Client        ClientInfo    `json:"client"`
}

// BookingResponse is the success payload; only Reference is required.
type BookingResponse struct {
	ID          string `json:"id"`
	Reference   string `json:"reference"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	StylistName string `json:"stylist_name"`
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

type ContactResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SubmissionError wraps any transport or backend failure. The backend's
// error detail is not structured; callers should treat it as opaque and
// offer a manual retry.
type SubmissionError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Client talks to the salon API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateBooking posts a finalized booking and returns the backend response.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*BookingResponse, error) {
	var resp BookingResponse
	if err := c.post(ctx, "/api/bookings", "create_booking", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateContactMessage posts a contact-form inquiry.
func (c *Client) CreateContactMessage(ctx context.Context, req ContactRequest) (*ContactResponse, error) {
	var resp ContactResponse
	if err := c.post(ctx, "/api/contact", "create_contact", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path, op string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &SubmissionError{Op: op, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &SubmissionError{Op: op, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &SubmissionError{Op: op, Err: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		io.Copy(io.Discard, httpResp.Body)
		return &SubmissionError{Op: op, StatusCode: httpResp.StatusCode}
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return &SubmissionError{Op: op, Err: err}
	}
	return nil
}

// Submit adapts the wizard's draft snapshot to the wire format. It makes
// Client satisfy wizard.Submitter.
func (c *Client) Submit(ctx context.Context, s wizard.Submission) (string, error) {
	lines := make([]ServiceLine, 0, len(s.Services))
	for _, svc := range s.Services {
		lines = append(lines, ServiceLine{
			Category: svc.Category,
			Name:     svc.Name,
			Price:    svc.Price,
			Duration: svc.Duration,
		})
	}

	resp, err := c.CreateBooking(ctx, BookingRequest{
		Services:      lines,
		TotalDuration: s.TotalDuration,
		TotalPriceMin: s.TotalPriceMin,
		Date:          s.Date.Format("2006-01-02"),
		Time:          s.Time,
		StylistID:     s.Stylist.ID,
		StylistName:   s.Stylist.Name,
		Client: ClientInfo{
			FirstName: s.Client.FirstName,
			LastName:  s.Client.LastName,
			Email:     s.Client.Email,
			Phone:     s.Client.Phone,
			Notes:     s.Client.Notes,
		},
	})
	if err != nil {
		return "", err
	}
	return resp.Reference, nil
}

var _ wizard.Submitter = (*Client)(nil)
