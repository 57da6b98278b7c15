package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/sahelnejat/Luna/internal/domain/contact"
	"github.com/sahelnejat/Luna/internal/httperr"
	"github.com/sahelnejat/Luna/internal/httpresp"
	ucContact "github.com/sahelnejat/Luna/internal/usecase/contact"
	"github.com/sahelnejat/Luna/internal/validators"
)

type ContactHandler struct {
	create *ucContact.CreateMessage
	repo   domain.Repository
}

func NewContactHandler(create *ucContact.CreateMessage, repo domain.Repository) *ContactHandler {
	return &ContactHandler{create: create, repo: repo}
}

type CreateContactRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid contact data.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	m, err := h.create.Execute(
		c.Request.Context(),
		ucContact.CreateMessageInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     email,
			Subject:   req.Subject,
			Message:   req.Message,
		},
	)
	if err != nil {
		httperr.Internal(c, "failed_to_submit_contact", "Failed to submit contact form.")
		return
	}

	httpresp.Created(c, gin.H{
		"id":         m.ID,
		"status":     "received",
		"message":    "Thank you for your message. We'll get back to you soon.",
		"created_at": m.CreatedAt,
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.repo.ListMessages(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_contacts", "Failed to list contact messages.")
		return
	}

	httpresp.List(c, messages)
}
