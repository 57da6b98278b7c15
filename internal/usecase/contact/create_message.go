package contact

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sahelnejat/Luna/internal/audit"
	domain "github.com/sahelnejat/Luna/internal/domain/contact"
	"github.com/sahelnejat/Luna/internal/logger"
	"github.com/sahelnejat/Luna/internal/models"
)

type CreateMessageInput struct {
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
}

type CreateMessage struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateMessage(repo domain.Repository, dispatcher *audit.Dispatcher) *CreateMessage {
	return &CreateMessage{repo: repo, audit: dispatcher}
}

func (uc *CreateMessage) Execute(
	ctx context.Context,
	in CreateMessageInput,
) (*models.ContactMessage, error) {

	m := &models.ContactMessage{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    "new",
	}

	if err := uc.repo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "contact_received",
		Entity:   "contact_message",
		EntityID: m.ID,
	})

	logger.Get().Info("contact form submitted",
		zap.String("email", m.Email))

	return m, nil
}
