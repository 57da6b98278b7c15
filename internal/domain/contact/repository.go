package contact

import (
	"context"

	"github.com/sahelnejat/Luna/internal/models"
)

type Repository interface {
	CreateMessage(
		ctx context.Context,
		m *models.ContactMessage,
	) error

	ListMessages(
		ctx context.Context,
	) ([]models.ContactMessage, error)
}
