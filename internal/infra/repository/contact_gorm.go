package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/sahelnejat/Luna/internal/domain/contact"
	"github.com/sahelnejat/Luna/internal/models"
)

type ContactGormRepository struct {
	db *gorm.DB
}

func NewContactGormRepository(db *gorm.DB) *ContactGormRepository {
	return &ContactGormRepository{db: db}
}

func (r *ContactGormRepository) CreateMessage(
	ctx context.Context,
	m *models.ContactMessage,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ContactGormRepository) ListMessages(
	ctx context.Context,
) ([]models.ContactMessage, error) {

	var messages []models.ContactMessage
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Compile-time check
var _ domain.Repository = (*ContactGormRepository)(nil)
