package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahelnejat/Luna/internal/audit"
	domain "github.com/sahelnejat/Luna/internal/domain/contact"
	"github.com/sahelnejat/Luna/internal/models"
)

type fakeRepo struct {
	created   []*models.ContactMessage
	createErr error
}

func (r *fakeRepo) CreateMessage(ctx context.Context, m *models.ContactMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, m)
	return nil
}

func (r *fakeRepo) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	out := make([]models.ContactMessage, 0, len(r.created))
	for _, m := range r.created {
		out = append(out, *m)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func TestCreateMessage(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewCreateMessage(repo, audit.NewDispatcher(nil))

	m, err := uc.Execute(context.Background(), CreateMessageInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Subject:   "Hours",
		Message:   "Are you open Sundays?",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "new", m.Status)
	assert.Equal(t, "jane@x.com", m.Email)
	require.Len(t, repo.created, 1)
	assert.Same(t, m, repo.created[0])
}

func TestCreateMessageRepoError(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("insert failed")}
	uc := NewCreateMessage(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), CreateMessageInput{Email: "jane@x.com"})
	assert.EqualError(t, err, "insert failed")
}
