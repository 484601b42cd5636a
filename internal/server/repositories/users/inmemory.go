package users

import (
	"context"

	"github.com/dmitrijs2005/hearttrack/internal/common"
	"github.com/dmitrijs2005/hearttrack/internal/server/models"
)

// InMemoryRepository keeps users in insertion order. It is owned by exactly
// one session and is not safe for concurrent use.
type InMemoryRepository struct {
	users  []models.User
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if _, err := r.GetUserByEmail(ctx, user.Email); err == nil {
		return nil, common.ErrorAlreadyExists
	}

	u := *user
	u.ID = r.nextID
	r.users = append(r.users, u)
	r.nextID++

	return &u, nil
}

func (r *InMemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	key := models.NormalizeEmail(email)
	for i := range r.users {
		if models.NormalizeEmail(r.users[i].Email) == key {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}
