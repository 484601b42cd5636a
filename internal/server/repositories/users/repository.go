package users

import (
	"context"

	"github.com/dmitrijs2005/hearttrack/internal/server/models"
)

type Repository interface {
	// Create stores user under the next id. A user whose email matches
	// case-insensitively yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}
