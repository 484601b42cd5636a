package vitals

import (
	"context"

	"github.com/dmitrijs2005/hearttrack/internal/server/models"
)

type Repository interface {
	// Create stores rec under the next record id and returns the stored copy.
	Create(ctx context.Context, rec *models.VitalsRecord) (*models.VitalsRecord, error)
	ListByUser(ctx context.Context, userID int64) ([]models.VitalsRecord, error)
	ListAll(ctx context.Context) ([]models.VitalsRecord, error)
}
