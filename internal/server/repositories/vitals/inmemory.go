package vitals

import (
	"context"

	"github.com/dmitrijs2005/hearttrack/internal/server/models"
)

// InMemoryRepository is an append-only list of readings in insertion order.
// Not safe for concurrent use; callers serialise access per session.
type InMemoryRepository struct {
	records []models.VitalsRecord
	nextID  int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(ctx context.Context, rec *models.VitalsRecord) (*models.VitalsRecord, error) {
	stored := *rec
	stored.ID = r.nextID
	r.records = append(r.records, stored)
	r.nextID++
	return &stored, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID int64) ([]models.VitalsRecord, error) {
	var out []models.VitalsRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]models.VitalsRecord, error) {
	out := make([]models.VitalsRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}
