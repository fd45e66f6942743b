package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ulysse/cms-api/internal/core/domain"
)

const contactCollection = "contact_submissions"

type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{col: db.Collection(contactCollection)}
}

// Save inserts one submission document keyed by its reference id.
func (r *ContactRepository) Save(ctx context.Context, sub *domain.ContactSubmission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}
