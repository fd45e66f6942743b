package ports

import (
	"context"

	"github.com/ulysse/cms-api/internal/core/domain"
)

// ContactRepository persists inquiry form submissions.
type ContactRepository interface {
	Save(ctx context.Context, sub *domain.ContactSubmission) error
}

// ContactService handles a submission once it has been accepted.
type ContactService interface {
	Process(ctx context.Context, sub domain.ContactSubmission) error
}
