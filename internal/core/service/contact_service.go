package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ulysse/cms-api/internal/api/metrics"
	"github.com/ulysse/cms-api/internal/core/domain"
	"github.com/ulysse/cms-api/internal/core/ports"
)

// ContactService records inquiry submissions. With no repository the
// submission is only logged.
type ContactService struct {
	repo ports.ContactRepository
	log  zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, log: log}
}

func (s *ContactService) Process(ctx context.Context, sub domain.ContactSubmission) error {
	s.log.Info().
		Str("submission_id", sub.ID).
		Str("email", sub.Email).
		Str("inquiry_type", sub.InquiryType).
		Msg("contact submission received")

	if s.repo == nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("logged").Inc()
		return nil
	}

	if err := s.repo.Save(ctx, &sub); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("save contact submission %s: %w", sub.ID, err)
	}
	metrics.ContactSubmissionsTotal.WithLabelValues("stored").Inc()
	return nil
}
