package service

import (
	"context"
	"time"

	"github.com/ulysse/cms-api/internal/core/domain"
	"github.com/ulysse/cms-api/internal/core/ports"
)

const (
	insightDateLayout = "Jan 02, 2006"
	defaultReadTime   = "5 min read"
)

// ContentService serves the site catalog and the admin create operations.
type ContentService struct {
	repo ports.ContentRepository
	now  func() time.Time
}

func NewContentService(repo ports.ContentRepository) *ContentService {
	return &ContentService{repo: repo, now: time.Now}
}

func (s *ContentService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.repo.Services(ctx)
}

func (s *ContentService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.ServiceByID(ctx, id)
}

func (s *ContentService) CreateService(ctx context.Context, in ports.CreateServiceInput) (domain.Service, error) {
	details := in.Details
	if details == nil {
		details = []string{}
	}
	return s.repo.AddService(ctx, domain.Service{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Details:     details,
	})
}

func (s *ContentService) ListInsights(ctx context.Context) ([]domain.Insight, error) {
	return s.repo.Insights(ctx)
}

func (s *ContentService) GetInsight(ctx context.Context, id string) (*domain.Insight, error) {
	return s.repo.InsightByID(ctx, id)
}

// InsightsByCategory filters on an exact, case-sensitive category match. No
// match yields an empty list.
func (s *ContentService) InsightsByCategory(ctx context.Context, category string) ([]domain.Insight, error) {
	all, err := s.repo.Insights(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Insight{}
	for _, in := range all {
		if in.Category == category {
			out = append(out, in)
		}
	}
	return out, nil
}

// CreateInsight stamps the insight with today's date. The repository assigns
// the ID.
func (s *ContentService) CreateInsight(ctx context.Context, in ports.CreateInsightInput) (domain.Insight, error) {
	readTime := in.ReadTime
	if readTime == "" {
		readTime = defaultReadTime
	}
	return s.repo.AddInsight(ctx, domain.Insight{
		Title:    in.Title,
		Category: in.Category,
		Date:     s.now().Format(insightDateLayout),
		ReadTime: readTime,
		Excerpt:  in.Excerpt,
		ImageURL: in.ImageURL,
	})
}

func (s *ContentService) ListCaseStudies(ctx context.Context) ([]domain.CaseStudy, error) {
	return s.repo.CaseStudies(ctx)
}

func (s *ContentService) GetCaseStudy(ctx context.Context, id string) (*domain.CaseStudy, error) {
	return s.repo.CaseStudyByID(ctx, id)
}

func (s *ContentService) ListTeam(ctx context.Context) ([]domain.TeamMember, error) {
	return s.repo.Team(ctx)
}

func (s *ContentService) GetTeamMember(ctx context.Context, id string) (*domain.TeamMember, error) {
	return s.repo.TeamMemberByID(ctx, id)
}

func (s *ContentService) ContentByType(ctx context.Context, contentType string) (any, error) {
	switch contentType {
	case domain.ContentServices:
		return s.repo.Services(ctx)
	case domain.ContentInsights:
		return s.repo.Insights(ctx)
	case domain.ContentCaseStudies:
		return s.repo.CaseStudies(ctx)
	case domain.ContentTeam:
		return s.repo.Team(ctx)
	default:
		return nil, domain.ErrContentTypeNotFound
	}
}
