package ports

import (
	"context"

	"github.com/ulysse/cms-api/internal/core/domain"
)

// ContentRepository holds the site's content collections. Add* methods
// assign an ID when the caller leaves it empty.
type ContentRepository interface {
	Services(ctx context.Context) ([]domain.Service, error)
	ServiceByID(ctx context.Context, id string) (*domain.Service, error)
	AddService(ctx context.Context, s domain.Service) (domain.Service, error)

	Insights(ctx context.Context) ([]domain.Insight, error)
	InsightByID(ctx context.Context, id string) (*domain.Insight, error)
	AddInsight(ctx context.Context, in domain.Insight) (domain.Insight, error)

	CaseStudies(ctx context.Context) ([]domain.CaseStudy, error)
	CaseStudyByID(ctx context.Context, id string) (*domain.CaseStudy, error)

	Team(ctx context.Context) ([]domain.TeamMember, error)
	TeamMemberByID(ctx context.Context, id string) (*domain.TeamMember, error)
}

// CreateServiceInput carries the fields accepted when adding a service.
type CreateServiceInput struct {
	ID          string
	Title       string
	Description string
	Details     []string
}

// CreateInsightInput carries the fields accepted when adding an insight.
type CreateInsightInput struct {
	Title    string
	Category string
	ReadTime string
	Excerpt  string
	ImageURL string
}

// ContentService exposes read access to the catalog plus the admin-only
// create operations.
type ContentService interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
	CreateService(ctx context.Context, in CreateServiceInput) (domain.Service, error)

	ListInsights(ctx context.Context) ([]domain.Insight, error)
	GetInsight(ctx context.Context, id string) (*domain.Insight, error)
	InsightsByCategory(ctx context.Context, category string) ([]domain.Insight, error)
	CreateInsight(ctx context.Context, in CreateInsightInput) (domain.Insight, error)

	ListCaseStudies(ctx context.Context) ([]domain.CaseStudy, error)
	GetCaseStudy(ctx context.Context, id string) (*domain.CaseStudy, error)

	ListTeam(ctx context.Context) ([]domain.TeamMember, error)
	GetTeamMember(ctx context.Context, id string) (*domain.TeamMember, error)

	// ContentByType returns one of the collections by its CMS name.
	ContentByType(ctx context.Context, contentType string) (any, error)
}
