package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/ulysse/cms-api/internal/core/domain"
)

// Catalog is the in-process content store. Reads return copies so callers
// cannot mutate the shared collections.
type Catalog struct {
	mu          sync.RWMutex
	services    []domain.Service
	insights    []domain.Insight
	caseStudies []domain.CaseStudy
	team        []domain.TeamMember
}

// NewCatalog returns a catalog holding seed. Pass Seed() for the site's
// published content or the zero value for an empty catalog.
func NewCatalog(seed CatalogSeed) *Catalog {
	return &Catalog{
		services:    append([]domain.Service(nil), seed.Services...),
		insights:    append([]domain.Insight(nil), seed.Insights...),
		caseStudies: append([]domain.CaseStudy(nil), seed.CaseStudies...),
		team:        append([]domain.TeamMember(nil), seed.Team...),
	}
}

func (c *Catalog) Services(context.Context) ([]domain.Service, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Service{}, c.services...), nil
}

func (c *Catalog) ServiceByID(_ context.Context, id string) (*domain.Service, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.services {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

// AddService appends s. An empty ID becomes service_<n+1>.
func (c *Catalog) AddService(_ context.Context, s domain.Service) (domain.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s.ID == "" {
		s.ID = fmt.Sprintf("service_%d", len(c.services)+1)
	}
	if s.Details == nil {
		s.Details = []string{}
	}
	c.services = append(c.services, s)
	return s, nil
}

func (c *Catalog) Insights(context.Context) ([]domain.Insight, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Insight{}, c.insights...), nil
}

func (c *Catalog) InsightByID(_ context.Context, id string) (*domain.Insight, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, in := range c.insights {
		if in.ID == id {
			return &in, nil
		}
	}
	return nil, domain.ErrInsightNotFound
}

// AddInsight appends in. Insight IDs are always positional (n+1).
func (c *Catalog) AddInsight(_ context.Context, in domain.Insight) (domain.Insight, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	in.ID = strconv.Itoa(len(c.insights) + 1)
	c.insights = append(c.insights, in)
	return in, nil
}

func (c *Catalog) CaseStudies(context.Context) ([]domain.CaseStudy, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.CaseStudy{}, c.caseStudies...), nil
}

func (c *Catalog) CaseStudyByID(_ context.Context, id string) (*domain.CaseStudy, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cs := range c.caseStudies {
		if cs.ID == id {
			return &cs, nil
		}
	}
	return nil, domain.ErrCaseStudyNotFound
}

func (c *Catalog) Team(context.Context) ([]domain.TeamMember, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.TeamMember{}, c.team...), nil
}

func (c *Catalog) TeamMemberByID(_ context.Context, id string) (*domain.TeamMember, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.team {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, domain.ErrTeamMemberNotFound
}
