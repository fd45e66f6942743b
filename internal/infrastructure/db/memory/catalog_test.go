package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulysse/cms-api/internal/core/domain"
)

func TestCatalog_SeedLookups(t *testing.T) {
	c := NewCatalog(Seed())
	ctx := context.Background()

	services, err := c.Services(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 4)

	svc, err := c.ServiceByID(ctx, "tokenization")
	require.NoError(t, err)
	assert.Equal(t, "Tokenization Strategy", svc.Title)

	_, err = c.ServiceByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)

	_, err = c.InsightByID(ctx, "9")
	assert.ErrorIs(t, err, domain.ErrInsightNotFound)

	_, err = c.CaseStudyByID(ctx, "9")
	assert.ErrorIs(t, err, domain.ErrCaseStudyNotFound)

	member, err := c.TeamMemberByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "#", member.Social["linkedin"])

	_, err = c.TeamMemberByID(ctx, "2")
	assert.ErrorIs(t, err, domain.ErrTeamMemberNotFound)
}

func TestCatalog_AddServiceDefaults(t *testing.T) {
	c := NewCatalog(Seed())

	s, err := c.AddService(context.Background(), domain.Service{Title: "Audit"})
	require.NoError(t, err)
	assert.Equal(t, "service_5", s.ID)
	assert.NotNil(t, s.Details)

	s, err = c.AddService(context.Background(), domain.Service{ID: "custom", Title: "Custom"})
	require.NoError(t, err)
	assert.Equal(t, "custom", s.ID)

	got, err := c.ServiceByID(context.Background(), "custom")
	require.NoError(t, err)
	assert.Equal(t, "Custom", got.Title)
}

func TestCatalog_AddInsightAssignsPositionalID(t *testing.T) {
	c := NewCatalog(Seed())

	in, err := c.AddInsight(context.Background(), domain.Insight{ID: "ignored", Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "4", in.ID)
}

func TestCatalog_ReadsReturnCopies(t *testing.T) {
	c := NewCatalog(Seed())
	services, err := c.Services(context.Background())
	require.NoError(t, err)
	services[0].Title = "changed"

	again, err := c.Services(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Blockchain Advisory", again[0].Title)
}

func TestCatalog_EmptySeed(t *testing.T) {
	c := NewCatalog(CatalogSeed{})
	team, err := c.Team(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, team)
	assert.Empty(t, team)
}
