package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ulysse/cms-api/internal/core/domain"
	"github.com/ulysse/cms-api/internal/core/ports"
	"github.com/ulysse/cms-api/internal/infrastructure/db/memory"
)

func newTestContentService(now time.Time) *ContentService {
	svc := NewContentService(memory.NewCatalog(memory.Seed()))
	svc.now = func() time.Time { return now }
	return svc
}

func TestContentService_CreateInsightDefaults(t *testing.T) {
	svc := newTestContentService(time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC))

	in, err := svc.CreateInsight(context.Background(), ports.CreateInsightInput{Title: "Grid", Category: "Strategy"})
	if err != nil {
		t.Fatalf("CreateInsight returned error: %v", err)
	}
	if in.ID != "4" {
		t.Errorf("ID = %q, want 4", in.ID)
	}
	if in.Date != "Mar 07, 2025" {
		t.Errorf("Date = %q, want Mar 07, 2025", in.Date)
	}
	if in.ReadTime != "5 min read" {
		t.Errorf("ReadTime = %q, want default", in.ReadTime)
	}

	got, err := svc.GetInsight(context.Background(), "4")
	if err != nil || got.Title != "Grid" {
		t.Fatalf("GetInsight(4) = %+v, %v", got, err)
	}
}

func TestContentService_CreateServiceDefaults(t *testing.T) {
	svc := newTestContentService(time.Now())

	s, err := svc.CreateService(context.Background(), ports.CreateServiceInput{Title: "Audit"})
	if err != nil {
		t.Fatalf("CreateService returned error: %v", err)
	}
	if s.ID != "service_5" {
		t.Errorf("ID = %q, want service_5", s.ID)
	}
	if s.Details == nil || len(s.Details) != 0 {
		t.Errorf("Details = %v, want empty list", s.Details)
	}
}

func TestContentService_InsightsByCategory(t *testing.T) {
	svc := newTestContentService(time.Now())

	got, err := svc.InsightsByCategory(context.Background(), "Strategy")
	if err != nil {
		t.Fatalf("InsightsByCategory returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("unexpected insights: %+v", got)
	}

	none, err := svc.InsightsByCategory(context.Background(), "strategy")
	if err != nil {
		t.Fatalf("InsightsByCategory returned error: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty, non-nil list, got %v", none)
	}
}

func TestContentService_ContentByType(t *testing.T) {
	svc := newTestContentService(time.Now())

	tests := []struct {
		contentType string
		wantLen     int
	}{
		{domain.ContentServices, 4},
		{domain.ContentInsights, 3},
		{domain.ContentCaseStudies, 2},
		{domain.ContentTeam, 1},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got, err := svc.ContentByType(context.Background(), tt.contentType)
			if err != nil {
				t.Fatalf("ContentByType returned error: %v", err)
			}
			var n int
			switch v := got.(type) {
			case []domain.Service:
				n = len(v)
			case []domain.Insight:
				n = len(v)
			case []domain.CaseStudy:
				n = len(v)
			case []domain.TeamMember:
				n = len(v)
			default:
				t.Fatalf("unexpected type %T", got)
			}
			if n != tt.wantLen {
				t.Errorf("len = %d, want %d", n, tt.wantLen)
			}
		})
	}

	if _, err := svc.ContentByType(context.Background(), "pricing"); !errors.Is(err, domain.ErrContentTypeNotFound) {
		t.Fatalf("expected ErrContentTypeNotFound, got %v", err)
	}
}
