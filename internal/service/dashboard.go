package service

import (
	"context"

	"docuagent/internal/client"
	"docuagent/internal/model"
)

// DefaultDashboardRecent is how many recent documents and risks the dashboard shows.
const DefaultDashboardRecent = 3

// Overview is everything the dashboard landing page renders.
type Overview struct {
	Stats           model.DashboardStats `json:"stats"`
	RecentDocuments []DocumentItem       `json:"recent_documents"`
	RecentRisks     []RiskItem           `json:"recent_risks"`
}

// DashboardService assembles the landing page.
type DashboardService interface {
	// Overview loads stats, then recent documents, then recent risks.
	// The first failure aborts the load and is returned as is.
	Overview(ctx context.Context) (*Overview, error)
}

type dashboardService struct {
	stats  client.StatsAPI
	recent int
}

// NewDashboardService constructs a new DashboardService showing recent items
// (DefaultDashboardRecent when recent <= 0).
func NewDashboardService(stats client.StatsAPI, recent int) DashboardService {
	if recent <= 0 {
		recent = DefaultDashboardRecent
	}
	return &dashboardService{stats: stats, recent: recent}
}

func (s *dashboardService) Overview(ctx context.Context) (*Overview, error) {
	stats, err := s.stats.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.stats.RecentDocuments(ctx, s.recent)
	if err != nil {
		return nil, err
	}
	risks, err := s.stats.RecentRisks(ctx, s.recent)
	if err != nil {
		return nil, err
	}

	out := &Overview{
		Stats:           *stats,
		RecentDocuments: make([]DocumentItem, 0, len(docs)),
		RecentRisks:     make([]RiskItem, 0, len(risks)),
	}
	for _, d := range docs {
		out.RecentDocuments = append(out.RecentDocuments, DocumentItem{Document: d, Risky: d.HasRisks()})
	}
	for _, r := range risks {
		out.RecentRisks = append(out.RecentRisks, newRiskItem(r))
	}
	return out, nil
}
