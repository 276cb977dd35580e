package client

import (
	"context"

	"docuagent/internal/model"
)

const (
	statsDashboardPath = "/stats/dashboard"

	// DefaultRecentLimit is the number of recent items fetched when none is given.
	DefaultRecentLimit = 5
)

// StatsAPI is the aggregate/recent-items resource. All rollups are computed server-side.
type StatsAPI interface {
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
	RecentDocuments(ctx context.Context, limit int) ([]model.Document, error)
	RecentRisks(ctx context.Context, limit int) ([]model.RiskReport, error)
}

// StatsResource wraps /stats/dashboard and the limited list queries.
type StatsResource struct {
	c *Client
}

var _ StatsAPI = (*StatsResource)(nil)

func (r *StatsResource) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := r.c.Do(ctx, statsDashboardPath, RequestOptions{}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecentDocuments is the document list capped at limit (DefaultRecentLimit when not positive).
func (r *StatsResource) RecentDocuments(ctx context.Context, limit int) ([]model.Document, error) {
	return r.c.Documents.List(ctx, recentLimit(limit))
}

// RecentRisks is the risk report list capped at limit (DefaultRecentLimit when not positive).
func (r *StatsResource) RecentRisks(ctx context.Context, limit int) ([]model.RiskReport, error) {
	return r.c.Risks.List(ctx, recentLimit(limit))
}

func recentLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	return limit
}
