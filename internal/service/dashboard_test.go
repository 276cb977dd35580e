package service

import (
	"context"
	"errors"
	"testing"

	clientMocks "docuagent/internal/client/mocks"
	"docuagent/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Overview(t *testing.T) {
	ctx := context.Background()
	stats := &model.DashboardStats{DocumentsProcessed: "12", RiskyDocuments: "4", AverageProcessingTime: "2.3s"}

	t.Run("loads all three sections", func(t *testing.T) {
		m := new(clientMocks.MockStatsAPI)
		m.On("Dashboard", ctx).Return(stats, nil).Once()
		m.On("RecentDocuments", ctx, 3).Return(sampleDocuments()[:2], nil).Once()
		m.On("RecentRisks", ctx, 3).Return(sampleReports()[:1], nil).Once()

		got, err := NewDashboardService(m, 0).Overview(ctx)
		require.NoError(t, err)

		assert.Equal(t, *stats, got.Stats)
		require.Len(t, got.RecentDocuments, 2)
		assert.False(t, got.RecentDocuments[0].Risky)
		assert.True(t, got.RecentDocuments[1].Risky)
		require.Len(t, got.RecentRisks, 1)
		assert.Equal(t, []model.RiskStatus{model.StatusReviewing}, got.RecentRisks[0].NextActions)
		m.AssertExpectations(t)
	})

	t.Run("empty lists stay non-nil", func(t *testing.T) {
		m := new(clientMocks.MockStatsAPI)
		m.On("Dashboard", ctx).Return(&model.DashboardStats{}, nil)
		m.On("RecentDocuments", ctx, 5).Return([]model.Document{}, nil)
		m.On("RecentRisks", ctx, 5).Return([]model.RiskReport{}, nil)

		got, err := NewDashboardService(m, 5).Overview(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got.RecentDocuments)
		assert.NotNil(t, got.RecentRisks)
	})

	t.Run("first failure stops the sequence", func(t *testing.T) {
		boom := errors.New("connection refused")
		m := new(clientMocks.MockStatsAPI)
		m.On("Dashboard", ctx).Return(stats, nil)
		m.On("RecentDocuments", ctx, 3).Return(nil, boom)

		got, err := NewDashboardService(m, 3).Overview(ctx)
		assert.Nil(t, got)
		assert.Same(t, boom, err)
		m.AssertNotCalled(t, "RecentRisks", mock.Anything, mock.Anything)
	})
}
