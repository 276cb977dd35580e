package mocks

import (
	"context"
	"io"

	"docuagent/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDocumentAPI struct {
	mock.Mock
}

func (m *MockDocumentAPI) List(ctx context.Context, limit int) ([]model.Document, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentAPI) Get(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentAPI) Upload(ctx context.Context, filename, contentType string, r io.Reader) (*model.UploadResult, error) {
	args := m.Called(ctx, filename, contentType, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadResult), args.Error(1)
}

func (m *MockDocumentAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRiskAPI struct {
	mock.Mock
}

func (m *MockRiskAPI) List(ctx context.Context, limit int) ([]model.RiskReport, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RiskReport), args.Error(1)
}

func (m *MockRiskAPI) Get(ctx context.Context, id string) (*model.RiskReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RiskReport), args.Error(1)
}

func (m *MockRiskAPI) UpdateStatus(ctx context.Context, id string, status model.RiskStatus) (*model.RiskReport, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RiskReport), args.Error(1)
}

type MockStatsAPI struct {
	mock.Mock
}

func (m *MockStatsAPI) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

func (m *MockStatsAPI) RecentDocuments(ctx context.Context, limit int) ([]model.Document, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockStatsAPI) RecentRisks(ctx context.Context, limit int) ([]model.RiskReport, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RiskReport), args.Error(1)
}

type MockSettingsAPI struct {
	mock.Mock
}

func (m *MockSettingsAPI) Get(ctx context.Context) (model.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Settings), args.Error(1)
}

func (m *MockSettingsAPI) Replace(ctx context.Context, settings model.Settings) (model.Settings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Settings), args.Error(1)
}
