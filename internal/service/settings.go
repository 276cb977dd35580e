package service

import (
	"context"
	"errors"

	"docuagent/internal/client"
	"docuagent/internal/model"
)

var ErrSettingsRequired = errors.New("settings body is required")

// SettingsService exposes the backend settings bag unchanged.
type SettingsService interface {
	Get(ctx context.Context) (model.Settings, error)
	Replace(ctx context.Context, settings model.Settings) (model.Settings, error)
}

type settingsService struct {
	settings client.SettingsAPI
}

// NewSettingsService constructs a new SettingsService.
func NewSettingsService(settings client.SettingsAPI) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (model.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Replace(ctx context.Context, settings model.Settings) (model.Settings, error) {
	if settings == nil {
		return nil, ErrSettingsRequired
	}
	return s.settings.Replace(ctx, settings)
}
