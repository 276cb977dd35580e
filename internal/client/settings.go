package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"docuagent/internal/model"
)

const settingsPath = "/settings/"

// SettingsAPI is the get/replace pair over the opaque settings bag.
type SettingsAPI interface {
	Get(ctx context.Context) (model.Settings, error)
	Replace(ctx context.Context, settings model.Settings) (model.Settings, error)
}

// SettingsResource wraps /settings.
type SettingsResource struct {
	c *Client
}

var _ SettingsAPI = (*SettingsResource)(nil)

func (r *SettingsResource) Get(ctx context.Context) (model.Settings, error) {
	settings := model.Settings{}
	if err := r.c.Do(ctx, settingsPath, RequestOptions{}, &settings); err != nil {
		return nil, err
	}
	if settings == nil {
		settings = model.Settings{}
	}
	return settings, nil
}

// Replace sends the whole bag; keys missing from settings are dropped by the backend.
func (r *SettingsResource) Replace(ctx context.Context, settings model.Settings) (model.Settings, error) {
	if settings == nil {
		settings = model.Settings{}
	}
	payload, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}

	opts := RequestOptions{Method: http.MethodPut, Body: bytes.NewReader(payload)}
	stored := model.Settings{}
	if err := r.c.Do(ctx, settingsPath, opts, &stored); err != nil {
		return nil, err
	}
	if stored == nil {
		stored = model.Settings{}
	}
	return stored, nil
}
