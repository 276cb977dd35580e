package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"docuagent/internal/model"
)

const risksPath = "/risks/"

// RiskAPI is the risk report resource as consumed by the service layer.
type RiskAPI interface {
	List(ctx context.Context, limit int) ([]model.RiskReport, error)
	Get(ctx context.Context, id string) (*model.RiskReport, error)
	// UpdateStatus patches the status field only and returns the backend's copy.
	// Transition rules are enforced by the backend, never here.
	UpdateStatus(ctx context.Context, id string, status model.RiskStatus) (*model.RiskReport, error)
}

// RiskResource wraps the /risks endpoints.
type RiskResource struct {
	c *Client
}

var _ RiskAPI = (*RiskResource)(nil)

func (r *RiskResource) List(ctx context.Context, limit int) ([]model.RiskReport, error) {
	reports := make([]model.RiskReport, 0)
	if err := r.c.Do(ctx, withLimit(risksPath, limit), RequestOptions{Route: risksPath}, &reports); err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []model.RiskReport{}
	}
	return reports, nil
}

func (r *RiskResource) Get(ctx context.Context, id string) (*model.RiskReport, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	var report model.RiskReport
	if err := r.c.Do(ctx, itemPath(risksPath, id), RequestOptions{Route: risksPath + "{id}"}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *RiskResource) UpdateStatus(ctx context.Context, id string, status model.RiskStatus) (*model.RiskReport, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	payload, err := json.Marshal(model.StatusUpdate{Status: status})
	if err != nil {
		return nil, err
	}

	opts := RequestOptions{
		Method: http.MethodPatch,
		Body:   bytes.NewReader(payload),
		Route:  risksPath + "{id}",
	}
	var report model.RiskReport
	if err := r.c.Do(ctx, itemPath(risksPath, id), opts, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
