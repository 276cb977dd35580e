package service

import (
	"context"
	"fmt"
	"strings"

	"docuagent/internal/client"
	"docuagent/internal/model"
)

// FilterAll disables a severity or status filter.
const FilterAll = "all"

// RiskFilter narrows the reports page. Empty fields behave like FilterAll.
type RiskFilter struct {
	Severity string
	Status   string
	Search   string
}

// RiskItem is a report plus the status changes the dashboard offers for it.
type RiskItem struct {
	model.RiskReport
	NextActions []model.RiskStatus `json:"next_actions"`
}

// RiskSummary counts are computed over the unfiltered list.
type RiskSummary struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	Reviewing  int `json:"reviewing"`
	Resolved   int `json:"resolved"`
	Unresolved int `json:"unresolved"`
	Documents  int `json:"documents"`
	High       int `json:"high"`
	Medium     int `json:"medium"`
	Low        int `json:"low"`
}

// RiskListResult is the service-level DTO for the reports page.
type RiskListResult struct {
	Items   []RiskItem  `json:"data"`
	Summary RiskSummary `json:"summary"`
}

// RiskService defines the use cases for risk reports.
type RiskService interface {
	List(ctx context.Context, f RiskFilter) (*RiskListResult, error)
	Get(ctx context.Context, id string) (*RiskItem, error)
	// UpdateStatus sends any valid status; transitions are checked by the backend.
	UpdateStatus(ctx context.Context, id string, status model.RiskStatus) (*RiskItem, error)
}

type riskService struct {
	risks client.RiskAPI
}

// NewRiskService constructs a new RiskService.
func NewRiskService(risks client.RiskAPI) RiskService {
	return &riskService{risks: risks}
}

func (s *riskService) List(ctx context.Context, f RiskFilter) (*RiskListResult, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	reports, err := s.risks.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	return NewRiskListResult(reports, f), nil
}

// NewRiskListResult filters reports for display and summarizes all of them.
func NewRiskListResult(reports []model.RiskReport, f RiskFilter) *RiskListResult {
	items := make([]RiskItem, 0, len(reports))
	for _, r := range FilterReports(reports, f) {
		items = append(items, newRiskItem(r))
	}
	return &RiskListResult{Items: items, Summary: Summarize(reports)}
}

// Reports returns the bare reports behind the listed items.
func (r *RiskListResult) Reports() []model.RiskReport {
	out := make([]model.RiskReport, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, it.RiskReport)
	}
	return out
}

func (s *riskService) Get(ctx context.Context, id string) (*RiskItem, error) {
	if id == "" {
		return nil, client.ErrIDRequired
	}
	r, err := s.risks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	item := newRiskItem(*r)
	return &item, nil
}

func (s *riskService) UpdateStatus(ctx context.Context, id string, status model.RiskStatus) (*RiskItem, error) {
	if id == "" {
		return nil, client.ErrIDRequired
	}
	r, err := s.risks.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	item := newRiskItem(*r)
	return &item, nil
}

func newRiskItem(r model.RiskReport) RiskItem {
	return RiskItem{RiskReport: r, NextActions: r.Status.NextActions()}
}

func (f RiskFilter) validate() error {
	if sev := f.Severity; sev != "" && sev != FilterAll && !model.Severity(sev).Valid() {
		return fmt.Errorf("%w: severity %q", ErrInvalidFilter, sev)
	}
	if st := f.Status; st != "" && st != FilterAll && !model.RiskStatus(st).Valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidFilter, st)
	}
	return nil
}

// FilterReports applies severity, status and a case-insensitive search over
// title, document name and description.
func FilterReports(reports []model.RiskReport, f RiskFilter) []model.RiskReport {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]model.RiskReport, 0, len(reports))
	for _, r := range reports {
		if f.Severity != "" && f.Severity != FilterAll && string(r.Severity) != f.Severity {
			continue
		}
		if f.Status != "" && f.Status != FilterAll && string(r.Status) != f.Status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Title), needle) &&
			!strings.Contains(strings.ToLower(r.Document.Name), needle) &&
			!strings.Contains(strings.ToLower(r.Description), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Summarize counts reports per status and severity, and the distinct documents they cover.
func Summarize(reports []model.RiskReport) RiskSummary {
	sum := RiskSummary{Total: len(reports)}
	docs := make(map[string]struct{}, len(reports))
	for _, r := range reports {
		docs[r.Document.ID] = struct{}{}
		switch r.Status {
		case model.StatusOpen:
			sum.Open++
		case model.StatusReviewing:
			sum.Reviewing++
		case model.StatusResolved:
			sum.Resolved++
		}
		if r.Status != model.StatusResolved {
			sum.Unresolved++
		}
		switch r.Severity {
		case model.SeverityHigh:
			sum.High++
		case model.SeverityMedium:
			sum.Medium++
		case model.SeverityLow:
			sum.Low++
		}
	}
	sum.Documents = len(docs)
	return sum
}

// ReplaceReport returns a copy of reports with the entry sharing updated's ID
// swapped for updated. Unknown IDs leave the list unchanged.
func ReplaceReport(reports []model.RiskReport, updated model.RiskReport) []model.RiskReport {
	out := make([]model.RiskReport, len(reports))
	copy(out, reports)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
		}
	}
	return out
}
