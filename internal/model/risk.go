package model

import "slices"

// Severity of a risk report.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// RiskStatus is the review state of a risk report.
type RiskStatus string

const (
	StatusOpen      RiskStatus = "Open"
	StatusReviewing RiskStatus = "Reviewing"
	StatusResolved  RiskStatus = "Resolved"
)

// Statuses lists every review state in lifecycle order.
var Statuses = []RiskStatus{StatusOpen, StatusReviewing, StatusResolved}

// Valid reports whether s is one of the known review states.
func (s RiskStatus) Valid() bool {
	return slices.Contains(Statuses, s)
}

// NextActions returns the states a reviewer is offered from s.
// This only drives which actions are shown; the backend decides whether a transition is allowed.
func (s RiskStatus) NextActions() []RiskStatus {
	switch s {
	case StatusOpen:
		return []RiskStatus{StatusReviewing}
	case StatusReviewing:
		return []RiskStatus{StatusResolved}
	default:
		return []RiskStatus{}
	}
}

// DocumentRef is the owning document embedded in a risk report.
type DocumentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// RiskReport is a backend-detected issue in a document.
type RiskReport struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Document    DocumentRef `json:"document"`
	Severity    Severity    `json:"severity"`
	DetectedAt  Timestamp   `json:"detectedAt"`
	Status      RiskStatus  `json:"status"`
	Description string      `json:"description"`
}

// StatusUpdate is the only partial update accepted for a risk report.
type StatusUpdate struct {
	Status RiskStatus `json:"status"`
}
