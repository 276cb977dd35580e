package model

import "strings"

// NoIssuesFound is the sentinel the risk checker writes when a document is clean.
const NoIssuesFound = "No issues found"

// Document is a processed upload as returned by the DocuAgent backend.
// Documents are immutable from the client's side except for deletion.
type Document struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Summary   string    `json:"summary"`
	Metadata  Metadata  `json:"metadata"`
	Risks     string    `json:"risks"`
	BlobURL   string    `json:"blob_url"`
	CreatedAt Timestamp `json:"created_at"`
}

// Metadata is the free-form key/value bag extracted from a document.
type Metadata map[string]Value

// HasRisks reports whether the risk block carries at least one finding.
func (d Document) HasRisks() bool {
	return HasRisks(d.Risks)
}

// RiskLines returns the individual findings of the risk block with the bullet dash removed.
func (d Document) RiskLines() []string {
	if !d.HasRisks() {
		return []string{}
	}
	lines := make([]string, 0)
	for _, line := range strings.Split(d.Risks, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// HasRisks classifies a raw risk block: blank or exactly NoIssuesFound means clean.
func HasRisks(risks string) bool {
	return risks != NoIssuesFound && strings.TrimSpace(risks) != ""
}

// UploadResult is the envelope returned by the processing endpoint.
// Unlike the other endpoints, the created document is nested under "data".
type UploadResult struct {
	Message string   `json:"message,omitempty"`
	Data    Document `json:"data"`
}
