package model

// DashboardStats is the aggregate snapshot shown on the dashboard.
// Values are formatted by the backend and displayed verbatim.
type DashboardStats struct {
	DocumentsProcessed    string `json:"documentsProcessed"`
	RiskyDocuments        string `json:"riskyDocuments"`
	AverageProcessingTime string `json:"averageProcessingTime"`
}

// Settings is the opaque application settings bag. No schema is enforced client-side.
type Settings map[string]Value
