package handler

import (
	"github.com/gofiber/fiber/v2"

	"docuagent/internal/client"
	"docuagent/internal/service"
)

// Services bundles what the dashboard routes depend on.
type Services struct {
	Stats     client.StatsAPI
	Dashboard service.DashboardService
	Documents service.DocumentService
	Risks     service.RiskService
	Settings  service.SettingsService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svc Services) {
	app.Get("/", RedirectRoot())
	app.Get("/health", HealthCheck(svc.Stats))
	app.Get("/healthz", LivenessProbe())

	app.Get("/dashboard", GetDashboard(svc.Dashboard))

	app.Get("/documents", ListDocuments(svc.Documents))
	app.Get("/documents/:id", GetDocument(svc.Documents))
	app.Delete("/documents/:id", DeleteDocument(svc.Documents))
	app.Post("/upload", UploadDocument(svc.Documents))

	app.Get("/reports", ListReports(svc.Risks))
	app.Get("/reports/:id", GetReport(svc.Risks))
	app.Patch("/reports/:id/status", UpdateReportStatus(svc.Risks))

	app.Get("/settings", GetSettings(svc.Settings))
	app.Put("/settings", ReplaceSettings(svc.Settings))
}
