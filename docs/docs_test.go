package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))
	assert.Equal(t, "DocuAgent Dashboard API", spec.Info.Title)

	routes := map[string][]string{
		"/dashboard":           {"get"},
		"/documents":           {"get"},
		"/documents/{id}":      {"get", "delete"},
		"/upload":              {"post"},
		"/reports":             {"get"},
		"/reports/{id}":        {"get"},
		"/reports/{id}/status": {"patch"},
		"/settings":            {"get", "put"},
		"/health":              {"get"},
	}
	for path, methods := range routes {
		for _, m := range methods {
			assert.Contains(t, spec.Paths[path], m, "%s %s", m, path)
		}
	}

	summary := spec.Definitions["service.RiskSummary"].Properties
	for _, field := range []string{"total", "open", "reviewing", "resolved", "unresolved", "documents", "high", "medium", "low"} {
		assert.Contains(t, summary, field)
	}
}
