package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SundayYogurt/alumni_service/config"
	"github.com/SundayYogurt/alumni_service/internal/helper"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swaggerDoc struct {
	Host    string                                `json:"host"`
	Schemes []string                              `json:"schemes"`
	Paths   map[string]map[string]json.RawMessage `json:"paths"`
}

func newDocsApp(apiURL string) *fiber.App {
	return NewApp(Deps{
		Auth:   helper.SetupAuth("swagger-test"),
		Config: config.Config{BaseURL: "http://web.test", APIURL: apiURL},
	})
}

func fetchDoc(t *testing.T, app *fiber.App, host string) (swaggerDoc, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	if host != "" {
		req.Host = host
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc, string(raw)
}

func TestSwaggerHostComesFromPublicURL(t *testing.T) {
	app := newDocsApp("https://api.alumni.test")

	doc, raw := fetchDoc(t, app, "other.test")
	assert.Equal(t, "api.alumni.test", doc.Host)
	assert.Equal(t, []string{"https"}, doc.Schemes)
	assert.NotContains(t, raw, "other.test")
}

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	app := newDocsApp("http://localhost:3000")
	doc, _ := fetchDoc(t, app, "")

	seen := 0
	for _, r := range app.GetRoutes(true) {
		if r.Method == http.MethodHead {
			continue
		}
		if !strings.HasPrefix(r.Path, "/api/") && !strings.HasPrefix(r.Path, "/ws/") {
			continue
		}
		seen++
		// group roots register as "/api/profile/"; routing is not strict
		path := strings.TrimSuffix(r.Path, "/")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "undocumented path %s", path) {
			assert.Contains(t, ops, strings.ToLower(r.Method), "undocumented %s %s", r.Method, path)
		}
	}
	assert.Equal(t, 15, seen)
}
