package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/config"
	"portfolio/internal/store"
	"portfolio/internal/testutil"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dataset := testutil.NewDataset(t)
	dataset.Seed(t)

	cfg := &config.Config{
		Port:            "8000",
		CSVDataPath:     dataset.Root(),
		DefaultUsername: testutil.Username,
		AllowedOrigins:  "*",
		CacheTTLSeconds: 300,
	}

	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	srv := NewServerWithDeps(cfg, store.New(dataset.Root()), nil, func() time.Time { return fixed })

	app := fiber.New()
	srv.SetupRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]any) (int, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestHomeEndpoint(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/", map[string]any{"username": testutil.Username})
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "who_am_i?", body["page_welcome_texts"])

	personal := body["personal_data"].(map[string]any)
	info := personal["basic_info"].(map[string]any)
	assert.Equal(t, "Sreeragh S", info["full_name"])
	// The misspelled wire name is the one the frontend binds to.
	assert.Contains(t, info, "total_years_of_experiece")
}

func TestHomeEndpointGETUsesDefaultUsername(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Hello, sreeragh! Welcome to the Portfolio API.", body["message"])
}

func TestPageEndpointsRejectBadBody(t *testing.T) {
	app := setupTestApp(t)

	paths := []string{"/", "/about", "/skills", "/projects", "/certifications", "/timeline", "/services", "/resume"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("POST", path, bytes.NewReader([]byte("not-json")))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestPageEndpointsRequireUsername(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/skills", map[string]any{"username": "  "})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestAboutEndpoint(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/about", map[string]any{"username": testutil.Username})
	require.Equal(t, fiber.StatusOK, status)

	info := body["personal_info"].(map[string]any)
	assert.Equal(t, "ML Engineer", info["designation"])
	assert.Equal(t, "Air India", info["current_company"])
	assert.Equal(t, "curious_about_me?", body["welcome_text"])
}

func TestAboutEndpointUnknownUserServesDefaults(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/about", map[string]any{"username": "nobody"})
	require.Equal(t, fiber.StatusOK, status)

	info := body["personal_info"].(map[string]any)
	assert.Equal(t, "Default User", info["full_name"])
}

func TestSkillsEndpoint(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/skills", map[string]any{"username": testutil.Username})
	require.Equal(t, fiber.StatusOK, status)

	skills := body["skills"].([]any)
	require.Len(t, skills, 4)
	first := skills[0].(map[string]any)
	assert.Equal(t, float64(100), first["level"])
}

func TestProjectDetailEndpoint(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/projects/proj_001", map[string]any{"username": testutil.Username})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	project := body["project"].(map[string]any)
	assert.Equal(t, "Demand Forecaster", project["title"])
	assert.Equal(t, "1 year 2 months", project["duration"])
}

func TestProjectDetailEndpointNotFound(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/projects/proj_999", map[string]any{"username": testutil.Username})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestServicesEndpoints(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/services", map[string]any{"username": testutil.Username})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(2), body["total_services"])

	status, detail := postJSON(t, app, "/services/1", map[string]any{"username": testutil.Username})
	require.Equal(t, fiber.StatusOK, status)
	service := detail["service"].(map[string]any)
	assert.Equal(t, "ML Consulting", service["title"])

	status, _ = postJSON(t, app, "/services/99", map[string]any{"username": testutil.Username})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, errBody := postJSON(t, app, "/services/abc", map[string]any{"username": testutil.Username})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errBody["code"])
}

func TestResumeEndpoints(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/resume", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Resume data retrieved successfully", body["message"])

	data := body["resume_data"].(map[string]any)
	personal := data["personal_info"].(map[string]any)
	assert.Equal(t, "Sreeragh S", personal["full_name"])

	status, posted := postJSON(t, app, "/resume", map[string]any{"username": testutil.Username})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, posted["success"])
}

func TestTimelineEndpoint(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/timeline", map[string]any{"username": testutil.Username})
	require.Equal(t, fiber.StatusOK, status)

	experiences := body["experiences"].([]any)
	require.Len(t, experiences, 2)
	first := experiences[0].(map[string]any)
	assert.Equal(t, "Air India", first["company"])
	assert.NotContains(t, first, "end_date")
}

func TestCertificationsEndpoint(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/certifications", map[string]any{"username": testutil.Username})
	require.Equal(t, fiber.StatusOK, status)

	certifications := body["certifications"].([]any)
	require.Len(t, certifications, 1)
	cert := certifications[0].(map[string]any)
	assert.Equal(t, []any{"Python", "PyTorch"}, cert["skills"])
	assert.Equal(t, "proof_of_skills?", body["welcome_text"])
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
