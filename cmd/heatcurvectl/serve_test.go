package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testConfig() *serveConfig {
	return &serveConfig{Listen: ":0", ChartWidth: 320, ChartHeight: 200}
}

func TestGetChartPNG(t *testing.T) {
	router := setupRoutes(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chart.png?slope=2.5&outdoor=-10", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q, want image/png", ct)
	}
	body := w.Body.Bytes()
	if len(body) < 8 || string(body[1:4]) != "PNG" {
		t.Fatalf("body does not look like a PNG (%d bytes)", len(body))
	}
}

func TestGetFlow(t *testing.T) {
	router := setupRoutes(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flow?room=20&outdoor=0&slope=1.5&flowmin=25&flowmax=90", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Gain float64 `json:"gain"`
		Flow float64 `json:"flow"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Gain != 2.0 {
		t.Fatalf("gain = %v, want 2.0", resp.Gain)
	}
	// 20 + 2.00*(20-0) = 60
	if resp.Flow != 60 {
		t.Fatalf("flow = %v, want 60", resp.Flow)
	}
}

func TestGetFlowClampsOutOfRangeQuery(t *testing.T) {
	router := setupRoutes(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/flow?room=99&slope=12", nil)
	router.ServeHTTP(w, req)

	var resp struct {
		Params struct {
			Room  float64 `json:"Room"`
			Slope float64 `json:"Slope"`
		} `json:"params"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Params.Room != 24 || resp.Params.Slope != 4.0 {
		t.Fatalf("query not clamped: %+v", resp.Params)
	}
}

func TestGetIndex(t *testing.T) {
	router := setupRoutes(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?slope=2.5", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `/chart.png?slope=2.5`) {
		t.Fatalf("index page does not forward the query to the chart image:\n%s", body)
	}
	if !strings.Contains(body, "Flow:") {
		t.Fatalf("index page is missing the flow summary:\n%s", body)
	}
}

func TestLoadServeConfigDefaultsAndEnv(t *testing.T) {
	cfg, err := loadServeConfig("")
	if err != nil {
		t.Fatalf("loadServeConfig: %v", err)
	}
	if cfg.Listen != ":8723" || cfg.ChartWidth != 1100 || cfg.ChartHeight != 687 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	t.Setenv("HC_LISTEN", "127.0.0.1:9000")
	t.Setenv("HC_CHART_WIDTH", "640")
	cfg, err = loadServeConfig("")
	if err != nil {
		t.Fatalf("loadServeConfig with env: %v", err)
	}
	if cfg.Listen != "127.0.0.1:9000" {
		t.Fatalf("HC_LISTEN not applied: %+v", cfg)
	}
	if cfg.ChartWidth != 640 {
		t.Fatalf("HC_CHART_WIDTH not applied: %+v", cfg)
	}
}
