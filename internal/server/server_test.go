package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AduSharma/CrickStatX/internal/model"
	"github.com/AduSharma/CrickStatX/internal/service"
)

func newTestServer(t *testing.T, logw *bytes.Buffer) http.Handler {
	t.Helper()
	ds := model.Dataset{}
	ds.Add(&model.Table{
		Category: model.Batting,
		File:     "ODI data.csv",
		Columns:  []string{"Player", "Span", "Runs", "Ave", "Teams"},
		Rows: []model.Row{
			{"Player": "SR Tendulkar", "Span": "1989-2012", "Runs": "18426", "Ave": "44.83", "Teams": "India"},
			{"Player": "RT Ponting", "Span": "1995-2012", "Runs": "13704", "Ave": "42.03", "Teams": "Australia"},
		},
	})
	var w io.Writer
	if logw != nil {
		w = logw
	}
	return New(service.New(ds), w).Handler()
}

func get(t *testing.T, h http.Handler, url string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	var body map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return rec, body
}

func TestRootAndCORS(t *testing.T) {
	rec, body := get(t, newTestServer(t, nil), "/")
	if rec.Code != http.StatusOK {
		t.Errorf("want 200, got %d", rec.Code)
	}
	if body["message"] == nil {
		t.Errorf("want health message, got %v", body)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("want CORS *, got %q", got)
	}
}

func TestPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/analyze", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("want 204, got %d", rec.Code)
	}
}

func TestUnknownPath(t *testing.T) {
	rec, _ := get(t, newTestServer(t, nil), "/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("want 404, got %d", rec.Code)
	}
}

func TestAnalyze(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analyze?player_name=tendulkar", nil))
	var out []model.PlayerSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].Player != "SR Tendulkar" {
		t.Errorf("unexpected analysis: %+v", out)
	}
}

func TestAnalyzeNotFound(t *testing.T) {
	rec, body := get(t, newTestServer(t, nil), "/analyze?player_name=bradman")
	if rec.Code != http.StatusOK {
		t.Errorf("want 200, got %d", rec.Code)
	}
	if body["message"] != "No player found for 'bradman'" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestMissingParameter(t *testing.T) {
	rec, body := get(t, newTestServer(t, nil), "/tags")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("want 422, got %d", rec.Code)
	}
	if body["error"] == nil {
		t.Errorf("want error payload, got %v", body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("want application/json, got %q", ct)
	}
}

func TestCompare(t *testing.T) {
	_, body := get(t, newTestServer(t, nil), "/compare?players=tendulkar,ponting")
	ws, _ := body["winner_summary"].(map[string]any)
	if ws["winner"] != "SR Tendulkar" {
		t.Errorf("unexpected winner summary: %v", body["winner_summary"])
	}
	_, body = get(t, newTestServer(t, nil), "/compare?players=tendulkar")
	if body["error"] == nil {
		t.Errorf("want arity error, got %v", body)
	}
}

func TestTopPerformers(t *testing.T) {
	h := newTestServer(t, nil)
	_, body := get(t, h, "/top-performers?format=odi&role=batsman&limit=1")
	rows, _ := body["top_performers"].([]any)
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %v", body)
	}
	first := rows[0].(map[string]any)
	if first["Runs"] != float64(18426) || first["Country"] != "India" {
		t.Errorf("unexpected row: %v", first)
	}

	_, body = get(t, h, "/top-performers?format=odi&role=batsman&limit=zero")
	if body["error"] == nil {
		t.Errorf("want limit error, got %v", body)
	}
	_, body = get(t, h, "/top-performers?format=t20&role=batsman")
	if body["message"] == nil {
		t.Errorf("want NotFound message, got %v", body)
	}
}

func TestPlayerFilter(t *testing.T) {
	_, body := get(t, newTestServer(t, nil), "/player-filter?team=india&era=1990s&sort_by=runs")
	if body["team"] != "India" || body["era"] != "1990s" {
		t.Errorf("unexpected header: %v", body)
	}
	players, _ := body["players"].([]any)
	if len(players) != 1 {
		t.Errorf("want 1 player, got %v", body["players"])
	}
}

func TestTopPerformersRequiresFormatAndRole(t *testing.T) {
	h := newTestServer(t, nil)
	for _, url := range []string{
		"/top-performers",
		"/top-performers?format=odi",
		"/top-performers?role=batsman",
	} {
		rec, body := get(t, h, url)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: want 422, got %d", url, rec.Code)
		}
		if body["error"] == nil {
			t.Errorf("%s: want error payload, got %v", url, body)
		}
	}
}

func TestFilesAndPlayers(t *testing.T) {
	h := newTestServer(t, nil)
	_, body := get(t, h, "/available-files")
	files, _ := body["available_files"].([]any)
	if len(files) != 1 || files[0] != "Batting/ODI data.csv" {
		t.Errorf("unexpected files: %v", body)
	}

	rec, _ := get(t, h, "/players")
	var players []string
	if err := json.Unmarshal(rec.Body.Bytes(), &players); err != nil {
		t.Fatalf("want a bare JSON array, got %s", rec.Body.String())
	}
	if strings.Join(players, ",") != "Rt Ponting,Sr Tendulkar" {
		t.Errorf("want sorted title-cased names, got %v", players)
	}
}

func TestRequestLog(t *testing.T) {
	var logw bytes.Buffer
	get(t, newTestServer(t, &logw), "/players")
	if !strings.Contains(logw.String(), "GET /players 200") {
		t.Errorf("want request line, got %q", logw.String())
	}
}
