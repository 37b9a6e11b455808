package routes

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dentiscan/backend/internal/server/middleware"
	"github.com/dentiscan/backend/internal/session"
	"github.com/dentiscan/backend/pkg/analysis"
	"github.com/dentiscan/backend/pkg/locale"
	"github.com/dentiscan/backend/pkg/report"
)

func pngUpload(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "tooth.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if err := png.Encode(part, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func modelServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		payload := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": reply}},
			},
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Errorf("encode model reply: %v", err)
		}
	}))
}

func newAnalyzeContext(t *testing.T, baseURL string, sessions *session.Store) (*middleware.AppContext, *httptest.ResponseRecorder) {
	t.Helper()
	body, contentType := pngUpload(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set(middleware.HeaderAPIKey, "test-key")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	app := &middleware.App{
		Analysis: analysis.NewClient(analysis.NewClientParams{
			BaseURL: baseURL,
			APIKey:  "test-key",
		}),
		Sessions: sessions,
		Locale:   locale.NewLookup(),
	}
	return &middleware.AppContext{Context: c, App: app}, rec
}

func TestAnalyzeHandler_ComposesNarrationAndReport(t *testing.T) {
	reply := `{
		"cavity_detected": true,
		"cavity_stage": "Stage 2 (moderate decay)",
		"severity_level": "Medium",
		"visible_issues": ["Dark spot on molar"],
		"recommended_treatments": ["Composite filling"],
		"when_to_see_dentist": "Within two weeks"
	}`
	srv := modelServer(t, reply)
	defer srv.Close()

	sessions := session.NewStore(time.Hour)
	cc, rec := newAnalyzeContext(t, srv.URL, sessions)

	if err := AnalyzeHandler(cc); err != nil {
		t.Fatalf("AnalyzeHandler() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		SessionID   string         `json:"session_id"`
		Analysis    map[string]any `json:"analysis"`
		StageNumber int            `json:"stage_number"`
		Narration   string         `json:"narration"`
		Report      string         `json:"report"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatal("no session id assigned")
	}
	if resp.StageNumber != 2 {
		t.Fatalf("stage_number = %d, want 2", resp.StageNumber)
	}
	if detected, _ := resp.Analysis["cavity_detected"].(bool); !detected {
		t.Fatalf("analysis payload lost cavity_detected: %v", resp.Analysis)
	}
	if !strings.Contains(resp.Narration, "Cavity stage: Stage 2 (moderate decay)") {
		t.Fatalf("narration = %q", resp.Narration)
	}
	if !strings.Contains(resp.Report, "Dark spot on molar") {
		t.Fatalf("report missing visible issue: %q", resp.Report)
	}

	script, document, ok := sessions.Documents(resp.SessionID)
	if !ok {
		t.Fatal("session kept no documents")
	}
	if script != resp.Narration || document != resp.Report {
		t.Fatal("session documents differ from response documents")
	}
}

func TestAnalyzeHandler_ModelReplyWithoutJSONIsBadGateway(t *testing.T) {
	srv := modelServer(t, "I cannot analyze this image, sorry.")
	defer srv.Close()

	sessions := session.NewStore(time.Hour)
	cc, rec := newAnalyzeContext(t, srv.URL, sessions)

	if err := AnalyzeHandler(cc); err != nil {
		t.Fatalf("AnalyzeHandler() error = %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	var resp struct {
		Message     string `json:"message"`
		StageNumber int    `json:"stage_number"`
		RawResponse string `json:"raw_response"`
		Narration   string `json:"narration"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.StageNumber != report.StageUnknown {
		t.Fatalf("stage_number = %d, want %d", resp.StageNumber, report.StageUnknown)
	}
	if resp.RawResponse != "I cannot analyze this image, sorry." {
		t.Fatalf("raw_response = %q", resp.RawResponse)
	}
	if resp.Narration != "" {
		t.Fatal("narration composed despite analysis failure")
	}
}

func TestAnalyzeHandler_RejectsNonImageUpload(t *testing.T) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "notes.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write([]byte("this is not an image"))
	writer.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(middleware.HeaderAPIKey, "test-key")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	cc := &middleware.AppContext{Context: c, App: &middleware.App{
		Analysis: analysis.NewClient(analysis.NewClientParams{APIKey: "test-key"}),
		Sessions: session.NewStore(time.Hour),
		Locale:   locale.NewLookup(),
	}}

	if err := AnalyzeHandler(cc); err != nil {
		t.Fatalf("AnalyzeHandler() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
