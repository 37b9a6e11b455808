package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dentiscan/backend/internal/metrics"
	"github.com/dentiscan/backend/internal/server/middleware"
	"github.com/dentiscan/backend/pkg/imaging"
	"github.com/dentiscan/backend/pkg/logger"
	"github.com/dentiscan/backend/pkg/report"
)

// AnalyzeHandler runs the upload → encode → analyze → compose pipeline
// for one image. The pipeline short-circuits on analysis failure; no
// narration or report is composed then, and a parse failure carries the
// raw model reply back for diagnostic display.
func AnalyzeHandler(c echo.Context) error {
	type analyzeParams struct {
		Language string `form:"language"`
	}

	type analyzeResponse struct {
		Message     string         `json:"message"`
		SessionID   string         `json:"session_id,omitempty"`
		Analysis    map[string]any `json:"analysis,omitempty"`
		StageNumber int            `json:"stage_number"`
		Narration   string         `json:"narration,omitempty"`
		Report      string         `json:"report,omitempty"`
		RawResponse string         `json:"raw_response,omitempty"`
	}

	cc := c.(*middleware.AppContext)
	lookup := cc.App.Locale

	params := new(analyzeParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, analyzeResponse{
			Message:     "Invalid request body",
			StageNumber: report.StageUnknown,
		})
	}

	if !cc.HasCredential() {
		return c.JSON(http.StatusBadRequest, analyzeResponse{
			Message:     lookup(params.Language, "missing_key"),
			StageNumber: report.StageUnknown,
		})
	}

	upload, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, analyzeResponse{
			Message:     "No image provided",
			StageNumber: report.StageUnknown,
		})
	}
	src, err := upload.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, analyzeResponse{
			Message:     "Could not open image",
			StageNumber: report.StageUnknown,
		})
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, analyzeResponse{
			Message:     "Unsupported or corrupt image",
			StageNumber: report.StageUnknown,
		})
	}

	sessionID := cc.SessionID()
	if sessionID == "" {
		sessionID, err = cc.App.Sessions.Create()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, analyzeResponse{
				Message:     "Internal server error",
				StageNumber: report.StageUnknown,
			})
		}
	}
	metrics.SessionsActive.Set(float64(cc.App.Sessions.Len()))

	ctx := c.Request().Context()
	start := time.Now()
	result := cc.App.Analysis.Analyze(ctx, img, params.Language)
	elapsed := time.Since(start).Seconds()

	if result.Failed() {
		metrics.AnalyzeTotal.WithLabelValues("failure").Inc()
		metrics.AnalyzeDurationSeconds.WithLabelValues("failure").Observe(elapsed)
		logger.Error("Analysis failed", "err", result.Err.Message)
		return c.JSON(http.StatusBadGateway, analyzeResponse{
			Message:     result.Err.Message,
			SessionID:   sessionID,
			StageNumber: report.StageUnknown,
			RawResponse: result.Err.RawResponse,
		})
	}
	metrics.AnalyzeTotal.WithLabelValues("success").Inc()
	metrics.AnalyzeDurationSeconds.WithLabelValues("success").Observe(elapsed)

	script := report.Narration(result)
	document := report.Report(result, time.Now())
	cc.App.Sessions.SetDocuments(sessionID, script, document)

	return c.JSON(http.StatusOK, analyzeResponse{
		Message:     lookup(params.Language, "results_header"),
		SessionID:   sessionID,
		Analysis:    result.Fields,
		StageNumber: report.StageNumber(result.String("cavity_stage", "")),
		Narration:   script,
		Report:      document,
	})
}
