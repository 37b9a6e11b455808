package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dentiscan/backend/internal/metrics"
	"github.com/dentiscan/backend/internal/server/middleware"
	"github.com/dentiscan/backend/internal/session"
	"github.com/dentiscan/backend/pkg/logger"
	"github.com/dentiscan/backend/pkg/narration"
)

// NarrateHandler synthesizes the narration script into MP3 audio and
// stores it in the session's single audio slot. Synthesis failure is
// non-fatal: the response degrades to the text script so the user can
// download that instead.
func NarrateHandler(c echo.Context) error {
	type narrateBody struct {
		Text  string `json:"text"`
		Voice string `json:"voice"`
		Rate  string `json:"rate"`
	}

	type narrateResponse struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id,omitempty"`
		Filename  string `json:"filename,omitempty"`
		Size      int    `json:"size,omitempty"`
		Fallback  bool   `json:"fallback,omitempty"`
		Script    string `json:"script,omitempty"`
	}

	cc := c.(*middleware.AppContext)

	data := new(narrateBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, narrateResponse{
			Message: "Invalid request body",
		})
	}

	sessionID := cc.SessionID()
	text := data.Text
	if text == "" {
		script, _, ok := cc.App.Sessions.Documents(sessionID)
		if !ok {
			return c.JSON(http.StatusBadRequest, narrateResponse{
				Message: "No narration text available; analyze an image first",
			})
		}
		text = script
	}

	voice := data.Voice
	if voice == "" {
		voice = narration.DefaultVoice
	}
	rate := data.Rate
	if rate == "" {
		rate = narration.DefaultRate
	}

	ctx := c.Request().Context()
	start := time.Now()
	audio, err := cc.App.Speech.Synthesize(ctx, text, voice, rate)
	metrics.NarrateDurationSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.NarrateTotal.WithLabelValues("failure").Inc()
		logger.Warn("Narration synthesis failed, offering text fallback", "err", err)
		return c.JSON(http.StatusOK, narrateResponse{
			Message:  cc.App.Locale("en", "audio_fallback"),
			Fallback: true,
			Script:   text,
		})
	}
	metrics.NarrateTotal.WithLabelValues("success").Inc()

	if sessionID == "" {
		sessionID, err = cc.App.Sessions.Create()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, narrateResponse{
				Message: "Internal server error",
			})
		}
	}

	filename := fmt.Sprintf("dental_analysis_audio_%s.mp3", time.Now().Format("20060102_150405"))
	cc.App.Sessions.SetAudio(sessionID, session.Audio{
		Bytes:    audio,
		Filename: filename,
	})

	return c.JSON(http.StatusOK, narrateResponse{
		Message:   "Audio generated successfully",
		SessionID: sessionID,
		Filename:  filename,
		Size:      len(audio),
	})
}
