package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dentiscan/backend/internal/server/middleware"
)

// Download handlers serve the session's composed artifacts as
// timestamp-qualified file attachments. Nothing is read from disk; every
// artifact lives in the session store until the session expires.

func DownloadScriptHandler(c echo.Context) error {
	cc := c.(*middleware.AppContext)
	script, _, ok := cc.App.Sessions.Documents(cc.SessionID())
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "No analysis available for this session",
		})
	}
	filename := fmt.Sprintf("dental_audio_script_%s.txt", time.Now().Format("20060102_150405"))
	return attachment(c, filename, "text/plain", []byte(script))
}

func DownloadReportHandler(c echo.Context) error {
	cc := c.(*middleware.AppContext)
	_, document, ok := cc.App.Sessions.Documents(cc.SessionID())
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "No analysis available for this session",
		})
	}
	filename := fmt.Sprintf("dental_analysis_%s.txt", time.Now().Format("20060102_150405"))
	return attachment(c, filename, "text/plain", []byte(document))
}

func DownloadAudioHandler(c echo.Context) error {
	cc := c.(*middleware.AppContext)
	audio, ok := cc.App.Sessions.Audio(cc.SessionID())
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "No audio available for this session",
		})
	}
	return attachment(c, audio.Filename, "audio/mpeg", audio.Bytes)
}

func attachment(c echo.Context, filename string, contentType string, body []byte) error {
	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename),
	)
	return c.Blob(http.StatusOK, contentType, body)
}
