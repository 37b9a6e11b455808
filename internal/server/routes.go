package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dentiscan/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiRoutes := e.Group("/api")

	// Analysis pipeline
	apiRoutes.POST("/analyze", routes.AnalyzeHandler)
	apiRoutes.POST("/preview", routes.PreviewHandler)

	// Narration
	apiRoutes.POST("/narrate", routes.NarrateHandler)
	apiRoutes.GET("/narrate/audio", routes.DownloadAudioHandler)

	// Text downloads
	apiRoutes.GET("/report", routes.DownloadReportHandler)
	apiRoutes.GET("/script", routes.DownloadScriptHandler)

	// Form metadata
	apiRoutes.GET("/voices", routes.GetVoicesHandler)
	apiRoutes.GET("/languages", routes.GetLanguagesHandler)
	apiRoutes.GET("/stages", routes.GetStagesHandler)
}
