package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dentiscan/backend/pkg/analysis"
	"github.com/dentiscan/backend/pkg/narration"
	"github.com/dentiscan/backend/pkg/report"
)

// Closed lists backing the upload form: voices, reply languages and the
// cavity-stage guide.

func GetVoicesHandler(c echo.Context) error {
	type voicesResponse struct {
		Default string   `json:"default"`
		Voices  []string `json:"voices"`
	}
	return c.JSON(http.StatusOK, voicesResponse{
		Default: narration.DefaultVoice,
		Voices:  narration.Voices(),
	})
}

func GetLanguagesHandler(c echo.Context) error {
	type languagesResponse struct {
		Default   string            `json:"default"`
		Languages map[string]string `json:"languages"`
	}
	return c.JSON(http.StatusOK, languagesResponse{
		Default:   analysis.DefaultLanguage,
		Languages: analysis.Languages(),
	})
}

func GetStagesHandler(c echo.Context) error {
	type stagesResponse struct {
		Stages []report.Stage `json:"stages"`
	}
	return c.JSON(http.StatusOK, stagesResponse{
		Stages: report.Stages(),
	})
}
