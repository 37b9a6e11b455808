package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dentiscan/backend/pkg/imaging"
	"github.com/dentiscan/backend/pkg/imaging/preview"
)

// PreviewHandler renders the fixed-parameter image-processing panels
// shown beside an upload: grayscale, edge map, contrast enhancement and
// an intensity histogram. The panels are a visual aid only; the analysis
// request always uses the untouched upload.
func PreviewHandler(c echo.Context) error {
	type previewResponse struct {
		Message   string   `json:"message"`
		Original  string   `json:"original,omitempty"`
		Grayscale string   `json:"grayscale,omitempty"`
		Edges     string   `json:"edges,omitempty"`
		Contrast  string   `json:"contrast,omitempty"`
		Histogram []int    `json:"histogram,omitempty"`
	}

	upload, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, previewResponse{
			Message: "No image provided",
		})
	}
	src, err := upload.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, previewResponse{
			Message: "Could not open image",
		})
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, previewResponse{
			Message: "Unsupported or corrupt image",
		})
	}

	scaled := preview.Downscale(img)

	original, err := imaging.EncodeJPEG(scaled)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, previewResponse{
			Message: "Failed to render preview",
		})
	}
	gray, err := imaging.EncodeJPEG(preview.Grayscale(scaled))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, previewResponse{
			Message: "Failed to render preview",
		})
	}
	edges, err := imaging.EncodeJPEG(preview.Edges(scaled))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, previewResponse{
			Message: "Failed to render preview",
		})
	}
	contrast, err := imaging.EncodeJPEG(preview.Contrast(scaled))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, previewResponse{
			Message: "Failed to render preview",
		})
	}

	bins := preview.Histogram(scaled)
	histogram := make([]int, len(bins))
	copy(histogram, bins[:])

	return c.JSON(http.StatusOK, previewResponse{
		Message:   "Preview generated",
		Original:  original,
		Grayscale: gray,
		Edges:     edges,
		Contrast:  contrast,
		Histogram: histogram,
	})
}
