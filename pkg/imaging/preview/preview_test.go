package preview

import (
	"image"
	"image/color"
	"testing"
)

func checkerboard(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}
	return img
}

func TestDownscale(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{name: "within limit untouched", width: 100, height: 80, wantWidth: 100, wantHeight: 80},
		{name: "wide image", width: 1024, height: 256, wantWidth: 512, wantHeight: 128},
		{name: "tall image", width: 256, height: 1024, wantWidth: 128, wantHeight: 512},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scaled := Downscale(checkerboard(tc.width, tc.height))
			bounds := scaled.Bounds()
			if bounds.Dx() != tc.wantWidth || bounds.Dy() != tc.wantHeight {
				t.Fatalf("dimensions = %dx%d, want %dx%d",
					bounds.Dx(), bounds.Dy(), tc.wantWidth, tc.wantHeight)
			}
		})
	}
}

func TestGrayscale(t *testing.T) {
	gray := Grayscale(checkerboard(16, 16))
	if gray.Bounds().Dx() != 16 || gray.Bounds().Dy() != 16 {
		t.Fatalf("dimensions = %v", gray.Bounds())
	}
	if gray.GrayAt(0, 0).Y < 250 {
		t.Fatalf("white pixel converted to %d", gray.GrayAt(0, 0).Y)
	}
	if gray.GrayAt(1, 0).Y > 5 {
		t.Fatalf("black pixel converted to %d", gray.GrayAt(1, 0).Y)
	}
}

func TestEdges_UniformImageIsFlat(t *testing.T) {
	uniform := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			uniform.Set(x, y, color.RGBA{R: 100, G: 100, B: 100, A: 255})
		}
	}

	edges := Edges(uniform)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if edges.GrayAt(x, y).Y != 0 {
				t.Fatalf("uniform image produced edge %d at (%d,%d)", edges.GrayAt(x, y).Y, x, y)
			}
		}
	}
}

func TestEdges_DetectsBoundary(t *testing.T) {
	split := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				split.Set(x, y, color.Black)
			} else {
				split.Set(x, y, color.White)
			}
		}
	}

	edges := Edges(split)
	if edges.GrayAt(4, 4).Y == 0 {
		t.Fatal("vertical boundary produced no edge response")
	}
	if edges.GrayAt(1, 4).Y != 0 {
		t.Fatal("flat region produced an edge response")
	}
}

func TestHistogram_SumsToPixelCount(t *testing.T) {
	bins := Histogram(checkerboard(10, 10))
	total := 0
	for _, count := range bins {
		total += count
	}
	if total != 100 {
		t.Fatalf("histogram total = %d, want 100", total)
	}
	if bins[255] == 0 {
		t.Fatal("no white pixels counted")
	}
	if bins[0] == 0 {
		t.Fatal("no black pixels counted")
	}
}

func TestContrast_PreservesDimensions(t *testing.T) {
	enhanced := Contrast(checkerboard(12, 9))
	if enhanced.Bounds().Dx() != 12 || enhanced.Bounds().Dy() != 9 {
		t.Fatalf("dimensions = %v", enhanced.Bounds())
	}
}
