package preview

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Fixed-parameter filters producing the side-by-side visual aid shown
// next to an analyzed image. None of the outputs feed the assessment.

const (
	// maxDimension bounds preview panels so the filters stay cheap.
	maxDimension = 512
	// contrastFactor is the fixed enhancement applied by Contrast.
	contrastFactor = 1.5
)

// Downscale returns img scaled to fit within maxDimension while
// preserving aspect ratio. Images already within the limit pass through.
func Downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= maxDimension && height <= maxDimension {
		return img
	}

	scale := float64(maxDimension) / float64(width)
	if s := float64(maxDimension) / float64(height); s < scale {
		scale = s
	}
	newWidth := int(float64(width) * scale)
	newHeight := int(float64(height) * scale)
	if newWidth > maxDimension {
		newWidth = maxDimension
	}
	if newHeight > maxDimension {
		newHeight = maxDimension
	}

	scaled := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)
	return scaled
}

// Grayscale converts img to 8-bit grayscale.
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return gray
}

// Edges computes a Sobel gradient magnitude map over the grayscale image.
func Edges(img image.Image) *image.Gray {
	gray := Grayscale(img)
	bounds := gray.Bounds()
	edges := image.NewGray(bounds)

	at := func(x, y int) int {
		if x < bounds.Min.X {
			x = bounds.Min.X
		}
		if x >= bounds.Max.X {
			x = bounds.Max.X - 1
		}
		if y < bounds.Min.Y {
			y = bounds.Min.Y
		}
		if y >= bounds.Max.Y {
			y = bounds.Max.Y - 1
		}
		return int(gray.GrayAt(x, y).Y)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gx := -at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1) +
				at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			magnitude := math.Sqrt(float64(gx*gx + gy*gy))
			if magnitude > 255 {
				magnitude = 255
			}
			edges.SetGray(x, y, color.Gray{Y: uint8(magnitude)})
		}
	}
	return edges
}

// Contrast applies a fixed linear contrast enhancement around the
// midpoint of each channel.
func Contrast(img image.Image) image.Image {
	bounds := img.Bounds()
	enhanced := image.NewRGBA(bounds)
	adjust := func(v uint32) uint8 {
		scaled := (float64(v>>8)-128)*contrastFactor + 128
		if scaled < 0 {
			scaled = 0
		}
		if scaled > 255 {
			scaled = 255
		}
		return uint8(scaled)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			enhanced.SetRGBA(x, y, color.RGBA{
				R: adjust(r),
				G: adjust(g),
				B: adjust(b),
				A: uint8(a >> 8),
			})
		}
	}
	return enhanced
}

// Histogram counts grayscale pixel intensities into 256 bins.
func Histogram(img image.Image) [256]int {
	gray := Grayscale(img)
	bounds := gray.Bounds()
	var bins [256]int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			bins[gray.GrayAt(x, y).Y]++
		}
	}
	return bins
}
