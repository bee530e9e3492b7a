package captcha

import (
	"image"
	"image/color"
	"image/draw"
	"slices"

	"github.com/nfnt/resize"
)

const (
	// upscaleFactor enlarges the challenge before recognition; the portal
	// serves images too small for reliable OCR at native size.
	upscaleFactor = 3
	// binarizeCutoff splits ink from background after grayscale conversion.
	binarizeCutoff = 130
)

// preprocess normalizes a challenge image for OCR: grayscale, Lanczos
// upscale, hard threshold, then a 3x3 median pass against speckle noise.
func preprocess(img image.Image) *image.Gray {
	g := grayscale(img)
	scaled := grayscale(resize.Resize(uint(g.Bounds().Dx()*upscaleFactor), 0, g, resize.Lanczos3))
	return median(binarize(scaled, binarizeCutoff))
}

// grayscale converts any image to 8-bit grayscale.
func grayscale(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(b)
	draw.Draw(g, b, img, b.Min, draw.Src)
	return g
}

// binarize maps every pixel to pure black or pure white.
func binarize(g *image.Gray, cutoff uint8) *image.Gray {
	out := image.NewGray(g.Bounds())
	for i, v := range g.Pix {
		if v > cutoff {
			out.Pix[i] = 0xFF
		}
	}
	return out
}

// median replaces each pixel with the median of its 3x3 neighborhood,
// clipping the window at the image edges.
func median(g *image.Gray) *image.Gray {
	b := g.Bounds()
	out := image.NewGray(b)
	var window [9]uint8
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					xx, yy := x+dx, y+dy
					if xx < b.Min.X || xx >= b.Max.X || yy < b.Min.Y || yy >= b.Max.Y {
						continue
					}
					window[n] = g.GrayAt(xx, yy).Y
					n++
				}
			}
			cell := window[:n]
			slices.Sort(cell)
			out.SetGray(x, y, color.Gray{Y: cell[n/2]})
		}
	}
	return out
}
