package render

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
)

// Image rasterizes req with one pixel per cell, ink in the request color on a
// transparent background, enlarged scale times with nearest neighbour sampling
// The fill symbol has no effect on the raster
func (r *Renderer) Image(req Request, scale int) *image.NRGBA {
	cv := r.layout(req.Text)
	w, h := cv.width(), len(cv)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rgb := req.Color.RGB()
	ink := color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}

	for y, line := range cv {
		for x, on := range line {
			if on {
				img.SetNRGBA(x, y, ink)
			}
		}
	}

	if scale <= 1 || w == 0 || h == 0 {
		return img
	}
	return imaging.Resize(img, w*scale, h*scale, imaging.NearestNeighbor)
}

// SavePNG writes img to path in PNG format
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
