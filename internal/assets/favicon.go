package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/vector"
)

const faviconSize = 32

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847

func circle(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

type disc struct {
	cx, cy, r float32
	c         color.RGBA
}

// FaviconPNG rasterizes the mascot's face at favicon size.
func FaviconPNG() ([]byte, error) {
	dst := image.NewRGBA(image.Rect(0, 0, faviconSize, faviconSize))
	fur := color.RGBA{106, 215, 229, 255}
	discs := []disc{
		{6, 7, 4, fur},
		{26, 7, 4, fur},
		{16, 17, 14, fur},
		{11.5, 14, 5, color.RGBA{255, 255, 255, 255}},
		{20.5, 14, 5, color.RGBA{255, 255, 255, 255}},
		{12.5, 14.5, 2.5, color.RGBA{0, 0, 0, 255}},
		{21.5, 14.5, 2.5, color.RGBA{0, 0, 0, 255}},
		{16, 22, 3, color.RGBA{246, 210, 162, 255}},
	}
	z := vector.NewRasterizer(faviconSize, faviconSize)
	for _, d := range discs {
		z.Reset(faviconSize, faviconSize)
		circle(z, d.cx, d.cy, d.r)
		z.Draw(dst, dst.Bounds(), image.NewUniform(d.c), image.Point{})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode favicon: %w", err)
	}
	return buf.Bytes(), nil
}
