package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/goqr/qrencode"
)

// PNG rasterizes q at scale pixels per module with a quiet zone of border
// modules, and returns the encoded PNG bytes. scale and border must be
// positive and non-negative respectively.
func PNG(q *qrcode.QRCode, scale, border int) ([]byte, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("render: scale must be positive")
	}
	if border < 0 {
		return nil, fmt.Errorf("render: border must be non-negative")
	}

	size := q.Size()
	side := (size + border*2) * scale

	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetNRGBA(x, y, white)
		}
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !q.Module(row, col) {
				continue
			}
			px0 := (col + border) * scale
			py0 := (row + border) * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetNRGBA(px0+dx, py0+dy, black)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
