package render

import (
	"strings"

	"github.com/goqr/qrencode"
)

// Terminal renders q as a grid of full-width block characters, one pair of
// characters per module, with a quiet zone of border modules on every
// side. Dark modules print as "██"; light modules print as two spaces.
func Terminal(q *qrcode.QRCode, border int) string {
	size := q.Size()
	total := size + border*2

	var sb strings.Builder
	for y := 0; y < total; y++ {
		for x := 0; x < total; x++ {
			r, c := y-border, x-border
			dark := r >= 0 && r < size && c >= 0 && c < size && q.Module(r, c)
			if dark {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
