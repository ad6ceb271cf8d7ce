// Package render turns a qrcode.QRCode's module matrix into an output
// format: SVG, PNG, or a terminal-friendly block-character string. None of
// this lives in the core encoder; every function here only reads the
// matrix through qrcode's public Module/Size accessors.
package render

import (
	"fmt"
	"strings"

	"github.com/goqr/qrencode"
)

// SVG returns a scalable vector graphics document for q, with a quiet zone
// of border modules on every side. border must be non-negative; ISO/IEC
// 18004 recommends at least 4.
func SVG(q *qrcode.QRCode, border int) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("render: border must be non-negative")
	}

	size := q.Size()
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", size+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !q.Module(y, x) {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
