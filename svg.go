// Copyright 2026 The Transiteer Contributors
// All rights reserved.

package transiteer

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	svgOpenTag  = "<svg xmlns=\"http://www.w3.org/2000/svg\">"
	svgCloseTag = "</svg>"

	pathTag = "<path d=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-linecap=\"%s\" stroke-linejoin=\"%s\" stroke-width=\"%d\"/>"
)

// Style holds the path attributes shared by every line of a map. Only the stroke color varies
// per line.
type Style struct {
	Fill     string
	LineCap  string
	LineJoin string
	Width    int
}

// DefaultStyle is the style used by Serialize.
var DefaultStyle = Style{
	Fill:     "none",
	LineCap:  "round",
	LineJoin: "round",
	Width:    1,
}

// Serialize renders m as a complete SVG document using DefaultStyle.
func Serialize(m *Map) string {
	return SerializeStyle(m, DefaultStyle)
}

// SerializeStyle renders m as a complete SVG document. Each line with at least one point becomes a
// path element, in map order; lines without points are skipped. The root element carries only the
// xmlns attribute.
func SerializeStyle(m *Map, s Style) string {
	// Written by hand: encoding/xml can't produce self-closing elements.
	b := &bytes.Buffer{}
	_, _ = io.WriteString(b, svgOpenTag)
	skipped := 0
	for _, l := range m.Lines() {
		if len(l.Points) == 0 {
			skipped++
			continue
		}
		_ = b.WriteByte('\n')
		_, _ = fmt.Fprintf(b, pathTag, flatten(l.Points), escape(s.Fill), l.Color.stroke(), escape(s.LineCap), escape(s.LineJoin), s.Width)
	}
	_ = b.WriteByte('\n')
	_, _ = io.WriteString(b, svgCloseTag)

	Logger().WithFields(logrus.Fields{
		"lines":   m.Len(),
		"skipped": skipped,
	}).Debug("serialized map")
	return b.String()
}

// flatten returns the path data for points: a move to the first point followed by a line to every
// point, the first one included.
func flatten(points []Point) string {
	if len(points) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("M")
	sb.WriteString(points[0].pathCoord())
	for _, p := range points {
		sb.WriteString(" L")
		sb.WriteString(p.pathCoord())
	}
	return sb.String()
}

func escape(s string) string {
	b := &bytes.Buffer{}
	if err := xml.EscapeText(b, []byte(s)); err != nil {
		panic(err)
	}
	return b.String()
}
