// Copyright 2026 The Transiteer Contributors
// All rights reserved.

package transiteer

import "fmt"

// A Line is a named, colored polyline. Points are connected by straight segments in the order they
// were pushed.
type Line struct {
	// Name labels the line. It is kept with the model but not rendered.
	Name string
	// Color is the stroke color.
	Color Color
	// Points are in traversal order and may be empty.
	Points []Point
}

// NewLine returns a line with no points.
func NewLine(name string, color Color) Line {
	return Line{Name: name, Color: color}
}

// Push appends p to the end of the line.
func (l *Line) Push(p Point) {
	l.Points = append(l.Points, p)
}

// String implements fmt.Stringer on Line.
func (l Line) String() string {
	return fmt.Sprintf("Line{%q %s %v}", l.Name, l.Color, l.Points)
}
