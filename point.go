// Copyright 2026 The Transiteer Contributors
// All rights reserved.

package transiteer

import "fmt"

// A Point is an X,Y coordinate on the map. Coordinates are signed 16-bit integers; callers are
// responsible for keeping values inside that range.
type Point struct {
	// The X coordinate of this point.
	X int16
	// The Y coordinate of this point.
	Y int16
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int16) Point {
	return Point{X: x, Y: y}
}

// String implements fmt.Stringer on Point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// pathCoord renders p the way path data expects it.
func (p Point) pathCoord() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
