// Copyright 2026 The Transiteer Contributors
// All rights reserved.

package transiteer

import (
	"testing"

	"github.com/maruel/ut"
)

func TestParseHexColor(t *testing.T) {
	t.Parallel()
	data := []struct {
		color   string
		rgb     Color
		isError bool
	}{
		{"#fff", RGB(255, 255, 255), false},
		{"#FFF", RGB(255, 255, 255), false},
		{"#ffffff", RGB(255, 255, 255), false},
		{"#FFFFFF", RGB(255, 255, 255), false},
		{"#fFfFFf", RGB(255, 255, 255), false},
		{"#f00", RGB(255, 0, 0), false},
		{"#123", RGB(0x11, 0x22, 0x33), false},
		{"#0a1b2c", RGB(0x0a, 0x1b, 0x2c), false},
		{"#notacolor", Color{}, true},
		{"alsonotacolor", Color{}, true},
		{"", Color{}, true},
		{"#ffg", Color{}, true},
		{"#FFG", Color{}, true},
		{"#fffffg", Color{}, true},
		{"#FFFFFG", Color{}, true},
		{"#+1+1+1", Color{}, true},
	}

	for i, v := range data {
		c, err := ParseHexColor(v.color)

		switch v.isError {
		case true:
			if err == nil {
				t.Fatalf("Test %d (%s): wanted error, got no error", i, v.color)
			}
		case false:
			ut.AssertEqualIndex(t, i, nil, err)
			ut.AssertEqualIndex(t, i, v.rgb, c)
		}
	}
}

func TestColorStroke(t *testing.T) {
	t.Parallel()
	data := []struct {
		color  Color
		stroke string
	}{
		{RGB(255, 0, 0), "rgb(255, 0, 0)"},
		{RGB(0, 255, 0), "rgb(0, 0, 255)"},
		{RGB(0, 0, 255), "rgb(0, 255, 0)"},
		{RGB(1, 2, 3), "rgb(1, 3, 2)"},
		{Black, "rgb(0, 0, 0)"},
	}
	for i, v := range data {
		ut.AssertEqualIndex(t, i, v.stroke, v.color.stroke())
	}
}

func TestColorString(t *testing.T) {
	t.Parallel()
	ut.AssertEqual(t, "#0a1b2c", RGB(0x0a, 0x1b, 0x2c).String())
	ut.AssertEqual(t, "#000000", Black.String())
}
