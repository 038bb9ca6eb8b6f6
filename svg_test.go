// Copyright 2026 The Transiteer Contributors
// All rights reserved.

package transiteer

import (
	"strings"
	"testing"

	"github.com/maruel/ut"
)

func TestSerialize(t *testing.T) {
	t.Parallel()
	const attrs = `stroke-linecap="round" stroke-linejoin="round" stroke-width="1"`
	data := []struct {
		lines    []Line
		expected []string
	}{
		// 0 No lines
		{
			nil,
			[]string{
				`<svg xmlns="http://www.w3.org/2000/svg">`,
				`</svg>`,
			},
		},
		// 1 Single point is visited twice
		{
			[]Line{{Name: "Red", Color: RGB(255, 0, 0), Points: []Point{{5, 10}}}},
			[]string{
				`<svg xmlns="http://www.w3.org/2000/svg">`,
				`<path d="M5,10 L5,10" fill="none" stroke="rgb(255, 0, 0)" stroke-linecap="round" stroke-linejoin="round" stroke-width="1"/>`,
				`</svg>`,
			},
		},
		// 2 Diagonal, first point revisited
		{
			[]Line{{Color: RGB(10, 20, 30), Points: []Point{{0, 0}, {1, 1}, {2, 2}}}},
			[]string{
				`<svg xmlns="http://www.w3.org/2000/svg">`,
				`<path d="M0,0 L0,0 L1,1 L2,2" fill="none" stroke="rgb(10, 30, 20)" stroke-linecap="round" stroke-linejoin="round" stroke-width="1"/>`,
				`</svg>`,
			},
		},
		// 3 Empty lines are skipped, order is kept, negative coordinates
		{
			[]Line{
				{Name: "A", Color: RGB(1, 2, 3), Points: []Point{{-1, -32768}}},
				{Name: "empty"},
				{Name: "B", Color: RGB(4, 5, 6), Points: []Point{{32767, 0}, {7, 8}}},
			},
			[]string{
				`<svg xmlns="http://www.w3.org/2000/svg">`,
				`<path d="M-1,-32768 L-1,-32768" fill="none" stroke="rgb(1, 3, 2)" stroke-linecap="round" stroke-linejoin="round" stroke-width="1"/>`,
				`<path d="M32767,0 L32767,0 L7,8" fill="none" stroke="rgb(4, 6, 5)" stroke-linecap="round" stroke-linejoin="round" stroke-width="1"/>`,
				`</svg>`,
			},
		},
		// 4 Only empty lines
		{
			[]Line{{Name: "a"}, {Name: "b"}},
			[]string{
				`<svg xmlns="http://www.w3.org/2000/svg">`,
				`</svg>`,
			},
		},
	}
	for i, v := range data {
		m := NewMap()
		for _, l := range v.lines {
			m.PushLine(l)
		}
		actual := Serialize(m)
		ut.AssertEqualIndex(t, i, strings.Join(v.expected, "\n"), actual)
		ut.AssertEqualIndex(t, i, strings.Count(actual, attrs), len(v.expected)-2)
	}
}

func TestSerializeIsRepeatable(t *testing.T) {
	t.Parallel()
	m := NewMap()
	m.PushLine(NewLine("Red", RGB(255, 0, 0)))
	ut.AssertEqual(t, nil, m.PushPoint(0, Pt(1, 2)))

	first := Serialize(m)
	ut.AssertEqual(t, first, Serialize(m))
	ut.AssertEqual(t, []Point{{1, 2}}, m.Lines()[0].Points)

	// The model stays mutable after serializing.
	ut.AssertEqual(t, nil, m.PushPoint(0, Pt(3, 4)))
	ut.AssertEqual(t, true, strings.Contains(Serialize(m), `d="M1,2 L1,2 L3,4"`))
}

func TestSerializeStyle(t *testing.T) {
	t.Parallel()
	m := NewMap()
	m.PushLine(NewLine("", RGB(0, 128, 255)))
	ut.AssertEqual(t, nil, m.PushPoint(0, Pt(0, 0)))

	s := Style{Fill: "#fff", LineCap: "square", LineJoin: "bevel", Width: 4}
	expected := `<path d="M0,0 L0,0" fill="#fff" stroke="rgb(0, 255, 128)" stroke-linecap="square" stroke-linejoin="bevel" stroke-width="4"/>`
	ut.AssertEqual(t, true, strings.Contains(SerializeStyle(m, s), expected))
	ut.AssertEqual(t, Serialize(m), SerializeStyle(m, DefaultStyle))
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	data := []struct {
		points []Point
		d      string
	}{
		{nil, ""},
		{[]Point{{0, 0}}, "M0,0 L0,0"},
		{[]Point{{1, 2}, {3, 4}}, "M1,2 L1,2 L3,4"},
		{[]Point{{1, 1}, {1, 1}}, "M1,1 L1,1 L1,1"},
	}
	for i, v := range data {
		ut.AssertEqualIndex(t, i, v.d, flatten(v.points))
	}
}

func TestDemoDocument(t *testing.T) {
	t.Parallel()
	expected := strings.Join([]string{
		`<svg xmlns="http://www.w3.org/2000/svg">`,
		`<path d="" fill="none" stroke="black" stroke-width="3"/>`,
		`<text fill="black" font-size="16" x="0" y="16">`,
		`test`,
		`</text>`,
		`</svg>`,
	}, "\n")
	ut.AssertEqual(t, expected, DemoDocument())
	ut.AssertEqual(t, expected[len(`<svg xmlns="http://www.w3.org/2000/svg">`):len(expected)-len(`</svg>`)], DemoFragment())
}
