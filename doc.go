// Copyright 2026 The Transiteer Contributors
// All rights reserved.

// Package transiteer renders transit maps to SVG markup. A map is a list of named, colored lines,
// each an ordered list of integer points connected by straight segments.
//
// Serialize produces a complete SVG document. StripWrapper removes the document's root svg tags so
// the remaining path elements can be spliced into an svg element owned by a host page;
// RenderFragment does both.
//
// Example usage:
//
//     import (
//         "fmt"
//
//         "github.com/talwat/transiteer"
//     )
//
//     ...
//
//         m := transiteer.NewMap()
//         m.PushLine(transiteer.NewLine("Red", transiteer.RGB(255, 0, 0)))
//         if err := m.PushPoint(0, transiteer.Pt(5, 10)); err != nil {
//             fmt.Printf("Couldn't add point: %s\n", err)
//         }
//         fragment := transiteer.RenderFragment(m)
//
//     ...
//
// The output reproduces two long-standing properties that downstream consumers depend on: path data
// draws a segment back to the first point right after moving to it, and the stroke color is written
// as rgb(R, B, G), with blue and green swapped.
package transiteer
