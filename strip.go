// Copyright 2026 The Transiteer Contributors
// All rights reserved.

package transiteer

import "strings"

const (
	rootOpenMarker  = "<svg"
	rootCloseMarker = "</svg"
)

// StripWrapper removes the opening and closing tags of the outermost svg element of markup,
// together with anything before the opening tag. Text after the closing tag is kept. The opening
// tag is the first "<svg" and the closing tag the last "</svg", both matched case-insensitively.
// The empty string is returned if either tag is missing, is not terminated by '>', or if the
// closing tag does not start after the opening tag ends.
func StripWrapper(markup string) string {
	// ASCII-only folding keeps byte offsets identical to markup.
	lower := asciiLower(markup)

	openStart := strings.Index(lower, rootOpenMarker)
	if openStart < 0 {
		return degrade("no opening tag")
	}
	openEnd := strings.IndexByte(lower[openStart:], '>')
	if openEnd < 0 {
		return degrade("unterminated opening tag")
	}
	openEnd += openStart

	closeStart := strings.LastIndex(lower, rootCloseMarker)
	if closeStart < 0 {
		return degrade("no closing tag")
	}
	closeEnd := strings.IndexByte(lower[closeStart:], '>')
	if closeEnd < 0 {
		return degrade("unterminated closing tag")
	}
	closeEnd += closeStart

	if closeStart <= openEnd {
		return degrade("closing tag before end of opening tag")
	}
	return markup[openEnd+1:closeStart] + markup[closeEnd+1:]
}

// RenderFragment serializes m and strips the svg wrapper, leaving sibling path elements that can
// be embedded in an existing svg element.
func RenderFragment(m *Map) string {
	return StripWrapper(Serialize(m))
}

func degrade(reason string) string {
	Logger().WithField("reason", reason).Debug("strip wrapper: malformed markup")
	return ""
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
