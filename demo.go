// Copyright 2026 The Transiteer Contributors
// All rights reserved.

package transiteer

const (
	demoPath = "<path d=\"\" fill=\"none\" stroke=\"black\" stroke-width=\"3\"/>"
	demoText = "<text fill=\"black\" font-size=\"16\" x=\"0\" y=\"16\">\ntest\n</text>"
)

// DemoDocument returns a fixed document holding an empty path and a "test" label. It does not
// depend on any Map.
func DemoDocument() string {
	return svgOpenTag + "\n" + demoPath + "\n" + demoText + "\n" + svgCloseTag
}

// DemoFragment is DemoDocument without its svg wrapper.
func DemoFragment() string {
	return StripWrapper(DemoDocument())
}
