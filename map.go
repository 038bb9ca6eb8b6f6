// Copyright 2026 The Transiteer Contributors
// All rights reserved.

package transiteer

import (
	"errors"
	"fmt"
)

// ErrLineIndex is matched by errors returned when a line index does not exist in a Map.
var ErrLineIndex = errors.New("line index out of range")

// IndexError reports an out of range line index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, map has %d lines", ErrLineIndex, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrLineIndex
}

// A Map is an ordered collection of lines. Lines pushed later are painted over earlier ones.
//
// A Map is not safe for concurrent mutation.
type Map struct {
	lines []Line
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{}
}

// Len returns the number of lines.
func (m *Map) Len() int {
	return len(m.lines)
}

// Lines returns the lines in paint order. The returned slice must not be modified.
func (m *Map) Lines() []Line {
	return m.lines
}

// PushLine appends line to the map.
func (m *Map) PushLine(line Line) {
	m.lines = append(m.lines, line)
}

// PushPoint appends p to the line at lineIndex. The map is unchanged when lineIndex is out of
// range and the returned error is an *IndexError.
func (m *Map) PushPoint(lineIndex int, p Point) error {
	if lineIndex < 0 || lineIndex >= len(m.lines) {
		Logger().WithField("index", lineIndex).Debug("push point: no such line")
		return &IndexError{Index: lineIndex, Len: len(m.lines)}
	}
	m.lines[lineIndex].Push(p)
	return nil
}
