// Copyright 2026 The Transiteer Contributors
// All rights reserved.

// Package mapfile reads transit map definitions written in YAML or JSON:
//
//	lines:
//	  - name: Red
//	    color: "#ff0000"
//	    points: [[0, 0], [10, 5]]
package mapfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path"
	"strings"

	"github.com/talwat/transiteer"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a definition.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for formats other than FormatYAML and FormatJSON.
var ErrUnsupportedFormat = errors.New("unsupported map format")

// Definition is the file representation of a transiteer.Map.
type Definition struct {
	Lines []LineDef `json:"lines" yaml:"lines"`
}

// LineDef describes one line. Color is #rgb or #rrggbb and defaults to black. Each point is an
// [x, y] pair.
type LineDef struct {
	Name   string  `json:"name" yaml:"name"`
	Color  string  `json:"color,omitempty" yaml:"color,omitempty"`
	Points [][]int `json:"points" yaml:"points"`
}

// FormatFromPath picks a format from the extension of p. It accepts URLs as well as file paths.
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, p)
}

// Decode parses data and builds the map it describes.
func Decode(data []byte, format Format) (*transiteer.Map, error) {
	def := &Definition{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to an empty map.
		if err := dec.Decode(def); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(def); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return def.Build()
}

// Load downloads the definition at URL and decodes it. The format is taken from the URL's
// extension. Any scheme supported by fs can be used.
func Load(ctx context.Context, fs afs.Service, URL string) (*transiteer.Map, error) {
	format, err := FormatFromPath(URL)
	if err != nil {
		return nil, err
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", URL, err)
	}
	m, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	return m, nil
}

// Build converts d into a map.
func (d *Definition) Build() (*transiteer.Map, error) {
	m := transiteer.NewMap()
	for i, ld := range d.Lines {
		color := transiteer.Black
		if ld.Color != "" {
			c, err := transiteer.ParseHexColor(ld.Color)
			if err != nil {
				return nil, fmt.Errorf("line %d (%s): %w", i, ld.Name, err)
			}
			color = c
		}
		m.PushLine(transiteer.NewLine(ld.Name, color))

		for j, p := range ld.Points {
			pt, err := toPoint(p)
			if err != nil {
				return nil, fmt.Errorf("line %d (%s) point %d: %w", i, ld.Name, j, err)
			}
			if err := m.PushPoint(i, pt); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func toPoint(p []int) (transiteer.Point, error) {
	if len(p) != 2 {
		return transiteer.Point{}, fmt.Errorf("want [x, y], got %d values", len(p))
	}
	for _, v := range p {
		if v < math.MinInt16 || v > math.MaxInt16 {
			return transiteer.Point{}, fmt.Errorf("coordinate %d out of range", v)
		}
	}
	return transiteer.Pt(int16(p[0]), int16(p[1])), nil
}
