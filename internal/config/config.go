// Package config holds runtime configuration for the greenheat host.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Venorrak/greenheatgd/internal/geom"
	"github.com/Venorrak/greenheatgd/internal/transport"
)

// Config holds all runtime configuration.
type Config struct {
	Endpoint string // relay base URL; channel name is appended as a sub-path
	Channel  string // audience channel to ingest

	Detecting  bool // master enable for the ingestion loop
	Simulating bool // enable local pointer-event synthesis

	Viewport geom.Vec2  // local viewport size in pixels
	Region   *geom.Rect // optional mapping region inside the viewport

	BufferSize int     // inbound frame buffer (frames)
	IntervalMS int     // ingestion tick interval in milliseconds
	CursorCap  int     // max tracked remote sessions
	Verbose    bool
}

// Default returns the baseline configuration. The channel has no default;
// it identifies which audience feed is relayed here.
func Default() *Config {
	return &Config{
		Endpoint:   transport.DefaultEndpoint,
		Detecting:  true,
		Simulating: false,
		Viewport:   geom.Vec2{X: 1280, Y: 720},
		BufferSize: transport.DefaultBufferSize,
		IntervalMS: 16,
		CursorCap:  0, // tracker default
	}
}

// ParseViewport parses a "w,h" string into a viewport size.
func ParseViewport(s string) (geom.Vec2, error) {
	parts, err := splitFloats(s, 2)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("viewport %q: %w", s, err)
	}
	return geom.Vec2{X: parts[0], Y: parts[1]}, nil
}

// ParseRegion parses an "x,y,w,h" string into a mapping region.
func ParseRegion(s string) (*geom.Rect, error) {
	parts, err := splitFloats(s, 4)
	if err != nil {
		return nil, fmt.Errorf("region %q: %w", s, err)
	}
	return &geom.Rect{
		Pos:  geom.Vec2{X: parts[0], Y: parts[1]},
		Size: geom.Vec2{X: parts[2], Y: parts[3]},
	}, nil
}

func splitFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers", n)
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
