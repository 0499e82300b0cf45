// Package export writes scene geometry to mesh interchange formats.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/goholo/pkg/scene"
)

// DefaultDivisor converts world units back to scene units
const DefaultDivisor = 50.0

// Format is an export file format
type Format int

const (
	FormatOBJ Format = iota
	FormatSTL
	FormatSTLBinary
)

// ParseFormat accepts "obj", "stl" and "stl-binary"
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "obj":
		return FormatOBJ, nil
	case "stl", "stl-ascii":
		return FormatSTL, nil
	case "stl-binary", "stlb":
		return FormatSTLBinary, nil
	default:
		return FormatOBJ, fmt.Errorf("unknown export format %q (want obj, stl or stl-binary)", name)
	}
}

func (f Format) String() string {
	switch f {
	case FormatSTL:
		return "stl"
	case FormatSTLBinary:
		return "stl-binary"
	default:
		return "obj"
	}
}

// Extension is the file extension without a dot
func (f Format) Extension() string {
	if f == FormatOBJ {
		return "obj"
	}
	return "stl"
}

// MediaType is the MIME type hosts should offer the file as
func (f Format) MediaType() string {
	switch f {
	case FormatSTL:
		return "model/stl"
	case FormatSTLBinary:
		return "application/octet-stream"
	default:
		return "text/plain"
	}
}

// Options control unit conversion and naming
type Options struct {
	// Divisor scales world coordinates down; <= 0 selects DefaultDivisor
	Divisor float64
	// Name is written into formats that carry a model name
	Name string
}

func (o Options) divisor() float64 {
	if o.Divisor <= 0 {
		return DefaultDivisor
	}
	return o.Divisor
}

// Write serializes objects in format
func Write(w io.Writer, objects []scene.Object, format Format, opts Options) error {
	switch format {
	case FormatOBJ:
		return WriteOBJ(w, objects, opts)
	case FormatSTL:
		return WriteSTL(w, objects, opts, false)
	case FormatSTLBinary:
		return WriteSTL(w, objects, opts, true)
	default:
		return fmt.Errorf("unsupported export format %d", format)
	}
}
