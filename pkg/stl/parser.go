package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/goholo/pkg/geometry"
)

// Decode reads an STL stream, detecting ASCII ("solid" prefix) or binary
func Decode(r io.Reader) (*Model, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(5)
	if err != nil && len(header) == 0 {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	if string(header) == "solid" {
		return decodeASCII(br)
	}
	return decodeBinary(br)
}

func decodeASCII(r io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(r)
	model := NewModel("")

	var (
		normal geometry.Vector3
		facet  []geometry.Vector3
		line   int
	)
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			model.Name = strings.Join(fields[1:], " ")
		case "facet":
			if len(fields) != 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("line %d: malformed facet", line)
			}
			n, err := parseVector(fields[2:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			normal, facet = n, facet[:0]
		case "vertex":
			v, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			facet = append(facet, v)
		case "endfacet":
			if len(facet) != 3 {
				return nil, fmt.Errorf("line %d: facet has %d vertices, want 3", line, len(facet))
			}
			model.AddTriangle(geometry.NewTriangle(normal, facet[0], facet[1], facet[2]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	if len(fields) != 3 {
		return geometry.Vector3{}, fmt.Errorf("want 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("bad coordinate %q", f)
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// record is one 50-byte binary triangle: normal, three vertices, attribute
type record struct {
	Coords    [12]float32
	Attribute uint16
}

func (r record) vector(i int) geometry.Vector3 {
	return geometry.NewVector3(float64(r.Coords[i*3]), float64(r.Coords[i*3+1]), float64(r.Coords[i*3+2]))
}

func decodeBinary(r io.Reader) (*Model, error) {
	var header [80]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model := NewModel(string(bytes.TrimRight(header[:], "\x00 ")))

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	var rec record
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("failed to read triangle %d of %d: %w", i, count, err)
		}
		model.AddTriangle(geometry.NewTriangle(rec.vector(0), rec.vector(1), rec.vector(2), rec.vector(3)))
	}
	return model, nil
}
