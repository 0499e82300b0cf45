package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/philipparndt/goholo/pkg/geometry"
)

// WriteASCII writes the model in ASCII STL format
func WriteASCII(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", model.Name)
	for _, t := range model.Triangles {
		n := t.Normal
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", model.Name)
	return bw.Flush()
}

// WriteBinary writes the model in binary STL format: an 80-byte header, a
// triangle count, then 50 bytes per triangle.
func WriteBinary(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, 80)
	copy(header, model.Name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if uint64(model.TriangleCount()) > math.MaxUint32 {
		return fmt.Errorf("too many triangles for binary STL: %d", model.TriangleCount())
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(model.TriangleCount())); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, t := range model.Triangles {
		var rec [12]float32
		for j, v := range [4]geometry.Vector3{t.Normal, t.V1, t.V2, t.V3} {
			rec[j*3] = float32(v.X)
			rec[j*3+1] = float32(v.Y)
			rec[j*3+2] = float32(v.Z)
		}
		if err := binary.Write(bw, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("failed to write attribute for triangle %d: %w", i, err)
		}
	}
	return bw.Flush()
}
