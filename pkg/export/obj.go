package export

import (
	"bufio"
	"io"
	"strconv"

	"github.com/philipparndt/goholo/pkg/scene"
)

const objHeader = "# GOHOLO 3D EXPORT\n# Compatible with Tinkercad, Blender, MeshLab\n\n"

// WriteOBJ writes one OBJ object per scene object. Vertices are the base
// transform (no animation) divided by the unit divisor; face indices are
// 1-based and offset across objects. Objects without faces emit vertices only.
func WriteOBJ(w io.Writer, objects []scene.Object, opts Options) error {
	bw := bufio.NewWriter(w)
	div := opts.divisor()

	bw.WriteString(objHeader)
	offset := 1
	for i := range objects {
		obj := &objects[i]
		name := obj.Shape
		if name == "" {
			name = "Part"
		}
		bw.WriteString("o Object_" + strconv.Itoa(i) + "_" + name + "\n")

		verts := obj.WorldVertices()
		for _, v := range verts {
			bw.WriteString("v " + formatFloat(v.X/div) + " " + formatFloat(v.Y/div) + " " + formatFloat(v.Z/div) + "\n")
		}
		if obj.Mesh != nil {
			for _, face := range obj.Mesh.Faces {
				bw.WriteString("f")
				for _, idx := range face {
					bw.WriteString(" " + strconv.Itoa(idx+offset))
				}
				bw.WriteString("\n")
			}
		}
		offset += len(verts)
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func formatFloat(v float64) string {
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
