// Package analysis measures the geometry of a built scene.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goholo/pkg/export"
	"github.com/philipparndt/goholo/pkg/geometry"
	"github.com/philipparndt/goholo/pkg/mesh"
	"github.com/philipparndt/goholo/pkg/scene"
)

// EdgeInfo is one wireframe edge in scene units
type EdgeInfo struct {
	Object int
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
}

// ObjectStats describes one scene object under its base transform
type ObjectStats struct {
	Index       int
	Shape       string
	Kind        mesh.Kind
	Label       string
	Vertices    int
	Edges       int
	Faces       int
	Triangles   int
	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3
	SurfaceArea float64
	Volume      float64
	// Err is set when the mesh has out-of-range indices
	Err error
}

// MeasurementResult summarizes a whole scene
type MeasurementResult struct {
	Title         string
	Objects       []ObjectStats
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Vertices      int
	EdgeCount     int
	Faces         int
	Triangles     int
	SurfaceArea   float64
	Volume        float64
	Unknown       int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// AnalyzeScene measures every object in s. Lengths are divided by divisor
// so they read in scene units, matching exported files.
func AnalyzeScene(s *scene.Scene, divisor float64) *MeasurementResult {
	if divisor <= 0 {
		divisor = export.DefaultDivisor
	}
	result := &MeasurementResult{
		Title:       s.Title,
		BoundingBox: geometry.NewBoundingBox(),
		AllEdges:    make([]EdgeInfo, 0),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := range s.Objects {
		obj := &s.Objects[i]
		stats := ObjectStats{
			Index:       i,
			Shape:       obj.Shape,
			Kind:        obj.Kind,
			Label:       obj.Label,
			BoundingBox: geometry.NewBoundingBox(),
		}
		if obj.Kind == mesh.KindUnknown {
			result.Unknown++
		}

		if !obj.Mesh.Empty() {
			stats.Err = obj.Mesh.Validate()
			stats.Vertices = len(obj.Mesh.Vertices)
			stats.Edges = len(obj.Mesh.Edges)
			stats.Faces = len(obj.Mesh.Faces)

			verts := obj.WorldVertices()
			for j := range verts {
				verts[j] = verts[j].Mul(1 / divisor)
				stats.BoundingBox.Extend(verts[j])
			}

			if stats.Err == nil {
				for _, e := range obj.Mesh.Edges {
					edge := EdgeInfo{Object: i, Start: verts[e[0]], End: verts[e[1]]}
					edge.Length = edge.Start.Distance(edge.End)
					result.AllEdges = append(result.AllEdges, edge)

					totalLength += edge.Length
					minLength = math.Min(minLength, edge.Length)
					maxLength = math.Max(maxLength, edge.Length)
				}

				model := export.BuildModel(s.Objects[i:i+1], export.Options{Divisor: divisor})
				stats.Triangles = model.TriangleCount()
				stats.SurfaceArea = model.SurfaceArea()
				stats.Volume = model.Volume()
			}
		}
		stats.Dimensions = stats.BoundingBox.Size()

		result.Vertices += stats.Vertices
		result.EdgeCount += stats.Edges
		result.Faces += stats.Faces
		result.Triangles += stats.Triangles
		result.SurfaceArea += stats.SurfaceArea
		result.Volume += stats.Volume
		result.BoundingBox.Union(stats.BoundingBox)
		result.Objects = append(result.Objects, stats)
	}

	result.Dimensions = result.BoundingBox.Size()
	if len(result.AllEdges) > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(len(result.AllEdges))
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the scene
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
