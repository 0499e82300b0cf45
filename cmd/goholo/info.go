package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/goholo/internal/config"
	"github.com/philipparndt/goholo/pkg/analysis"
	"github.com/philipparndt/goholo/pkg/mesh"
	"github.com/philipparndt/goholo/pkg/scene"
	"github.com/spf13/cobra"
)

func newInfoCmd(root *rootOptions) *cobra.Command {
	var (
		edges   int
		between []float64
	)

	cmd := &cobra.Command{
		Use:   "info [scene]",
		Short: "Display statistics about a scene",
		Long:  "Show per-object mesh statistics, bounding boxes, surface area and edge lengths in scene units.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := edgeQuery{longest: edges}
			if cmd.Flags().Changed("edges-between") {
				if len(between) != 2 || between[0] > between[1] {
					return fmt.Errorf("--edges-between wants min,max with min <= max, got %v", between)
				}
				q.between = true
				q.min, q.max = between[0], between[1]
			}
			return runInfo(cmd.OutOrStdout(), root.cfg, args, q)
		},
	}
	cmd.Flags().IntVar(&edges, "edges", 0, "also list the N longest edges")
	cmd.Flags().Float64SliceVar(&between, "edges-between", nil, "also list edges whose length lies in min,max")
	return cmd
}

// edgeQuery selects the edge listings printed after the summary
type edgeQuery struct {
	longest  int
	between  bool
	min, max float64
}

func runInfo(out io.Writer, cfg *config.Config, args []string, q edgeQuery) error {
	desc, path, err := loadScene(args)
	if err != nil {
		return err
	}

	s := scene.Build(desc, mesh.NewLibrary(), scene.BuildOptions{UnitScale: cfg.Scene.UnitScale})
	result := analysis.AnalyzeScene(s, cfg.Export.Divisor)

	fmt.Fprintln(out, "Scene Information")
	fmt.Fprintln(out, "=================")
	if result.Title != "" {
		fmt.Fprintf(out, "Title: %s\n", result.Title)
	}
	if s.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", s.Description)
	}
	if path == "" {
		path = "(built-in demo)"
	}
	fmt.Fprintf(out, "File: %s\n\n", path)

	fmt.Fprintln(out, "Objects:")
	for _, o := range result.Objects {
		name := o.Shape
		if o.Label != "" {
			name += " \"" + o.Label + "\""
		}
		if o.Kind == mesh.KindUnknown {
			fmt.Fprintf(out, "  #%d %s: unknown shape, not drawn\n", o.Index, name)
			continue
		}
		fmt.Fprintf(out, "  #%d %s: %d vertices, %d edges, %d faces", o.Index, name, o.Vertices, o.Edges, o.Faces)
		if o.Triangles > 0 {
			fmt.Fprintf(out, ", area %s", analysis.FormatMeasurement(o.SurfaceArea, "sq units"))
		}
		fmt.Fprintln(out)
		if o.Err != nil {
			fmt.Fprintf(out, "     invalid mesh: %v\n", o.Err)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Totals:")
	fmt.Fprintf(out, "  Objects: %d\n", len(result.Objects))
	fmt.Fprintf(out, "  Vertices: %d\n", result.Vertices)
	fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Faces: %d (%d triangles)\n", result.Faces, result.Triangles)
	fmt.Fprintf(out, "  Surface Area: %s\n", analysis.FormatMeasurement(result.SurfaceArea, "sq units"))
	fmt.Fprintf(out, "  Enclosed Volume: %s\n\n", analysis.FormatMeasurement(result.Volume, "cubic units"))

	if !result.BoundingBox.IsEmpty() {
		fmt.Fprintln(out, "Bounding Box:")
		fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Fprintf(out, "  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
		fmt.Fprintf(out, "  Size: %s\n", analysis.FormatVector(result.Dimensions))
		fmt.Fprintf(out, "  Diagonal: %s\n\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))
	}

	if len(result.AllEdges) > 0 {
		fmt.Fprintln(out, "Edge Lengths:")
		fmt.Fprintf(out, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, ""))
		fmt.Fprintf(out, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, ""))
		fmt.Fprintf(out, "  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, ""))
	}

	if q.longest > 0 {
		fmt.Fprintf(out, "\nLongest Edges:\n")
		printEdges(out, analysis.FindLongestEdges(result, q.longest))
	}
	if q.between {
		found := analysis.FindEdgesByLength(result, q.min, q.max)
		fmt.Fprintf(out, "\nEdges from %s to %s: %d\n",
			analysis.FormatMeasurement(q.min, ""), analysis.FormatMeasurement(q.max, ""), len(found))
		printEdges(out, found)
	}
	return nil
}

func printEdges(out io.Writer, edges []analysis.EdgeInfo) {
	for i, e := range edges {
		fmt.Fprintf(out, "  %d. object #%d %s -> %s: %s\n", i+1, e.Object,
			analysis.FormatVector(e.Start), analysis.FormatVector(e.End), analysis.FormatMeasurement(e.Length, ""))
	}
}
