package viewer

import (
	"cmp"
	"math"
	"slices"

	"github.com/gogpu/gg"
	"github.com/philipparndt/goholo/pkg/geometry"
	"github.com/philipparndt/goholo/pkg/physics"
	"github.com/philipparndt/goholo/pkg/scene"
)

// Ground plane and backdrop constants
const (
	GroundY      = 250.0
	shadowSkewX  = 0.4
	shadowSkewZ  = 0.2
	GridHalfSize = 300.0
	GridSteps    = 8

	// wireDepthBias draws wireframes just behind the faces they outline
	wireDepthBias = 10.0
)

// Backdrop layers sort behind every finite geometry depth, grid first.
var (
	gridDepth   = math.Inf(1)
	shadowDepth = math.MaxFloat64
)

var (
	shadowFill    = gg.RGBA{R: 14.0 / 255, G: 165.0 / 255, B: 233.0 / 255, A: 0.05}
	shadowStroke  = gg.RGBA{R: 14.0 / 255, G: 165.0 / 255, B: 233.0 / 255, A: 0.1}
	gridColor     = gg.RGBA{R: 14.0 / 255, G: 165.0 / 255, B: 233.0 / 255, A: 0.15}
	particleColor = gg.Hex("#60a5fa")
	white         = gg.RGBA{R: 1, G: 1, B: 1, A: 1}
)

// Layer identifies what a draw command paints
type Layer int

const (
	LayerGrid Layer = iota
	LayerShadow
	LayerFace
	LayerWire
	LayerParticle
)

func (l Layer) String() string {
	switch l {
	case LayerGrid:
		return "grid"
	case LayerShadow:
		return "shadow"
	case LayerFace:
		return "face"
	case LayerWire:
		return "wire"
	default:
		return "particle"
	}
}

// DrawCommand is one depth-sorted unit of painting. Paths are screen-space
// polygons when Closed, else polylines. A zero alpha disables fill or stroke.
// Particle commands draw a circle of Radius at Paths[0][0].
type DrawCommand struct {
	Layer     Layer
	Object    int
	Depth     float64
	Paths     [][]geometry.Vector2
	Closed    bool
	Fill      gg.RGBA
	Stroke    gg.RGBA
	LineWidth float64
	Radius    float64
}

// Bracket marks the corners of a highlighted object
type Bracket struct {
	Rect  geometry.Rect
	Color gg.RGBA
}

// Label is a leader-line annotation anchored at an object's centre
type Label struct {
	Anchor      geometry.Vector2
	Text        string
	Highlighted bool
}

// HUD is the status strip drawn over everything else
type HUD struct {
	Title    string
	Zoom     float64
	Paused   bool
	Exploded bool
	Mode     Mode
	Selected string
}

// Frame is a composed picture ready to rasterize: commands sorted farthest
// first, then overlays in a fixed order.
type Frame struct {
	Viewport   Viewport
	Background gg.RGBA
	Commands   []DrawCommand
	Brackets   []Bracket
	Labels     []Label
	HUD        HUD
}

// Composition is everything the compositor reads for one frame
type Composition struct {
	Scene       *scene.Scene
	Projections []Projection
	Camera      Camera
	Viewport    Viewport
	Hovered     int
	Selected    int
	Particles   []physics.Particle
	Background  gg.RGBA
	HUD         HUD
}

// Compose lights, culls and orders the scene into a Frame
func Compose(in Composition) *Frame {
	f := &Frame{Viewport: in.Viewport, Background: in.Background, HUD: in.HUD}

	f.Commands = append(f.Commands, gridCommand(in.Camera, in.Viewport))

	for i := range in.Projections {
		p := &in.Projections[i]
		obj := &in.Scene.Objects[p.Index]
		highlighted := p.Index == in.Hovered || p.Index == in.Selected

		if highlighted && !p.Bounds.IsEmpty() {
			f.Brackets = append(f.Brackets, Bracket{Rect: p.Bounds, Color: obj.Material.Color})
		}
		if obj.Label != "" {
			f.Labels = append(f.Labels, Label{Anchor: p.Center, Text: obj.Label, Highlighted: highlighted})
		}
		if obj.Mesh.Empty() {
			continue
		}

		if obj.HasFaces() {
			f.Commands = append(f.Commands, shadowCommand(obj, p, in.Camera, in.Viewport))
			f.Commands = append(f.Commands, faceCommands(obj, p, in.Camera, highlighted)...)
		}
		f.Commands = append(f.Commands, wireCommand(obj, p, highlighted))
	}

	for _, pt := range in.Particles {
		screen, depth, scale := in.Camera.ProjectWorld(pt.Position, in.Viewport)
		f.Commands = append(f.Commands, DrawCommand{
			Layer:  LayerParticle,
			Object: -1,
			Depth:  depth,
			Paths:  [][]geometry.Vector2{{screen}},
			Fill:   particleColor,
			Radius: math.Max(0.5, 2*scale),
		})
	}

	slices.SortStableFunc(f.Commands, func(a, b DrawCommand) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return f
}

func faceCommands(obj *scene.Object, p *Projection, cam Camera, highlighted bool) []DrawCommand {
	var cmds []DrawCommand
	opacity := obj.Material.Opacity
	for _, face := range obj.Mesh.Faces {
		world := make([]geometry.Vector3, len(face))
		screen := make([]geometry.Vector2, len(face))
		for j, idx := range face {
			world[j] = p.World[idx]
			screen[j] = p.Screen[idx]
		}

		shade := ShadeFace(geometry.PolygonNormal(world), cam, highlighted)
		if !shade.Visible {
			continue
		}

		cmd := DrawCommand{
			Layer:  LayerFace,
			Object: p.Index,
			Depth:  p.MeanDepth(face),
			Paths:  [][]geometry.Vector2{screen},
			Closed: true,
			Fill:   withAlpha(obj.Material.Color, shade.FillAlpha(opacity)),
		}
		if shade.Rim(highlighted) {
			rim := shade.RimAlpha(opacity, highlighted)
			cmd.LineWidth = 1
			if highlighted {
				cmd.LineWidth = 1.5
			} else {
				rim *= 0.4
			}
			cmd.Stroke = withAlpha(white, rim)
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func wireCommand(obj *scene.Object, p *Projection, highlighted bool) DrawCommand {
	color := obj.Material.Color
	alpha := obj.Material.Opacity * 0.3
	width := 1.0
	if highlighted {
		color = white
		alpha += 0.3
		width = 2
	}

	paths := make([][]geometry.Vector2, 0, len(obj.Mesh.Edges))
	for _, e := range obj.Mesh.Edges {
		paths = append(paths, []geometry.Vector2{p.Screen[e[0]], p.Screen[e[1]]})
	}
	return DrawCommand{
		Layer:     LayerWire,
		Object:    p.Index,
		Depth:     p.meanCameraDepth() + wireDepthBias,
		Paths:     paths,
		Stroke:    withAlpha(color, math.Min(1, alpha)),
		LineWidth: width,
	}
}

// shadowCommand flattens the object onto the ground plane along a fixed skew
func shadowCommand(obj *scene.Object, p *Projection, cam Camera, vp Viewport) DrawCommand {
	flat := make([]geometry.Vector2, len(p.World))
	for i, w := range p.World {
		dy := GroundY - w.Y
		ground := geometry.Vector3{X: w.X + dy*shadowSkewX, Y: GroundY, Z: w.Z + dy*shadowSkewZ}
		flat[i], _, _ = cam.ProjectWorld(ground, vp)
	}

	paths := make([][]geometry.Vector2, 0, len(obj.Mesh.Faces))
	for _, face := range obj.Mesh.Faces {
		poly := make([]geometry.Vector2, len(face))
		for j, idx := range face {
			poly[j] = flat[idx]
		}
		paths = append(paths, poly)
	}
	return DrawCommand{
		Layer:     LayerShadow,
		Object:    p.Index,
		Depth:     shadowDepth,
		Paths:     paths,
		Closed:    true,
		Fill:      shadowFill,
		Stroke:    shadowStroke,
		LineWidth: 1,
	}
}

func gridCommand(cam Camera, vp Viewport) DrawCommand {
	step := GridHalfSize / GridSteps
	paths := make([][]geometry.Vector2, 0, (2*GridSteps+1)*2)
	line := func(a, b geometry.Vector3) {
		sa, _, _ := cam.ProjectWorld(a, vp)
		sb, _, _ := cam.ProjectWorld(b, vp)
		paths = append(paths, []geometry.Vector2{sa, sb})
	}
	for i := -GridSteps; i <= GridSteps; i++ {
		pos := float64(i) * step
		line(geometry.Vector3{X: -GridHalfSize, Y: GroundY, Z: pos}, geometry.Vector3{X: GridHalfSize, Y: GroundY, Z: pos})
		line(geometry.Vector3{X: pos, Y: GroundY, Z: -GridHalfSize}, geometry.Vector3{X: pos, Y: GroundY, Z: GridHalfSize})
	}
	return DrawCommand{
		Layer:     LayerGrid,
		Object:    -1,
		Depth:     gridDepth,
		Paths:     paths,
		Stroke:    gridColor,
		LineWidth: 1,
	}
}

func withAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A = a
	return c
}
