package viewer

import (
	"github.com/philipparndt/goholo/pkg/geometry"
	"github.com/philipparndt/goholo/pkg/physics"
	"github.com/philipparndt/goholo/pkg/scene"
)

// DefaultExplodeFactor spreads object positions away from the origin
const DefaultExplodeFactor = 1.8

// FrameState is the per-frame input to the projection pipeline
type FrameState struct {
	// Time is the simulation clock in seconds; it stops while paused
	Time float64
	// Explode multiplies object positions; 1 leaves them in place
	Explode float64
	Spring  physics.Spring
}

// Projection is one object pushed through the pipeline for one frame
type Projection struct {
	Index       int
	World       []geometry.Vector3
	Camera      []geometry.Vector3
	Screen      []geometry.Vector2
	Center      geometry.Vector2
	CenterDepth float64
	CenterScale float64
	Bounds      geometry.Rect
}

// FrameTransform returns the transform an object is drawn with this frame:
// its base transform plus animation offsets, spring scale and explode.
func FrameTransform(obj *scene.Object, index int, fs FrameState) scene.Transform {
	base := obj.Transform
	off := obj.Animation.At(fs.Time)

	springActive := obj.Kind.IsSpring() && fs.Spring.Active == index
	if springActive && obj.Animation != nil && obj.Animation.Kind == scene.AnimationOscillate {
		if fs.Spring.Dragging || !fs.Spring.AtRest() {
			off.Position = geometry.Vector3{}
		}
	}

	factor := geometry.Vector3{X: 1, Y: 1, Z: 1}.Add(off.Scale)
	switch {
	case springActive:
		factor.Y = 1 + fs.Spring.Displacement
	case obj.Kind.IsSpring() && fs.Spring.Active < 0 && obj.Animation != nil &&
		obj.Animation.Kind == scene.AnimationOscillate && !fs.Spring.AtRest():
		factor.Y = 1 + fs.Spring.Displacement
	}

	explode := fs.Explode
	if explode == 0 {
		explode = 1
	}

	return scene.Transform{
		Position: base.Position.Add(off.Position).Mul(explode),
		Rotation: base.Rotation.Add(off.Rotation),
		Scale:    base.Scale.Scale(factor),
	}
}

// ProjectObject transforms every vertex of obj to world, camera and screen
// space and gathers its screen bounds and projected centre.
func ProjectObject(obj *scene.Object, index int, fs FrameState, cam Camera, vp Viewport) Projection {
	tr := FrameTransform(obj, index, fs)

	p := Projection{Index: index, Bounds: geometry.NewRect()}
	p.Center, p.CenterDepth, p.CenterScale = cam.ProjectWorld(tr.Position, vp)

	if obj.Mesh.Empty() {
		return p
	}

	n := len(obj.Mesh.Vertices)
	p.World = make([]geometry.Vector3, n)
	p.Camera = make([]geometry.Vector3, n)
	p.Screen = make([]geometry.Vector2, n)
	for i, v := range obj.Mesh.Vertices {
		w := tr.Apply(v)
		c := cam.ToCamera(w)
		s, _ := cam.Project(c, vp)
		p.World[i] = w
		p.Camera[i] = c
		p.Screen[i] = s
		p.Bounds.Extend(s)
	}
	return p
}

// HitRadius is the fallback pick radius around the projected centre of
// objects with no vertices
const HitRadius = 40.0

// Hit reports whether a screen point picks this projection
func (p *Projection) Hit(pt geometry.Vector2) bool {
	if p.Bounds.IsEmpty() {
		return p.Center.Distance(pt) < HitRadius
	}
	return p.Bounds.Contains(pt)
}

// MeanDepth returns the average camera-space depth of the given vertices
func (p *Projection) MeanDepth(indices []int) float64 {
	if len(indices) == 0 {
		return p.CenterDepth
	}
	sum := 0.0
	for _, idx := range indices {
		sum += p.Camera[idx].Z
	}
	return sum / float64(len(indices))
}

// meanCameraDepth averages depth over every vertex
func (p *Projection) meanCameraDepth() float64 {
	if len(p.Camera) == 0 {
		return p.CenterDepth
	}
	sum := 0.0
	for _, c := range p.Camera {
		sum += c.Z
	}
	return sum / float64(len(p.Camera))
}
