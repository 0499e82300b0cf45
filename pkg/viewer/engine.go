// Package viewer renders scenes of procedural solids on a 2D raster surface
// and drives camera and object manipulation from pointer input.
package viewer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/philipparndt/goholo/internal/logger"
	"github.com/philipparndt/goholo/pkg/export"
	"github.com/philipparndt/goholo/pkg/geometry"
	"github.com/philipparndt/goholo/pkg/history"
	"github.com/philipparndt/goholo/pkg/mesh"
	"github.com/philipparndt/goholo/pkg/physics"
	"github.com/philipparndt/goholo/pkg/scene"
	"go.uber.org/zap"
)

// Options configure an Engine. Zero fields take the DefaultOptions value.
type Options struct {
	Width, Height  float64
	// ParticleBudget is the flow particle count; negative disables particles
	ParticleBudget int
	ExplodeFactor  float64
	UnitScale      float64
	UnitDivisor    float64
	PreserveCamera bool
	Background     gg.RGBA
	FontSize       float64
	HistoryLimit   int
	Seed           uint64
	// Now stamps export file names; defaults to time.Now
	Now func() time.Time
}

// DefaultOptions returns an 800x600 engine configuration
func DefaultOptions() Options {
	return Options{
		Width:          800,
		Height:         600,
		ParticleBudget: physics.DefaultParticleBudget,
		ExplodeFactor:  DefaultExplodeFactor,
		UnitScale:      scene.UnitScale,
		UnitDivisor:    export.DefaultDivisor,
		Background:     DefaultBackdrop,
		FontSize:       DefaultFontSize,
		HistoryLimit:   history.DefaultLimit,
		Seed:           1,
	}
}

// ObjectState is the mutable part of an object captured by a snapshot
type ObjectState struct {
	Transform scene.Transform
	Material  scene.Material
}

// Snapshot is a value copy of everything undo/redo restores
type Snapshot struct {
	Objects            []ObjectState
	Camera             Camera
	SpringDisplacement float64
}

// Engine owns a scene and all interaction state. It is not safe for
// concurrent use; hosts call it from a single goroutine.
type Engine struct {
	opts Options
	lib  *mesh.Library

	scene     *scene.Scene
	camera    Camera
	spring    physics.Spring
	particles *physics.Particles
	history   *history.Stack[Snapshot]

	mode     Mode
	hovered  int
	selected int
	pressed  bool
	changed  bool
	last     geometry.Vector2

	paused   bool
	exploded bool
	clock    float64

	face     text.Face
	faceErr  error
	faceInit bool
}

// NewEngine creates an engine with an empty scene
func NewEngine(opts Options) *Engine {
	def := DefaultOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.ParticleBudget == 0 {
		opts.ParticleBudget = def.ParticleBudget
	}
	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}
	if opts.ExplodeFactor <= 0 {
		opts.ExplodeFactor = def.ExplodeFactor
	}
	if opts.UnitDivisor <= 0 {
		opts.UnitDivisor = def.UnitDivisor
	}
	if opts.Background == (gg.RGBA{}) {
		opts.Background = def.Background
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	e := &Engine{
		opts:      opts,
		lib:       mesh.NewLibrary(),
		scene:     &scene.Scene{},
		camera:    NewCamera(),
		spring:    physics.NewSpring(),
		particles: physics.NewParticles(opts.Seed),
		history:   history.New[Snapshot](opts.HistoryLimit),
		hovered:   -1,
		selected:  -1,
	}
	e.history.Push(e.snapshot())
	return e
}

// Load replaces the scene wholesale with one built from desc
func (e *Engine) Load(desc *scene.Description) {
	e.scene = scene.Build(desc, e.lib, scene.BuildOptions{
		UnitScale: e.opts.UnitScale,
		OnUnknownShape: func(index int, shape string) {
			logger.Warn("unknown shape, object will not render", zap.Int("index", index), zap.String("shape", shape))
		},
	})

	if !e.opts.PreserveCamera {
		e.camera.Reset()
	}
	e.spring = physics.NewSpring()
	e.hovered, e.selected = -1, -1
	e.mode = ModeRotate
	e.pressed, e.changed = false, false

	if e.scene.HasFlow() {
		e.particles.Seed(e.opts.ParticleBudget)
	} else {
		e.particles.Seed(0)
	}

	e.history.Reset()
	e.history.Push(e.snapshot())

	logger.Info("scene loaded",
		zap.String("title", e.scene.Title),
		zap.Int("objects", len(e.scene.Objects)),
		zap.Int("particles", e.particles.Len()))
}

// Resize changes the raster surface size
func (e *Engine) Resize(width, height float64) {
	if width > 0 && height > 0 {
		e.opts.Width, e.opts.Height = width, height
	}
}

// Viewport returns the current surface size
func (e *Engine) Viewport() Viewport {
	return Viewport{Width: e.opts.Width, Height: e.opts.Height}
}

// Update advances the simulation by dt seconds: animation clock and
// particles (unless paused), idle auto-rotation and the spring.
func (e *Engine) Update(dt float64) {
	if !e.paused {
		e.clock += dt
		e.particles.Step()
		if !e.pressed && !e.spring.Dragging {
			e.camera.Yaw(AutoRotateStep)
		}
	}
	e.spring.Step()
}

func (e *Engine) frameState() FrameState {
	explode := 1.0
	if e.exploded {
		explode = e.opts.ExplodeFactor
	}
	return FrameState{Time: e.clock, Explode: explode, Spring: e.spring}
}

func (e *Engine) project() []Projection {
	fs := e.frameState()
	vp := e.Viewport()
	out := make([]Projection, len(e.scene.Objects))
	for i := range e.scene.Objects {
		out[i] = ProjectObject(&e.scene.Objects[i], i, fs, e.camera, vp)
	}
	return out
}

// Compose projects and composites the current state without drawing it
func (e *Engine) Compose() *Frame {
	hud := HUD{
		Title:    e.scene.Title,
		Zoom:     e.camera.Zoom,
		Paused:   e.paused,
		Exploded: e.exploded,
		Mode:     e.mode,
	}
	if e.selected >= 0 {
		hud.Selected = e.scene.Objects[e.selected].Kind.String()
	}
	return Compose(Composition{
		Scene:       e.scene,
		Projections: e.project(),
		Camera:      e.camera,
		Viewport:    e.Viewport(),
		Hovered:     e.hovered,
		Selected:    e.selected,
		Particles:   e.particles.Items,
		Background:  e.opts.Background,
		HUD:         hud,
	})
}

// Render draws the current state onto dc
func (e *Engine) Render(dc *gg.Context) error {
	if dc == nil {
		return errNoSurface
	}
	if err := e.Compose().Draw(dc, e.labelFace()); err != nil {
		logger.Debug("frame drawn with errors", zap.Error(err))
		return err
	}
	return nil
}

// Frame runs one update and renders the result
func (e *Engine) Frame(dc *gg.Context, dt float64) error {
	e.Update(dt)
	return e.Render(dc)
}

// NewSurface allocates a raster surface matching the viewport
func (e *Engine) NewSurface() *gg.Context {
	return gg.NewContext(int(e.opts.Width), int(e.opts.Height))
}

func (e *Engine) labelFace() text.Face {
	if !e.faceInit {
		e.faceInit = true
		e.face, e.faceErr = LoadFace(e.opts.FontSize)
		if e.faceErr != nil {
			logger.Warn("labels disabled", zap.Error(e.faceErr))
		}
	}
	return e.face
}

// TogglePause freezes or resumes the simulation clock and ambient motion
func (e *Engine) TogglePause() {
	e.SetPaused(!e.paused)
}

// SetPaused sets the pause flag
func (e *Engine) SetPaused(paused bool) {
	e.paused = paused
}

// ToggleExplode switches the explode factor on or off
func (e *Engine) ToggleExplode() {
	e.exploded = !e.exploded
}

// ResetView restores the default camera, turns explode off, zeroes the
// spring, clears the selection and records the result.
func (e *Engine) ResetView() {
	e.camera.Reset()
	e.exploded = false
	e.spring.Reset()
	e.selected = -1
	e.pushHistory()
}

// Undo restores the previous snapshot. It reports false when there is none.
func (e *Engine) Undo() bool {
	snap, ok := e.history.Undo()
	if ok {
		e.restore(snap)
	}
	return ok
}

// Redo restores the next snapshot. It reports false when there is none.
func (e *Engine) Redo() bool {
	snap, ok := e.history.Redo()
	if ok {
		e.restore(snap)
	}
	return ok
}

func (e *Engine) snapshot() Snapshot {
	s := Snapshot{
		Objects:            make([]ObjectState, len(e.scene.Objects)),
		Camera:             e.camera,
		SpringDisplacement: e.spring.Displacement,
	}
	for i := range e.scene.Objects {
		s.Objects[i] = ObjectState{
			Transform: e.scene.Objects[i].Transform,
			Material:  e.scene.Objects[i].Material,
		}
	}
	return s
}

func (e *Engine) pushHistory() {
	e.history.Push(e.snapshot())
	logger.Debug("history snapshot", zap.Int("entries", e.history.Len()), zap.Int("cursor", e.history.Cursor()))
}

func (e *Engine) restore(s Snapshot) {
	for i := range e.scene.Objects {
		if i >= len(s.Objects) {
			break
		}
		e.scene.Objects[i].Transform = s.Objects[i].Transform
		e.scene.Objects[i].Material = s.Objects[i].Material
	}
	e.camera = s.Camera
	e.spring.Displacement = s.SpringDisplacement
	e.spring.Velocity = 0
}

// Blob is an exported file held in memory
type Blob struct {
	Name      string
	MediaType string
	Data      []byte
}

// Export serializes the scene's base geometry in the given format
func (e *Engine) Export(format export.Format) (Blob, error) {
	var buf bytes.Buffer
	opts := export.Options{Divisor: e.opts.UnitDivisor, Name: e.scene.Title}
	if err := export.Write(&buf, e.scene.Objects, format, opts); err != nil {
		return Blob{}, fmt.Errorf("export %s: %w", format, err)
	}
	blob := Blob{
		Name:      fmt.Sprintf("goholo_export_%d.%s", e.opts.Now().UnixMilli(), format.Extension()),
		MediaType: format.MediaType(),
		Data:      buf.Bytes(),
	}
	logger.Info("scene exported", zap.String("file", blob.Name), zap.Int("bytes", len(blob.Data)))
	return blob, nil
}

// Read accessors

// Scene returns the live scene. Callers must not retain it across Load.
func (e *Engine) Scene() *scene.Scene { return e.scene }

// Objects returns the live scene objects
func (e *Engine) Objects() []scene.Object { return e.scene.Objects }

// Camera returns a copy of the camera rig
func (e *Engine) Camera() Camera { return e.camera }

// Spring returns a copy of the spring state
func (e *Engine) Spring() physics.Spring { return e.spring }

// Mode returns the current gesture mode
func (e *Engine) Mode() Mode { return e.mode }

// Selected returns the selected object index, or -1
func (e *Engine) Selected() int { return e.selected }

// Hovered returns the hovered object index, or -1
func (e *Engine) Hovered() int { return e.hovered }

// Paused reports whether the simulation clock is stopped
func (e *Engine) Paused() bool { return e.paused }

// Exploded reports whether the explode factor is applied
func (e *Engine) Exploded() bool { return e.exploded }

// Clock returns the simulation time in seconds
func (e *Engine) Clock() float64 { return e.clock }

// HistoryLen returns the number of stored snapshots
func (e *Engine) HistoryLen() int { return e.history.Len() }

// CanUndo reports whether Undo would restore an earlier state
func (e *Engine) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would restore an undone state
func (e *Engine) CanRedo() bool { return e.history.CanRedo() }

// Particles returns the live flow particles
func (e *Engine) Particles() []physics.Particle { return e.particles.Items }

// Projections returns every object projected with the current state
func (e *Engine) Projections() []Projection { return e.project() }
