package viewer

import (
	"github.com/philipparndt/goholo/internal/logger"
	"github.com/philipparndt/goholo/pkg/geometry"
	"go.uber.org/zap"
)

// Manipulation sensitivities
const (
	MoveSensitivity         = 0.5
	ObjectRotateSensitivity = 0.02
)

// Mode is the pointer gesture currently in progress
type Mode int

const (
	ModeRotate Mode = iota
	ModePan
	ModeManipulate
	ModeSpringDrag
)

func (m Mode) String() string {
	switch m {
	case ModePan:
		return "PAN"
	case ModeManipulate:
		return "MANIPULATE"
	case ModeSpringDrag:
		return "SPRING"
	default:
		return "ROTATE"
	}
}

// Button is the pointer button that started a gesture
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Modifiers is a set of held modifier keys
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModMeta
)

// Has reports whether all of m2 are held
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// PointerEvent is a host pointer event in surface pixels
type PointerEvent struct {
	Position  geometry.Vector2
	Button    Button
	Modifiers Modifiers
}

func (ev PointerEvent) wantsPan() bool {
	return ev.Button == ButtonSecondary || ev.Modifiers.Has(ModShift)
}

func (ev PointerEvent) wantsObjectRotate() bool {
	return ev.Modifiers.Has(ModCtrl) || ev.Modifiers.Has(ModMeta)
}

// hitTest returns the first object in scene order under pt, or -1
func (e *Engine) hitTest(pt geometry.Vector2) int {
	for _, p := range e.project() {
		if p.Hit(pt) {
			return p.Index
		}
	}
	return -1
}

// PointerDown starts a gesture
func (e *Engine) PointerDown(ev PointerEvent) {
	e.pressed = true
	e.changed = false
	e.last = ev.Position

	if ev.wantsPan() {
		e.mode = ModePan
		return
	}

	hit := e.hitTest(ev.Position)
	switch {
	case hit < 0:
		e.selected = -1
		e.mode = ModeRotate
	case e.scene.Objects[hit].Kind.IsSpring():
		e.selected = hit
		e.spring.Grab(hit)
		e.mode = ModeSpringDrag
	default:
		e.selected = hit
		e.mode = ModeManipulate
	}
	logger.Debug("pointer down", zap.Stringer("mode", e.mode), zap.Int("hit", hit))
}

// PointerMove updates hover and, while a button is held, applies the drag
func (e *Engine) PointerMove(ev PointerEvent) {
	e.hovered = e.hitTest(ev.Position)
	if !e.pressed {
		return
	}

	dx := ev.Position.X - e.last.X
	dy := ev.Position.Y - e.last.Y
	e.last = ev.Position
	if dx == 0 && dy == 0 {
		return
	}
	e.changed = true

	switch e.mode {
	case ModeRotate:
		e.camera.Orbit(dx, dy)
	case ModePan:
		e.camera.PanBy(dx, dy)
	case ModeSpringDrag:
		e.spring.Drag(dy)
	case ModeManipulate:
		if e.selected < 0 {
			return
		}
		tr := &e.scene.Objects[e.selected].Transform
		if ev.wantsObjectRotate() {
			tr.Rotation.X += dy * ObjectRotateSensitivity
			tr.Rotation.Y += dx * ObjectRotateSensitivity
		} else {
			tr.Position.X += dx * MoveSensitivity
			tr.Position.Y += dy * MoveSensitivity
		}
	}
}

// PointerUp ends the gesture and records it if anything moved
func (e *Engine) PointerUp() {
	if !e.pressed {
		return
	}
	e.pressed = false
	e.spring.Release()
	e.mode = ModeRotate
	if e.changed {
		e.pushHistory()
		e.changed = false
	}
}

// PointerLeave behaves like PointerUp and clears hover
func (e *Engine) PointerLeave() {
	e.PointerUp()
	e.hovered = -1
}

// Wheel zooms the camera. It is not recorded in history.
func (e *Engine) Wheel(dy float64) {
	e.camera.ZoomBy(dy)
}

// Action is a keyboard-triggered command
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionExplode
	ActionReset
	ActionUndo
	ActionRedo
	ActionExport
)

// KeyAction maps a host key name to an action. Key names follow fyne's
// (for example "Space", "E", "Home").
func KeyAction(key string, mods Modifiers) Action {
	command := mods.Has(ModCtrl) || mods.Has(ModMeta)
	switch {
	case key == "Space":
		return ActionPause
	case key == "E" && !command:
		return ActionExplode
	case key == "Home" || (key == "R" && !command):
		return ActionReset
	case key == "Z" && command && mods.Has(ModShift), key == "Y" && command:
		return ActionRedo
	case key == "Z" && command:
		return ActionUndo
	case key == "S" && command:
		return ActionExport
	default:
		return ActionNone
	}
}

// Apply runs an action. Export is left to the host, which must choose where
// the file goes; Apply reports false for it and for ActionNone.
func (e *Engine) Apply(a Action) bool {
	switch a {
	case ActionPause:
		e.TogglePause()
	case ActionExplode:
		e.ToggleExplode()
	case ActionReset:
		e.ResetView()
	case ActionUndo:
		return e.Undo()
	case ActionRedo:
		return e.Redo()
	default:
		return false
	}
	return true
}
