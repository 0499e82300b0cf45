package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"
	"github.com/philipparndt/goholo/internal/logger"
	"github.com/philipparndt/goholo/pkg/viewer"
	"go.uber.org/zap"
)

// wheelScale converts fyne scroll units to the engine's wheel delta
const wheelScale = 10.0

// SceneView shows an engine's frames and forwards pointer input to it
type SceneView struct {
	widget.BaseWidget
	engine  *viewer.Engine
	image   *canvas.Image
	surface *gg.Context
	mods    viewer.Modifiers

	// OnChanged is called after input that may have changed selection,
	// mode or history
	OnChanged func()
}

// NewSceneView creates a view of engine
func NewSceneView(engine *viewer.Engine) *SceneView {
	v := &SceneView{
		engine: engine,
		image:  canvas.NewImageFromImage(nil),
	}
	v.image.FillMode = canvas.ImageFillStretch
	v.image.ScaleMode = canvas.ImageScaleFastest
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer creates the renderer for the widget
func (v *SceneView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.image)
}

// MinSize keeps the view usable in small windows
func (v *SceneView) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

// Resize grows the drawing surface with the widget
func (v *SceneView) Resize(size fyne.Size) {
	v.BaseWidget.Resize(size)
	v.Redraw()
}

// Redraw renders the engine's current state into the view
func (v *SceneView) Redraw() {
	size := v.Size()
	w, h := int(size.Width), int(size.Height)
	if w <= 0 || h <= 0 {
		return
	}
	if v.surface == nil || v.surface.Width() != w || v.surface.Height() != h {
		v.surface = gg.NewContext(w, h)
		v.engine.Resize(float64(w), float64(h))
	}

	if err := v.engine.Render(v.surface); err != nil {
		logger.Debug("frame rendered with errors", zap.Error(err))
	}
	v.image.Image = v.surface.Image()
	v.image.Refresh()
}

func (v *SceneView) changed() {
	v.Redraw()
	if v.OnChanged != nil {
		v.OnChanged()
	}
}

// MouseDown starts a gesture (desktop.Mouseable)
func (v *SceneView) MouseDown(ev *desktop.MouseEvent) {
	v.mods = modifiers(ev.Modifier)
	v.engine.PointerDown(viewer.PointerEvent{
		Position:  point(ev.Position),
		Button:    button(ev.Button),
		Modifiers: v.mods,
	})
	v.changed()
}

// MouseUp ends a gesture (desktop.Mouseable)
func (v *SceneView) MouseUp(*desktop.MouseEvent) {
	v.engine.PointerUp()
	v.changed()
}

// Dragged moves the camera or the grabbed object (fyne.Draggable)
func (v *SceneView) Dragged(ev *fyne.DragEvent) {
	v.engine.PointerMove(viewer.PointerEvent{Position: point(ev.Position), Modifiers: v.mods})
	v.Redraw()
}

// DragEnd ends a gesture (fyne.Draggable)
func (v *SceneView) DragEnd() {
	v.engine.PointerUp()
	v.changed()
}

// MouseIn is part of desktop.Hoverable
func (v *SceneView) MouseIn(ev *desktop.MouseEvent) {
	v.MouseMoved(ev)
}

// MouseMoved updates hover (desktop.Hoverable)
func (v *SceneView) MouseMoved(ev *desktop.MouseEvent) {
	v.mods = modifiers(ev.Modifier)
	v.engine.PointerMove(viewer.PointerEvent{Position: point(ev.Position), Modifiers: v.mods})
	v.Redraw()
}

// MouseOut ends any gesture and clears hover (desktop.Hoverable)
func (v *SceneView) MouseOut() {
	v.engine.PointerLeave()
	v.changed()
}

// Scrolled zooms the camera (fyne.Scrollable)
func (v *SceneView) Scrolled(ev *fyne.ScrollEvent) {
	v.engine.Wheel(-float64(ev.Scrolled.DY) * wheelScale)
	v.Redraw()
}
