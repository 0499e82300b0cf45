package viewer

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/philipparndt/goholo/pkg/geometry"
)

// Overlay geometry in pixels
const (
	bracketPadding = 10.0
	bracketCorner  = 10.0

	labelOffset   = 30.0
	labelShelf    = 10.0
	labelBoxH     = 14.0
	labelPadding  = 4.0
	labelBaseline = 3.0
)

var (
	labelAccent     = gg.Hex("#38bdf8")
	labelFill       = gg.RGBA{R: 15.0 / 255, G: 23.0 / 255, B: 42.0 / 255, A: 0.8}
	labelFillHot    = gg.RGBA{R: 56.0 / 255, G: 189.0 / 255, B: 248.0 / 255, A: 0.9}
	labelBorder     = gg.RGBA{R: 56.0 / 255, G: 189.0 / 255, B: 248.0 / 255, A: 0.5}
	labelText       = gg.Hex("#e0f2fe")
	labelTextHot    = gg.Hex("#0f172a")
	hudText         = gg.RGBA{R: 125.0 / 255, G: 211.0 / 255, B: 252.0 / 255, A: 0.8}
	hudGaugeTrack   = gg.RGBA{R: 14.0 / 255, G: 165.0 / 255, B: 233.0 / 255, A: 0.2}
	hudGaugeFill    = gg.RGBA{R: 56.0 / 255, G: 189.0 / 255, B: 248.0 / 255, A: 0.8}
	DefaultBackdrop = gg.Hex("#020617")
)

// Draw rasterizes the frame onto dc. face may be nil, in which case text is
// skipped. Drawing continues past individual path errors; the first one is
// returned.
func (f *Frame) Draw(dc *gg.Context, face text.Face) error {
	r := &rasterizer{dc: dc, face: face}

	dc.ClearWithColor(f.Background)
	for i := range f.Commands {
		r.command(&f.Commands[i])
	}
	for _, b := range f.Brackets {
		r.bracket(b)
	}
	if face != nil {
		dc.SetFont(face)
		for _, l := range f.Labels {
			r.label(l)
		}
		r.hud(f.HUD, f.Viewport)
	}
	return r.err
}

type rasterizer struct {
	dc   *gg.Context
	face text.Face
	err  error
}

func (r *rasterizer) check(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

func (r *rasterizer) setColor(c gg.RGBA) {
	r.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func (r *rasterizer) path(points []geometry.Vector2, closed bool) {
	for i, p := range points {
		if i == 0 {
			r.dc.MoveTo(p.X, p.Y)
		} else {
			r.dc.LineTo(p.X, p.Y)
		}
	}
	if closed {
		r.dc.ClosePath()
	}
}

func (r *rasterizer) command(c *DrawCommand) {
	if len(c.Paths) == 0 {
		return
	}
	if c.Layer == LayerParticle {
		if !finite(c.Paths[0][0]) {
			return
		}
		p := c.Paths[0][0]
		r.dc.DrawCircle(p.X, p.Y, c.Radius)
		r.setColor(c.Fill)
		r.check(r.dc.Fill())
		return
	}

	if c.Fill.A > 0 {
		// Filled polygons are painted one at a time so overlapping shadows
		// accumulate like the faces that cast them.
		for _, poly := range c.Paths {
			r.path(poly, c.Closed)
			r.setColor(c.Fill)
			if c.Stroke.A > 0 {
				r.check(r.dc.FillPreserve())
				r.setColor(c.Stroke)
				r.dc.SetLineWidth(c.LineWidth)
				r.check(r.dc.Stroke())
			} else {
				r.check(r.dc.Fill())
			}
		}
		return
	}

	if c.Stroke.A > 0 {
		for _, line := range c.Paths {
			r.path(line, c.Closed)
		}
		r.setColor(c.Stroke)
		r.dc.SetLineWidth(c.LineWidth)
		r.check(r.dc.Stroke())
	}
}

func (r *rasterizer) bracket(b Bracket) {
	box := b.Rect.Expand(bracketPadding)
	minX, minY, maxX, maxY := box.MinX, box.MinY, box.MaxX, box.MaxY
	k := bracketCorner

	r.path([]geometry.Vector2{{X: minX, Y: minY + k}, {X: minX, Y: minY}, {X: minX + k, Y: minY}}, false)
	r.path([]geometry.Vector2{{X: maxX - k, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: minY + k}}, false)
	r.path([]geometry.Vector2{{X: maxX, Y: maxY - k}, {X: maxX, Y: maxY}, {X: maxX - k, Y: maxY}}, false)
	r.path([]geometry.Vector2{{X: minX + k, Y: maxY}, {X: minX, Y: maxY}, {X: minX, Y: maxY - k}}, false)

	r.setColor(withAlpha(b.Color, 1))
	r.dc.SetLineWidth(2)
	r.check(r.dc.Stroke())
}

func (r *rasterizer) label(l Label) {
	if !finite(l.Anchor) {
		return
	}
	x := l.Anchor.X + labelOffset
	y := l.Anchor.Y - labelOffset

	r.path([]geometry.Vector2{l.Anchor, {X: x, Y: y}, {X: x + labelShelf, Y: y}}, false)
	if l.Highlighted {
		r.setColor(white)
		r.dc.SetLineWidth(2)
	} else {
		r.setColor(labelAccent)
		r.dc.SetLineWidth(1)
	}
	r.check(r.dc.Stroke())

	w, _ := r.dc.MeasureString(l.Text)
	boxX := x + labelShelf
	boxY := y - labelBoxH/2
	r.dc.DrawRectangle(boxX, boxY, w+labelPadding*2, labelBoxH)
	if l.Highlighted {
		r.setColor(labelFillHot)
		r.check(r.dc.FillPreserve())
		r.setColor(white)
	} else {
		r.setColor(labelFill)
		r.check(r.dc.FillPreserve())
		r.setColor(labelBorder)
	}
	r.dc.SetLineWidth(1)
	r.check(r.dc.Stroke())

	if l.Highlighted {
		r.setColor(labelTextHot)
	} else {
		r.setColor(labelText)
	}
	r.dc.DrawString(l.Text, boxX+labelPadding, y+labelBaseline)
}

// hud draws the title, a status line and a vertical zoom gauge
func (r *rasterizer) hud(h HUD, vp Viewport) {
	r.setColor(hudText)
	if h.Title != "" {
		r.dc.DrawString(h.Title, 12, 20)
	}

	status := fmt.Sprintf("ZOOM %.2f  MODE %s", h.Zoom, h.Mode)
	if h.Paused {
		status += "  PAUSED"
	}
	if h.Exploded {
		status += "  EXPLODED"
	}
	if h.Selected != "" {
		status += "  SEL " + h.Selected
	}
	r.dc.DrawString(status, 12, vp.Height-12)

	const gaugeW, gaugeH = 4.0, 80.0
	gx := vp.Width - 20
	gy := vp.Height/2 - gaugeH/2
	r.dc.DrawRectangle(gx, gy, gaugeW, gaugeH)
	r.setColor(hudGaugeTrack)
	r.check(r.dc.Fill())

	level := (h.Zoom - MinZoom) / (MaxZoom - MinZoom)
	level = math.Max(0, math.Min(1, level))
	r.dc.DrawRectangle(gx, gy+gaugeH*(1-level), gaugeW, gaugeH*level)
	r.setColor(hudGaugeFill)
	r.check(r.dc.Fill())
}

func finite(p geometry.Vector2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// errNoSurface is returned when a frame is rendered without a context
var errNoSurface = errors.New("no drawing surface")
