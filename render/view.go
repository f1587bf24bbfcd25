package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/atimics/signal-sub008/component"
	"github.com/atimics/signal-sub008/core"
	"github.com/atimics/signal-sub008/engine"
	"github.com/atimics/signal-sub008/engine/status"
)

// View draws a top-down slice of the world onto a terminal screen:
// X maps to columns, Z to rows, centered on the active camera's target.
// It reads renderable + transform through the world accessors each
// frame and owns no entity state of its own.
type View struct {
	screen tcell.Screen
	reg    *status.Registry

	// Horizontal world units per terminal cell; rows cover twice the
	// units of columns to compensate for cell aspect
	unitsPerCell float64
}

// NewView wraps an initialized tcell screen. reg supplies the HUD
// metrics line and may be nil.
func NewView(screen tcell.Screen, reg *status.Registry) *View {
	return &View{
		screen:       screen,
		reg:          reg,
		unitsPerCell: 2.0,
	}
}

// Update renders one frame. Registered with the scheduler as the
// render-kind system; runs after physics/collision/AI/camera so it
// draws settled state.
func (v *View) Update(w *engine.World, dt float64) {
	_ = dt
	if v == nil || v.screen == nil || w == nil {
		return
	}

	v.screen.Clear()
	width, height := v.screen.Size()
	cx, cy := width/2, height/2

	var center core.Vector3
	if cam := w.Camera(w.ActiveCamera()); cam != nil {
		center = cam.Target
	}

	w.Each(component.KindRenderable|component.KindTransform, func(e core.Entity) {
		r := w.Renderable(e)
		tf := w.Transform(e)
		if r == nil || tf == nil || !r.Visible {
			return
		}

		x := cx + int((tf.Position.X-center.X)/v.unitsPerCell)
		y := cy + int((tf.Position.Z-center.Z)/(v.unitsPerCell*2))
		if x < 0 || x >= width || y < 0 || y >= height-1 {
			return
		}

		glyph := r.Glyph
		if glyph == 0 {
			glyph = '·'
		}
		style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(r.Color)))
		v.screen.SetContent(x, y, glyph, nil, style)
	})

	v.drawHUD(w, width, height)
	v.screen.Show()
}

// drawHUD writes one status line along the bottom row.
func (v *View) drawHUD(w *engine.World, width, height int) {
	hud := fmt.Sprintf(" frame %d  t=%.1fs  entities %d/%d ",
		w.FrameNumber, w.TotalTime, w.EntityCount(), w.Capacity())

	if v.reg != nil {
		collisions := v.reg.Ints.Get("scheduler.collision.calls").Load()
		hud += fmt.Sprintf(" collision calls %d ", collisions)
	}

	style := tcell.StyleDefault.Reverse(true)
	y := height - 1
	for i, ch := range hud {
		if i >= width {
			break
		}
		v.screen.SetContent(i, y, ch, nil, style)
	}
}
