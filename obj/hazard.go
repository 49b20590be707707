package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefdiver/assets"
	"github.com/milk9111/reefdiver/common"
	"github.com/milk9111/reefdiver/prefabs"
)

// Hazard is a static danger zone that cycles active/inactive on a timer,
// like a vent that periodically erupts.
type Hazard struct {
	X, Y float64 // top-left

	spec   prefabs.HazardSpec
	active bool
	timer  float64
}

func NewHazard(x, y float64, spec prefabs.HazardSpec) *Hazard {
	return &Hazard{
		X:      x,
		Y:      y,
		spec:   spec,
		active: true,
		timer:  spec.ActiveSeconds,
	}
}

// ApplyTuning swaps in freshly loaded tuning values.
func (h *Hazard) ApplyTuning(spec prefabs.HazardSpec) {
	h.spec = spec
}

func (h *Hazard) Update(dt float64) {
	h.timer -= dt
	if h.timer > 0 {
		return
	}
	h.active = !h.active
	if h.active {
		h.timer += h.spec.ActiveSeconds
	} else {
		h.timer += h.spec.InactiveSeconds
	}
}

// IsActive reports whether the hazard currently hurts on contact.
func (h *Hazard) IsActive() bool {
	return h.active
}

// IsDamaging reports whether contact costs a life. Hazards always damage
// while active.
func (h *Hazard) IsDamaging() bool {
	return true
}

func (h *Hazard) Rect() common.Rect {
	return common.Rect{X: h.X, Y: h.Y, Width: h.spec.Width, Height: h.spec.Height}
}

func (h *Hazard) Draw(screen *ebiten.Image) {
	img := assets.Image("hazard", int(h.spec.Width), int(h.spec.Height))
	op := &ebiten.DrawImageOptions{}
	if !h.active {
		op.ColorScale.ScaleAlpha(0.25)
	}
	op.GeoM.Translate(h.X, h.Y)
	screen.DrawImage(img, op)
}
