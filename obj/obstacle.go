package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefdiver/assets"
	"github.com/milk9111/reefdiver/common"
)

// Obstacle is a static block. Damaging obstacles (urchins, wrecks with sharp
// edges) hurt the player on contact; plain ones only stop bubbles.
type Obstacle struct {
	X, Y          float64 // top-left
	Width, Height float64
	Damaging      bool
}

func NewObstacle(x, y, w, h float64, damaging bool) *Obstacle {
	return &Obstacle{X: x, Y: y, Width: w, Height: h, Damaging: damaging}
}

func (o *Obstacle) Rect() common.Rect {
	return common.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

func (o *Obstacle) Draw(screen *ebiten.Image) {
	img := assets.Image("obstacle", int(o.Width), int(o.Height))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.X, o.Y)
	screen.DrawImage(img, op)
}
