package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefdiver/assets"
	"github.com/milk9111/reefdiver/common"
	"github.com/milk9111/reefdiver/prefabs"
)

// Puffer patrols horizontally and inflates when the player comes close,
// growing its collision circle.
type Puffer struct {
	X, Y float64 // center

	spec     prefabs.PufferSpec
	originX  float64
	dirX     float64
	inflated bool
	dead     bool
}

func NewPuffer(x, y float64, spec prefabs.PufferSpec) *Puffer {
	return &Puffer{
		X:       x,
		Y:       y,
		spec:    spec,
		originX: x,
		dirX:    -1,
	}
}

func (p *Puffer) Update(dt, playerX, playerY float64) bool {
	if p.dead {
		return true
	}

	p.X += p.dirX * p.spec.Speed * dt
	if p.X <= p.originX-p.spec.PatrolRange {
		p.X = p.originX - p.spec.PatrolRange
		p.dirX = 1
	} else if p.X >= p.originX+p.spec.PatrolRange {
		p.X = p.originX + p.spec.PatrolRange
		p.dirX = -1
	}

	rangeSq := p.spec.InflateRange * p.spec.InflateRange
	p.inflated = common.DistSq(p.X, p.Y, playerX, playerY) < rangeSq
	return false
}

// Inflated reports whether the proximity reaction is active.
func (p *Puffer) Inflated() bool {
	return p.inflated
}

func (p *Puffer) Bounds() common.Circle {
	r := p.spec.Radius
	if p.inflated {
		r = p.spec.InflatedRadius
	}
	return common.Circle{X: p.X, Y: p.Y, R: r}
}

func (p *Puffer) Alive() bool { return !p.dead }
func (p *Puffer) Kill()       { p.dead = true }
func (p *Puffer) Score() int  { return p.spec.Score }
func (p *Puffer) Destroy()    {}

func (p *Puffer) Draw(screen *ebiten.Image) {
	r := p.Bounds().R
	img := assets.Image("puffer", int(p.spec.InflatedRadius*2), int(p.spec.InflatedRadius*2))
	op := &ebiten.DrawImageOptions{}
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	scale := (r * 2) / w
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	if p.dirX > 0 {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Translate(p.X, p.Y)
	screen.DrawImage(img, op)
}
