package obj

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefdiver/assets"
	"github.com/milk9111/reefdiver/common"
	"github.com/milk9111/reefdiver/prefabs"
)

var bubblePool sync.Pool

// Bubble is the player's projectile. It travels horizontally, drifts upward,
// and always passes through a short pop sub-state before removal.
type Bubble struct {
	X, Y float64 // center

	spec     prefabs.BubbleSpec
	dirX     float64
	lifespan float64
	levelW   float64

	popping bool
	popTime float64
}

// SpawnBubble pulls a bubble from the pool. levelWidth bounds its travel.
func SpawnBubble(x, y, dirX float64, spec prefabs.BubbleSpec, levelWidth float64) *Bubble {
	b, _ := bubblePool.Get().(*Bubble)
	if b == nil {
		b = &Bubble{}
	}
	*b = Bubble{
		X:        x,
		Y:        y,
		spec:     spec,
		dirX:     dirX,
		lifespan: spec.LifespanSeconds,
		levelW:   levelWidth,
	}
	return b
}

// ReleaseBubble returns a removed bubble to the pool.
func ReleaseBubble(b *Bubble) {
	if b == nil {
		return
	}
	bubblePool.Put(b)
}

// Update advances the bubble and reports whether the scene should remove it.
// Removal only ever happens after the pop sub-state has played out.
func (b *Bubble) Update(dt float64) bool {
	if b.popping {
		b.popTime -= dt
		return b.popTime <= 0
	}

	b.X += b.dirX * b.spec.Speed * dt
	b.Y -= 20 * dt // bubbles rise
	b.lifespan -= dt
	if b.lifespan <= 0 || b.X < -b.spec.Radius || b.X > b.levelW+b.spec.Radius || b.Y < -b.spec.Radius {
		b.Pop()
	}
	return false
}

// Pop begins the fade-out. Calling it again has no effect.
func (b *Bubble) Pop() {
	if b.popping {
		return
	}
	b.popping = true
	b.popTime = b.spec.PopSeconds
}

// Alive reports whether the bubble can still hit things.
func (b *Bubble) Alive() bool {
	return !b.popping
}

// Damage returns the tuned hit damage.
func (b *Bubble) Damage() float64 {
	return b.spec.Damage
}

func (b *Bubble) Bounds() common.Circle {
	return common.Circle{X: b.X, Y: b.Y, R: b.spec.Radius}
}

func (b *Bubble) Draw(screen *ebiten.Image) {
	size := int(b.spec.Radius * 2)
	img := assets.Image("bubble", size, size)
	op := &ebiten.DrawImageOptions{}
	if b.popping && b.spec.PopSeconds > 0 {
		op.ColorScale.ScaleAlpha(float32(b.popTime / b.spec.PopSeconds))
	}
	op.GeoM.Translate(b.X-float64(size)/2, b.Y-float64(size)/2)
	screen.DrawImage(img, op)
}
