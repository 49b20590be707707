package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefdiver/assets"
	"github.com/milk9111/reefdiver/common"
)

const (
	coinSize      = 20.0
	coinScore     = 5
	coinBobAmp    = 4.0
	coinBobFreq   = 2.0
	coinPhaseStep = 0.3
)

// Coin is a collectible. Collection is a one-way transition; the scene
// removes collected coins on the following pass.
type Coin struct {
	X, Y float64 // top-left of the resting position

	t         float64
	phase     float64
	collected bool
}

func NewCoin(x, y float64) *Coin {
	return &Coin{
		X:     x,
		Y:     y,
		phase: float64(int(x)%7) * coinPhaseStep,
	}
}

func (c *Coin) Update(dt float64) bool {
	if c.collected {
		return true
	}
	c.t += dt
	return false
}

// Collect marks the coin taken. Returns true only on the first call.
func (c *Coin) Collect() bool {
	if c.collected {
		return false
	}
	c.collected = true
	return true
}

// Collected reports whether the coin was taken.
func (c *Coin) Collected() bool {
	return c.collected
}

// Score returns the points awarded on pickup.
func (c *Coin) Score() int {
	return coinScore
}

func (c *Coin) bobOffset() float64 {
	return math.Sin(c.t*coinBobFreq+c.phase) * coinBobAmp
}

func (c *Coin) Rect() common.Rect {
	return common.Rect{X: c.X, Y: c.Y + c.bobOffset(), Width: coinSize, Height: coinSize}
}

func (c *Coin) Draw(screen *ebiten.Image) {
	img := assets.Image("coin", int(coinSize), int(coinSize))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(c.X, c.Y+c.bobOffset())
	screen.DrawImage(img, op)
}
