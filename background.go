package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefdiver/common"
	"golang.org/x/image/colornames"
)

const dayCycleSeconds = 90.0

// Background draws the water gradient and tints it through a slow day-night
// cycle. Purely cosmetic; nothing collides with it.
type Background struct {
	t   float64
	img *ebiten.Image
}

func NewBackground() *Background {
	return &Background{}
}

func (b *Background) Update(dt float64) {
	b.t += dt
}

// blend returns 0 at midday and 1 at midnight.
func (b *Background) blend() float64 {
	return (1 - math.Cos(b.t*2*math.Pi/dayCycleSeconds)) / 2
}

func (b *Background) Draw(screen *ebiten.Image) {
	if b.img == nil {
		b.img = ebiten.NewImage(common.BaseWidth, common.BaseHeight)
	}
	day := colornames.Steelblue
	night := colornames.Midnightblue
	t := b.blend()
	b.img.Fill(color.RGBA{
		R: uint8(common.Lerp(float64(day.R), float64(night.R), t)),
		G: uint8(common.Lerp(float64(day.G), float64(night.G), t)),
		B: uint8(common.Lerp(float64(day.B), float64(night.B), t)),
		A: 255,
	})
	screen.DrawImage(b.img, nil)
}
