package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const startingLives = 3

// HUD tracks the run's lives, score and coins and draws them each frame.
type HUD struct {
	Lives int
	Score int
	Coins int

	face ebtext.Face
}

func NewHUD() *HUD {
	return &HUD{
		Lives: startingLives,
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

func (h *HUD) AddScore(points int) {
	if points > 0 {
		h.Score += points
	}
}

func (h *HUD) AddCoin(points int) {
	h.Coins++
	h.AddScore(points)
}

// LoseLife removes one life and reports whether any remain.
func (h *HUD) LoseLife() bool {
	if h.Lives > 0 {
		h.Lives--
	}
	return h.Lives > 0
}

func (h *HUD) Draw(screen *ebiten.Image, bossFrac float64, bubbleCooldown float64) {
	line := fmt.Sprintf("Lives: %d   Score: %d   Coins: %d", h.Lives, h.Score, h.Coins)
	if bubbleCooldown > 0 {
		line += fmt.Sprintf("   Bubble: %.1fs", bubbleCooldown)
	}
	if bossFrac >= 0 {
		line += fmt.Sprintf("   Boss: %d%%", int(bossFrac*100))
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(12, 16)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, line, h.face, op)
}

// DrawBanner centers a message, used for game over and level complete.
func (h *HUD) DrawBanner(screen *ebiten.Image, msg string) {
	w, _ := ebtext.Measure(msg, h.face, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-w/2, float64(screen.Bounds().Dy())/2)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, msg, h.face, op)
}
