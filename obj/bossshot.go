package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefdiver/assets"
	"github.com/milk9111/reefdiver/common"
	"github.com/milk9111/reefdiver/prefabs"
)

const bossShotFadeSeconds = 0.2

// BossShot is a boss projectile aimed at the player's position at fire time.
// Like bubbles, it fades briefly before removal.
type BossShot struct {
	X, Y float64 // center

	spec       prefabs.VolleySpec
	dirX, dirY float64
	lifespan   float64
	levelW     float64

	fading   bool
	fadeTime float64
}

func NewBossShot(x, y, dirX, dirY float64, spec prefabs.VolleySpec, levelWidth float64) *BossShot {
	return &BossShot{
		X:        x,
		Y:        y,
		spec:     spec,
		dirX:     dirX,
		dirY:     dirY,
		lifespan: spec.ShotLifespanSeconds,
		levelW:   levelWidth,
	}
}

// Update advances the shot and reports whether the scene should remove it.
func (s *BossShot) Update(dt float64) bool {
	if s.fading {
		s.fadeTime -= dt
		return s.fadeTime <= 0
	}

	s.X += s.dirX * s.spec.ShotSpeed * dt
	s.Y += s.dirY * s.spec.ShotSpeed * dt
	s.lifespan -= dt
	r := s.spec.ShotRadius
	if s.lifespan <= 0 || s.X < -r || s.X > s.levelW+r || s.Y < -r || s.Y > common.BaseHeight+r {
		s.Fade()
	}
	return false
}

// Fade begins the trail fade-out. Calling it again has no effect.
func (s *BossShot) Fade() {
	if s.fading {
		return
	}
	s.fading = true
	s.fadeTime = bossShotFadeSeconds
}

// Alive reports whether the shot can still hit the player.
func (s *BossShot) Alive() bool {
	return !s.fading
}

func (s *BossShot) Bounds() common.Circle {
	return common.Circle{X: s.X, Y: s.Y, R: s.spec.ShotRadius}
}

func (s *BossShot) Draw(screen *ebiten.Image) {
	size := int(s.spec.ShotRadius * 2)
	img := assets.Image("boss_shot", size, size)
	op := &ebiten.DrawImageOptions{}
	if s.fading {
		op.ColorScale.ScaleAlpha(float32(s.fadeTime / bossShotFadeSeconds))
	}
	op.GeoM.Translate(s.X-float64(size)/2, s.Y-float64(size)/2)
	screen.DrawImage(img, op)
}
