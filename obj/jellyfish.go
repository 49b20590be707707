package obj

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefdiver/assets"
	"github.com/milk9111/reefdiver/common"
	"github.com/milk9111/reefdiver/prefabs"
)

// Jellyfish drifts around its anchor point. The drift can come from a tengo
// motion script; when no script is set, or the script errors, a built-in sine
// drift takes over.
type Jellyfish struct {
	X, Y float64 // center

	spec             prefabs.JellyfishSpec
	anchorX, anchorY float64
	t                float64
	phase            float64
	script           *MotionScript
	scriptBroken     bool
	dead             bool
}

func NewJellyfish(x, y float64, spec prefabs.JellyfishSpec, script *MotionScript) *Jellyfish {
	return &Jellyfish{
		X:       x,
		Y:       y,
		spec:    spec,
		anchorX: x,
		anchorY: y,
		phase:   float64(int(x)%7) * 0.3,
		script:  script,
	}
}

// SetScript swaps the drift script, e.g. after a hot reload.
func (j *Jellyfish) SetScript(script *MotionScript) {
	j.script = script
	j.scriptBroken = false
}

func (j *Jellyfish) Update(dt, playerX, playerY float64) bool {
	if j.dead {
		return true
	}

	j.t += dt
	var dx, dy float64
	if j.script != nil && !j.scriptBroken {
		var err error
		dx, dy, err = j.script.Offsets(j.t, j.phase)
		if err != nil {
			log.Printf("[jellyfish] drift script failed, falling back: %v", err)
			j.scriptBroken = true
		}
	}
	if j.script == nil || j.scriptBroken {
		f := j.spec.DriftFrequency
		dx = math.Sin(j.t*f*2+j.phase) * j.spec.DriftAmplitude * 0.35
		dy = math.Cos(j.t*f+j.phase) * j.spec.DriftAmplitude
	}
	j.X = j.anchorX + dx
	j.Y = j.anchorY + dy
	return false
}

func (j *Jellyfish) Bounds() common.Circle {
	return common.Circle{X: j.X, Y: j.Y, R: j.spec.Radius}
}

func (j *Jellyfish) Alive() bool { return !j.dead }
func (j *Jellyfish) Kill()       { j.dead = true }
func (j *Jellyfish) Score() int  { return j.spec.Score }
func (j *Jellyfish) Destroy()    {}

func (j *Jellyfish) Draw(screen *ebiten.Image) {
	size := int(j.spec.Radius * 2)
	img := assets.Image("jellyfish", size, size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(j.X-float64(size)/2, j.Y-float64(size)/2)
	screen.DrawImage(img, op)
}
