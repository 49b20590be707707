package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefdiver/common"
)

// Enemy is the shared contract for removable hostile entities. Each kind
// implements it independently; there is no shared base struct.
type Enemy interface {
	// Update advances the enemy and reports whether the scene should remove
	// it on this pass.
	Update(dt, playerX, playerY float64) bool
	Draw(screen *ebiten.Image)
	Bounds() common.Circle
	Alive() bool
	// Kill flags the enemy dead; removal happens on the following update.
	Kill()
	Score() int
	// Destroy is the best-effort cleanup hook invoked on removal.
	Destroy()
}
