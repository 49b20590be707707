package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the current logical input state. Entities read these flags and
// never touch key codes directly.
type Input struct {
	// MoveX/MoveY are -1, 0 or +1 per axis.
	MoveX float64
	MoveY float64
	// MeleePressed is true on the frame the melee key is pressed.
	MeleePressed bool
	// BubblePressed is true on the frame the bubble key is pressed.
	BubblePressed bool
	// PausePressed is true on the frame the pause key is pressed.
	PausePressed bool
	// ConfirmPressed is true on the frame the confirm/restart key is pressed.
	ConfirmPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and gamepad and refreshes the logical flags.
func (i *Input) Update() {
	var moveX, moveY float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		moveY += 1
	}

	melee := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	bubble := inpututil.IsKeyJustPressed(ebiten.KeyE)
	pause := inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	confirm := inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	// Gamepad: left stick plus standard face buttons.
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		lx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if lx < -0.3 {
			moveX = -1
		} else if lx > 0.3 {
			moveX = 1
		}
		if ly < -0.3 {
			moveY = -1
		} else if ly > 0.3 {
			moveY = 1
		}
		melee = melee || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		bubble = bubble || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightRight)
		pause = pause || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
		confirm = confirm || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	}

	i.MoveX = moveX
	i.MoveY = moveY
	i.MeleePressed = melee
	i.BubblePressed = bubble
	i.PausePressed = pause
	i.ConfirmPressed = confirm
}
