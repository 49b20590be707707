package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefdiver/assets"
	"github.com/milk9111/reefdiver/common"
	"github.com/milk9111/reefdiver/prefabs"
)

// playerState is the interface each concrete player state implements.
type playerState interface {
	Name() string
	Enter(p *Player)
	Update(p *Player, dt float64, in *Input)
}

// setState helper switches states and calls Enter.
func (p *Player) setState(s playerState) {
	p.state = s
	p.stateTime = 0
	p.state.Enter(p)
}

type swimIdleState struct{}

func (swimIdleState) Name() string    { return "idle" }
func (swimIdleState) Enter(p *Player) {}
func (swimIdleState) Update(p *Player, dt float64, in *Input) {
	if p.tryAttacks(in) {
		return
	}
	if in.MoveX != 0 || in.MoveY != 0 {
		p.setState(stateSwim)
	}
}

type swimmingState struct{}

func (swimmingState) Name() string    { return "swim" }
func (swimmingState) Enter(p *Player) {}
func (swimmingState) Update(p *Player, dt float64, in *Input) {
	if p.tryAttacks(in) {
		return
	}
	if in.MoveX == 0 && in.MoveY == 0 {
		p.setState(stateSwimIdle)
	}
}

type bubbleFormingState struct{}

func (bubbleFormingState) Name() string    { return "forming" }
func (bubbleFormingState) Enter(p *Player) { p.bubbleSpawned = false }
func (bubbleFormingState) Update(p *Player, dt float64, in *Input) {
	form := p.spec.Bubble
	// the projectile exists only partway through the wind-up, so a press can
	// never produce a same-frame hit
	if !p.bubbleSpawned && p.stateTime >= form.FormationSeconds*form.SpawnFraction {
		p.bubbleSpawned = true
		p.bubbleCooldown = form.CooldownSeconds
		dir := 1.0
		if p.FacingLeft {
			dir = -1
		}
		mouthX := p.X + p.Width
		if p.FacingLeft {
			mouthX = p.X
		}
		p.pending = append(p.pending, SpawnRequest{
			Kind: SpawnKindBubble,
			X:    mouthX,
			Y:    p.Y + p.Height*0.4,
			DirX: dir,
		})
	}
	if p.stateTime >= form.FormationSeconds {
		p.exitAttack(in)
	}
}

type meleeAttackingState struct{}

func (meleeAttackingState) Name() string    { return "melee" }
func (meleeAttackingState) Enter(p *Player) { p.meleeConsumed = false }
func (meleeAttackingState) Update(p *Player, dt float64, in *Input) {
	if p.stateTime >= p.spec.Melee.DurationSeconds {
		p.exitAttack(in)
	}
}

// singletons for each state to avoid allocating on every transition
var (
	stateSwimIdle playerState = &swimIdleState{}
	stateSwim     playerState = &swimmingState{}
	stateForming  playerState = &bubbleFormingState{}
	stateMelee    playerState = &meleeAttackingState{}
)

// Player is the diver. It owns its own timers; the scene owns membership and
// lives.
type Player struct {
	X, Y          float64 // top-left, world pixels
	Width, Height float64
	FacingLeft    bool

	spec prefabs.PlayerSpec

	state          playerState
	stateTime      float64
	invuln         float64
	bubbleCooldown float64
	bubbleSpawned  bool
	meleeConsumed  bool
	moving         bool

	pending []SpawnRequest
}

func NewPlayer(x, y float64, spec prefabs.PlayerSpec) *Player {
	p := &Player{
		X:      x,
		Y:      y,
		Width:  spec.Width,
		Height: spec.Height,
		spec:   spec,
	}
	p.state = stateSwimIdle
	return p
}

// ApplyTuning swaps in freshly loaded tuning values.
func (p *Player) ApplyTuning(spec prefabs.PlayerSpec) {
	p.spec = spec
	p.Width = spec.Width
	p.Height = spec.Height
}

// Update advances timers, applies movement, and runs the attack state
// machine. Returned spawn requests are drained each call.
func (p *Player) Update(dt float64, in *Input) []SpawnRequest {
	if in == nil {
		in = &Input{}
	}

	if p.invuln > 0 {
		p.invuln -= dt
		if p.invuln < 0 {
			p.invuln = 0
		}
	}
	if p.bubbleCooldown > 0 {
		p.bubbleCooldown -= dt
		if p.bubbleCooldown < 0 {
			p.bubbleCooldown = 0
		}
	}

	// kinematic movement, allowed in every state
	p.X += in.MoveX * p.spec.MoveSpeed * dt
	p.Y += in.MoveY * p.spec.MoveSpeed * dt
	p.moving = in.MoveX != 0 || in.MoveY != 0
	if in.MoveX < 0 {
		p.FacingLeft = true
	} else if in.MoveX > 0 {
		p.FacingLeft = false
	}

	// vertical clamp to the padded screen band; horizontal clamping belongs
	// to the scene, which knows the level bounds
	p.Y = common.Clamp(p.Y, p.spec.PadTop, common.BaseHeight-p.spec.PadBottom-p.Height)

	p.stateTime += dt
	p.state.Update(p, dt, in)

	out := p.pending
	p.pending = nil
	return out
}

// tryAttacks starts melee or bubble formation from a neutral state. Returns
// true if a state change happened.
func (p *Player) tryAttacks(in *Input) bool {
	if in.MeleePressed {
		p.setState(stateMelee)
		return true
	}
	if in.BubblePressed && p.bubbleCooldown <= 0 {
		p.setState(stateForming)
		return true
	}
	return false
}

func (p *Player) exitAttack(in *Input) {
	if in != nil && (in.MoveX != 0 || in.MoveY != 0) {
		p.setState(stateSwim)
		return
	}
	p.setState(stateSwimIdle)
}

// TakeHit applies one hit if the invulnerability window is closed. It returns
// true exactly when a life should be lost, and reopens the window.
func (p *Player) TakeHit() bool {
	if p.invuln > 0 {
		return false
	}
	p.invuln = p.spec.InvulnSeconds
	return true
}

// CanBeHit reports whether the invulnerability window is closed.
func (p *Player) CanBeHit() bool {
	return p.invuln <= 0
}

// IsAttacking reports whether a melee swing is in progress.
func (p *Player) IsAttacking() bool {
	return p.state == stateMelee
}

// TryConsumeMeleeHit marks the current swing as having landed on the boss.
// One swing damages the boss at most once.
func (p *Player) TryConsumeMeleeHit() bool {
	if p.state != stateMelee || p.meleeConsumed {
		return false
	}
	p.meleeConsumed = true
	return true
}

// MeleeDamage returns the tuned melee damage.
func (p *Player) MeleeDamage() float64 {
	return p.spec.Melee.Damage
}

// MeleeBox returns the active attack box, or nil when not attacking.
func (p *Player) MeleeBox() *common.Rect {
	if p.state != stateMelee {
		return nil
	}
	m := p.spec.Melee
	x := p.X + p.Width
	if p.FacingLeft {
		x = p.X - m.Width
	}
	return &common.Rect{
		X:      x,
		Y:      p.Y + (p.Height-m.Height)/2,
		Width:  m.Width,
		Height: m.Height,
	}
}

// Bounds returns the collision circle derived from the current position.
func (p *Player) Bounds() common.Circle {
	return common.Circle{
		X: p.X + p.Width/2,
		Y: p.Y + p.Height/2,
		R: p.Width * 0.35,
	}
}

// Rect returns the rectangle bounds, used for collectible overlap.
func (p *Player) Rect() common.Rect {
	return common.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// AnimKind returns the active animation set by priority:
// melee > forming > moving > idle.
func (p *Player) AnimKind() string {
	switch {
	case p.state == stateMelee:
		return "melee"
	case p.state == stateForming:
		return "forming"
	case p.moving:
		return "swim"
	default:
		return "idle"
	}
}

// BubbleCooldown exposes the remaining cooldown, for the HUD.
func (p *Player) BubbleCooldown() float64 {
	return p.bubbleCooldown
}

func (p *Player) Draw(screen *ebiten.Image) {
	// blink while invulnerable
	if p.invuln > 0 && int(p.invuln*10)%2 == 0 {
		return
	}
	img := assets.Image("player_"+p.AnimKind(), int(p.Width), int(p.Height))
	op := &ebiten.DrawImageOptions{}
	w := img.Bounds().Dx()
	if p.FacingLeft {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(w), 0)
	}
	op.GeoM.Translate(p.X, p.Y)
	screen.DrawImage(img, op)
}
