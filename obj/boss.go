package obj

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefdiver/assets"
	"github.com/milk9111/reefdiver/common"
	"github.com/milk9111/reefdiver/component"
	"github.com/milk9111/reefdiver/prefabs"
)

// BossState names the current node of the boss state machine.
type BossState string

const (
	BossSpawning  BossState = "spawning"
	BossIdle      BossState = "idle"
	BossPatrol    BossState = "patrol"
	BossPreparing BossState = "preparing_attack"
	BossAttacking BossState = "attacking"
	BossHurt      BossState = "hurt"
	BossDeath     BossState = "death"
)

// AttackPattern is one of the boss's scripted attacks.
type AttackPattern int

const (
	AttackCharge AttackPattern = iota
	AttackVolley
	AttackSlam
)

func (a AttackPattern) String() string {
	switch a {
	case AttackCharge:
		return "charge"
	case AttackVolley:
		return "volley"
	case AttackSlam:
		return "slam"
	}
	return "unknown"
}

// bossState is the interface each concrete boss state implements.
type bossState interface {
	Name() BossState
	Enter(b *Boss)
	Update(b *Boss, dt float64)
}

// setState switches states and resets the per-state clock. Death is terminal:
// once entered, nothing moves the machine again.
func (b *Boss) setState(s bossState) {
	if b.state != nil && b.state.Name() == BossDeath {
		return
	}
	b.state = s
	b.stateTime = 0
	b.state.Enter(b)
}

type bossSpawningState struct{}

func (bossSpawningState) Name() BossState { return BossSpawning }
func (bossSpawningState) Enter(b *Boss)   { b.Scale = 0 }
func (bossSpawningState) Update(b *Boss, dt float64) {
	d := b.spec.SpawnSeconds
	if d <= 0 {
		d = 0.01
	}
	b.Scale = common.Clamp(b.stateTime/d, 0, 1)
	if b.stateTime >= d {
		b.Scale = 1
		b.setState(stateBossIdle)
	}
}

type bossIdleState struct{}

func (bossIdleState) Name() BossState { return BossIdle }
func (bossIdleState) Enter(b *Boss)   {}
func (bossIdleState) Update(b *Boss, dt float64) {
	// brief pause so an attack can never chain instantly into the next
	if b.stateTime >= b.spec.IdleSeconds {
		b.setState(stateBossPatrol)
	}
}

type bossPatrolState struct{}

func (bossPatrolState) Name() BossState { return BossPatrol }
func (bossPatrolState) Enter(b *Boss)   {}
func (bossPatrolState) Update(b *Boss, dt float64) {
	speed := b.spec.BaseSpeed * b.phaseSpeed()
	b.X += b.dirX * speed * dt
	if b.X <= b.PatrolMinX {
		b.X = b.PatrolMinX
		b.dirX = 1
	} else if b.X >= b.PatrolMaxX {
		b.X = b.PatrolMaxX
		b.dirX = -1
	}
	if b.clock-b.lastAttackTime >= b.attackDelay() {
		b.setState(stateBossPreparing)
	}
}

type bossPreparingState struct{}

func (bossPreparingState) Name() BossState { return BossPreparing }
func (bossPreparingState) Enter(b *Boss)   {}
func (bossPreparingState) Update(b *Boss, dt float64) {
	if b.stateTime >= b.spec.WindupSeconds {
		b.selectPattern()
		b.setState(stateBossAttacking)
	}
}

type bossAttackingState struct{}

func (bossAttackingState) Name() BossState { return BossAttacking }
func (bossAttackingState) Enter(b *Boss)   { b.volleyFired = 0 }
func (s bossAttackingState) Update(b *Boss, dt float64) {
	switch b.pattern {
	case AttackCharge:
		s.updateCharge(b, dt)
	case AttackVolley:
		s.updateVolley(b, dt)
	case AttackSlam:
		s.updateSlam(b, dt)
	}
}

func (bossAttackingState) updateCharge(b *Boss, dt float64) {
	c := b.spec.Charge
	switch {
	case b.stateTime < c.WindupSeconds:
		// stationary wind-up
	case b.stateTime < c.WindupSeconds+c.DashSeconds:
		speed := b.spec.BaseSpeed * b.phaseSpeed() * c.SpeedMultiple
		b.X += b.chargeDirX * speed * dt
		b.Y += b.chargeDirY * speed * dt
	default:
		b.finishAttack()
	}
}

func (bossAttackingState) updateVolley(b *Boss, dt float64) {
	v := b.spec.Volley
	shots := v.Shots
	if b.Phase() >= 3 {
		shots = v.ShotsPhase3
	}
	for b.volleyFired < shots && b.stateTime >= float64(b.volleyFired)*v.IntervalSeconds {
		// aim at the player's position at fire time; the shot is not tracked
		// afterwards
		dx := b.targetX - b.X
		dy := b.targetY - b.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < 1e-6 {
			dx, dy, dist = -1, 0, 1
		}
		b.pending = append(b.pending, SpawnRequest{
			Kind: SpawnKindBossShot,
			X:    b.X,
			Y:    b.Y,
			DirX: dx / dist,
			DirY: dy / dist,
		})
		b.volleyFired++
	}
	if b.volleyFired >= shots {
		b.finishAttack()
	}
}

func (bossAttackingState) updateSlam(b *Boss, dt float64) {
	s := b.spec.Slam
	switch {
	case b.stateTime < s.RiseSeconds:
		b.Y -= s.RiseSpeed * dt
	case b.stateTime < s.RiseSeconds+s.DescendSeconds:
		b.Y += s.DescendSpeed * dt
	default:
		b.Y = b.slamOriginY
		b.finishAttack()
	}
}

type bossHurtState struct{}

func (bossHurtState) Name() BossState { return BossHurt }
func (bossHurtState) Enter(b *Boss)   {}
func (bossHurtState) Update(b *Boss, dt float64) {
	if b.stateTime >= b.spec.HurtSeconds {
		b.setState(stateBossIdle)
	}
}

type bossDeathState struct{}

func (bossDeathState) Name() BossState { return BossDeath }
func (bossDeathState) Enter(b *Boss)   {}
func (bossDeathState) Update(b *Boss, dt float64) {
	b.Y += b.spec.SinkSpeed * dt
	if b.stateTime >= b.spec.DeathSinkSeconds {
		b.sunk = true
	}
}

// singletons for each state to avoid allocating on every transition
var (
	stateBossSpawning  bossState = &bossSpawningState{}
	stateBossIdle      bossState = &bossIdleState{}
	stateBossPatrol    bossState = &bossPatrolState{}
	stateBossPreparing bossState = &bossPreparingState{}
	stateBossAttacking bossState = &bossAttackingState{}
	stateBossHurt      bossState = &bossHurtState{}
	stateBossDeath     bossState = &bossDeathState{}
)

// Boss is the end-of-level encounter: a phase-scaled state machine that emits
// projectile spawn requests instead of touching scene collections.
type Boss struct {
	X, Y  float64 // center, world pixels
	Scale float64

	PatrolMinX, PatrolMaxX float64

	spec   prefabs.BossSpec
	Health *component.Health

	state     bossState
	stateTime float64
	clock     float64

	lastAttackTime float64
	dirX           float64

	pattern                AttackPattern
	volleyFired            int
	chargeDirX, chargeDirY float64
	slamOriginY            float64

	targetX, targetY float64

	rng     *rand.Rand
	pending []SpawnRequest
	sunk    bool
}

func NewBoss(x, y float64, spec prefabs.BossSpec) *Boss {
	b := &Boss{
		X:          x,
		Y:          y,
		PatrolMinX: x - 150,
		PatrolMaxX: x + 150,
		spec:       spec,
		Health:     component.NewHealth(spec.MaxHP),
		dirX:       -1,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	b.state = stateBossSpawning
	b.state.Enter(b)
	return b
}

// SetRand replaces the pattern-selection RNG, for deterministic tests.
func (b *Boss) SetRand(r *rand.Rand) {
	if r != nil {
		b.rng = r
	}
}

// ApplyTuning swaps in freshly loaded tuning values. Max HP changes are not
// applied mid-fight.
func (b *Boss) ApplyTuning(spec prefabs.BossSpec) {
	spec.MaxHP = b.spec.MaxHP
	b.spec = spec
}

// State returns the current state name.
func (b *Boss) State() BossState {
	return b.state.Name()
}

// Pattern returns the most recently selected attack pattern.
func (b *Boss) Pattern() AttackPattern {
	return b.pattern
}

// Phase derives the difficulty tier from the live hp fraction. It is a pure
// function of hp, recomputed at every query.
func (b *Boss) Phase() int {
	frac := b.Health.Fraction()
	switch {
	case frac <= 0.25:
		return 4
	case frac <= 0.5:
		return 3
	case frac <= 0.75:
		return 2
	default:
		return 1
	}
}

func (b *Boss) phaseSpeed() float64 {
	return phaseLookup(b.spec.PhaseSpeed, b.Phase(), 1)
}

func (b *Boss) attackDelay() float64 {
	return phaseLookup(b.spec.PhaseAttackDelay, b.Phase(), 2)
}

func phaseLookup(values []float64, phase int, fallback float64) float64 {
	if len(values) == 0 {
		return fallback
	}
	idx := phase - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(values) {
		idx = len(values) - 1
	}
	return values[idx]
}

// unlockedPatterns returns the attack patterns legal for the current phase.
func (b *Boss) unlockedPatterns() []AttackPattern {
	if b.Phase() >= 2 {
		return []AttackPattern{AttackCharge, AttackVolley, AttackSlam}
	}
	return []AttackPattern{AttackCharge, AttackVolley}
}

// selectPattern picks the next attack. Close-range pressure always forces a
// charge; otherwise the choice is uniform over the phase's unlocked set.
func (b *Boss) selectPattern() {
	if math.Abs(b.targetX-b.X) < b.spec.ChargeForceDistance {
		b.pattern = AttackCharge
	} else {
		unlocked := b.unlockedPatterns()
		b.pattern = unlocked[b.rng.Intn(len(unlocked))]
	}

	b.volleyFired = 0
	b.slamOriginY = b.Y
	dx := b.targetX - b.X
	dy := b.targetY - b.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1e-6 {
		dx, dy, dist = -1, 0, 1
	}
	b.chargeDirX = dx / dist
	b.chargeDirY = dy / dist
}

func (b *Boss) finishAttack() {
	b.lastAttackTime = b.clock
	b.setState(stateBossIdle)
}

// Update advances the state machine. playerX/playerY is the player center,
// sampled once per frame. Returned spawn requests are drained each call.
func (b *Boss) Update(dt, playerX, playerY float64) []SpawnRequest {
	b.clock += dt
	b.stateTime += dt
	b.targetX = playerX
	b.targetY = playerY

	b.state.Update(b, dt)

	out := b.pending
	b.pending = nil
	return out
}

// TakeDamage applies damage unless the boss is dead or still spawning. It
// returns true exactly once: on the call that brings hp to zero, so the
// caller can award the kill bonus.
func (b *Boss) TakeDamage(amount float64) bool {
	if b.Health.Dead || b.state.Name() == BossSpawning {
		return false
	}
	b.Health.ApplyDamage(amount, component.CombatEvent{Type: component.EventBossHit, Damage: amount})
	if b.Health.Dead {
		// death interrupts whatever was in progress
		b.interruptAttack()
		b.state = stateBossDeath
		b.stateTime = 0
		b.state.Enter(b)
		return true
	}
	// damage while already stunned does not restart the stun
	if b.state.Name() != BossHurt {
		b.interruptAttack()
		b.setState(stateBossHurt)
	}
	return false
}

// interruptAttack undoes transient attack displacement when damage cuts a
// pattern short. A slam in flight snaps back to its vertical origin so the
// boss does not patrol at the risen height afterwards.
func (b *Boss) interruptAttack() {
	if b.state.Name() == BossAttacking && b.pattern == AttackSlam {
		b.Y = b.slamOriginY
	}
}

// CanBeHit reports whether the boss currently takes damage and deals contact
// damage. Spawning and death are both excluded.
func (b *Boss) CanBeHit() bool {
	s := b.state.Name()
	return s != BossSpawning && s != BossDeath
}

// Removable reports whether the death sink finished and the scene may drop
// the boss.
func (b *Boss) Removable() bool {
	return b.sunk
}

// Bounds returns the collision circle derived from the current position.
func (b *Boss) Bounds() common.Circle {
	r := b.spec.Radius
	if b.Scale > 0 && b.Scale < 1 {
		r *= b.Scale
	}
	return common.Circle{X: b.X, Y: b.Y, R: r}
}

func (b *Boss) Draw(screen *ebiten.Image) {
	key := "boss"
	if b.state.Name() == BossHurt {
		key = "boss_hurt"
	}
	size := int(b.spec.Radius * 2)
	img := assets.Image(key, size, size)
	op := &ebiten.DrawImageOptions{}
	scale := b.Scale
	if scale <= 0 {
		scale = 0.01
	}
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	if b.state.Name() == BossDeath {
		op.GeoM.Rotate(math.Pi)
	}
	op.GeoM.Translate(b.X, b.Y)
	screen.DrawImage(img, op)
}
