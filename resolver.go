package main

import (
	"github.com/milk9111/reefdiver/component"
	"github.com/milk9111/reefdiver/obj"
)

const (
	bossHitScore  = 10
	bossKillBonus = 500
)

// Frame is the snapshot of live entities the resolver works over. The scene
// builds one per update; the resolver never touches collection membership.
type Frame struct {
	Player    *obj.Player
	Boss      *obj.Boss
	Bubbles   []*obj.Bubble
	Shots     []*obj.BossShot
	Enemies   []obj.Enemy
	Hazards   []*obj.Hazard
	Obstacles []*obj.Obstacle
	Coins     []*obj.Coin
}

// CombatResolver runs the pairwise contact checks in a fixed order: player
// contact first, then player projectiles, then melee, then pickups. Effects
// are applied through the entities' own damage methods and reported as combat
// events.
type CombatResolver struct {
	Emitter *component.CombatEventEmitter
}

func NewCombatResolver(emitter *component.CombatEventEmitter) *CombatResolver {
	if emitter == nil {
		emitter = &component.CombatEventEmitter{}
	}
	return &CombatResolver{Emitter: emitter}
}

func (r *CombatResolver) Resolve(f Frame) {
	if f.Player == nil {
		return
	}
	r.resolvePlayerContact(f)
	r.resolveBubbles(f)
	r.resolveMelee(f)
	r.resolveCoins(f)
}

// resolvePlayerContact checks everything that can hurt the player. The
// invulnerability window opens on the first landed hit, so any number of
// simultaneous contacts costs at most one life.
func (r *CombatResolver) resolvePlayerContact(f Frame) {
	pb := f.Player.Bounds()

	if f.Boss != nil && f.Boss.CanBeHit() {
		bb := f.Boss.Bounds()
		if pb.Overlaps(&bb) {
			r.hitPlayer(f.Player, pb.X, pb.Y)
		}
	}

	for _, s := range f.Shots {
		if !s.Alive() {
			continue
		}
		sb := s.Bounds()
		if pb.Overlaps(&sb) {
			s.Fade()
			r.hitPlayer(f.Player, sb.X, sb.Y)
		}
	}

	for _, e := range f.Enemies {
		if !e.Alive() {
			continue
		}
		eb := e.Bounds()
		if pb.Overlaps(&eb) {
			r.hitPlayer(f.Player, eb.X, eb.Y)
		}
	}

	for _, h := range f.Hazards {
		if !h.IsActive() || !h.IsDamaging() {
			continue
		}
		rect := h.Rect()
		if pb.IntersectsRect(&rect) {
			r.hitPlayer(f.Player, pb.X, pb.Y)
		}
	}

	for _, o := range f.Obstacles {
		if !o.Damaging {
			continue
		}
		rect := o.Rect()
		if pb.IntersectsRect(&rect) {
			r.hitPlayer(f.Player, pb.X, pb.Y)
		}
	}
}

func (r *CombatResolver) hitPlayer(p *obj.Player, x, y float64) {
	if !p.TakeHit() {
		return
	}
	r.Emitter.Emit(component.CombatEvent{Type: component.EventPlayerHit, X: x, Y: y})
}

// resolveBubbles checks the player's projectiles in a fixed order: hazards
// and obstacles (pop only, no damage), then the boss, then enemies. A bubble
// pops on its first contact of any kind, whether or not a hazard is in its
// active window.
func (r *CombatResolver) resolveBubbles(f Frame) {
	for _, b := range f.Bubbles {
		if !b.Alive() {
			continue
		}
		bb := b.Bounds()

		popped := false
		for _, h := range f.Hazards {
			rect := h.Rect()
			if bb.IntersectsRect(&rect) {
				b.Pop()
				r.Emitter.Emit(component.CombatEvent{Type: component.EventBubblePop, X: bb.X, Y: bb.Y})
				popped = true
				break
			}
		}
		if !popped {
			for _, o := range f.Obstacles {
				rect := o.Rect()
				if bb.IntersectsRect(&rect) {
					b.Pop()
					r.Emitter.Emit(component.CombatEvent{Type: component.EventBubblePop, X: bb.X, Y: bb.Y})
					popped = true
					break
				}
			}
		}
		if popped {
			continue
		}

		if f.Boss != nil && f.Boss.CanBeHit() {
			bossB := f.Boss.Bounds()
			if bb.Overlaps(&bossB) {
				b.Pop()
				r.Emitter.Emit(component.CombatEvent{Type: component.EventBubblePop, X: bb.X, Y: bb.Y})
				r.damageBoss(f.Boss, b.Damage(), bb.X, bb.Y)
				continue
			}
		}

		for _, e := range f.Enemies {
			if !e.Alive() {
				continue
			}
			eb := e.Bounds()
			if bb.Overlaps(&eb) {
				b.Pop()
				e.Kill()
				r.Emitter.Emit(component.CombatEvent{Type: component.EventBubblePop, X: bb.X, Y: bb.Y})
				r.Emitter.Emit(component.CombatEvent{
					Type:  component.EventEnemyKill,
					Score: e.Score(),
					X:     eb.X,
					Y:     eb.Y,
				})
				break
			}
		}
	}
}

// resolveMelee applies the active swing to enemies and the boss, testing each
// target's center against the attack box. One swing damages the boss at most
// once.
func (r *CombatResolver) resolveMelee(f Frame) {
	box := f.Player.MeleeBox()
	if box == nil {
		return
	}

	for _, e := range f.Enemies {
		if !e.Alive() {
			continue
		}
		eb := e.Bounds()
		if box.ContainsPoint(eb.X, eb.Y) {
			e.Kill()
			r.Emitter.Emit(component.CombatEvent{
				Type:  component.EventEnemyKill,
				Score: e.Score(),
				X:     eb.X,
				Y:     eb.Y,
			})
		}
	}

	if f.Boss != nil && f.Boss.CanBeHit() {
		bossB := f.Boss.Bounds()
		if box.ContainsPoint(bossB.X, bossB.Y) && f.Player.TryConsumeMeleeHit() {
			r.Emitter.Emit(component.CombatEvent{Type: component.EventMeleeHit, X: bossB.X, Y: bossB.Y})
			r.damageBoss(f.Boss, f.Player.MeleeDamage(), bossB.X, bossB.Y)
		}
	}
}

// damageBoss applies damage and scores it. A lethal hit pays the kill bonus
// on top of the regular hit score.
func (r *CombatResolver) damageBoss(boss *obj.Boss, amount, x, y float64) {
	killed := boss.TakeDamage(amount)
	r.Emitter.Emit(component.CombatEvent{Type: component.EventBossHit, Damage: amount, Score: bossHitScore, X: x, Y: y})
	if killed {
		r.Emitter.Emit(component.CombatEvent{Type: component.EventBossKill, Score: bossKillBonus, X: x, Y: y})
	}
}

func (r *CombatResolver) resolveCoins(f Frame) {
	pr := f.Player.Rect()
	for _, c := range f.Coins {
		cr := c.Rect()
		if !pr.Intersects(&cr) {
			continue
		}
		if c.Collect() {
			r.Emitter.Emit(component.CombatEvent{
				Type:  component.EventCoinPickup,
				Score: c.Score(),
				X:     cr.X,
				Y:     cr.Y,
			})
		}
	}
}
