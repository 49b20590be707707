package component

// Health is a reusable health component for any entity that can take damage.
// Invulnerability is tracked as a seconds countdown advanced by Tick(dt).
type Health struct {
	Max     float64
	Current float64
	Invuln  float64
	Dead    bool

	OnDamage func(h *Health, evt CombatEvent)
	OnDeath  func(h *Health, evt CombatEvent)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// CanBeHit reports whether damage would currently be accepted.
func (h *Health) CanBeHit() bool {
	return h != nil && !h.Dead && h.Invuln <= 0
}

// ApplyDamage applies damage if not dead and not invulnerable. Returns true
// if damage was applied.
func (h *Health) ApplyDamage(amount float64, evt CombatEvent) bool {
	if h == nil || h.Dead || h.Invuln > 0 || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, evt)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h, evt)
		}
	}
	return true
}

// Fraction returns current/max in [0, 1].
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// StartInvuln opens an invulnerability window of the given duration. A longer
// window already running is kept.
func (h *Health) StartInvuln(seconds float64) {
	if h == nil || seconds <= 0 {
		return
	}
	if seconds > h.Invuln {
		h.Invuln = seconds
	}
}

// Tick advances the invulnerability timer.
func (h *Health) Tick(dt float64) {
	if h == nil || h.Invuln <= 0 {
		return
	}
	h.Invuln -= dt
	if h.Invuln < 0 {
		h.Invuln = 0
	}
}
