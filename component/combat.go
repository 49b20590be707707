package component

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventPlayerHit  CombatEventType = "player_hit"
	EventBubblePop  CombatEventType = "bubble_pop"
	EventEnemyKill  CombatEventType = "enemy_kill"
	EventBossHit    CombatEventType = "boss_hit"
	EventBossKill   CombatEventType = "boss_kill"
	EventMeleeHit   CombatEventType = "melee_hit"
	EventCoinPickup CombatEventType = "coin_pickup"
)

// CombatEvent is emitted while the resolver applies damage and score effects.
type CombatEvent struct {
	Type   CombatEventType
	Damage float64
	Score  int
	// world position of the contact, for effects
	X, Y float64
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans combat events out to registered handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
