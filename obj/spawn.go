package obj

// SpawnKind identifies what a spawn request should create.
type SpawnKind int

const (
	SpawnKindBubble SpawnKind = iota
	SpawnKindBossShot
)

// SpawnRequest is a value object returned by entity updates. The scene turns
// requests into real entities, so state machines never hold references to the
// collections they populate.
type SpawnRequest struct {
	Kind SpawnKind
	X, Y float64
	// DirX/DirY form the travel direction. Bubbles only use DirX.
	DirX, DirY float64
}
