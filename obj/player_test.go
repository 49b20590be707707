package obj

import (
	"testing"

	"github.com/milk9111/reefdiver/prefabs"
)

func stepPlayer(p *Player, seconds, dt float64, in *Input) []SpawnRequest {
	var out []SpawnRequest
	for t := 0.0; t < seconds; t += dt {
		out = append(out, p.Update(dt, in)...)
	}
	return out
}

func TestPlayerInvulnerabilityWindow(t *testing.T) {
	p := NewPlayer(100, 360, prefabs.DefaultPlayerSpec())

	if !p.TakeHit() {
		t.Fatalf("first hit should land")
	}
	if p.CanBeHit() {
		t.Fatalf("window should be open right after a hit")
	}

	stepPlayer(p, 0.5, 0.05, nil)
	if p.TakeHit() {
		t.Fatalf("hit at 0.5s should be absorbed by the 1.5s window")
	}

	stepPlayer(p, 1.1, 0.05, nil)
	if !p.TakeHit() {
		t.Fatalf("hit after the window expires should land")
	}
}

func TestPlayerBubbleFormationAndCooldown(t *testing.T) {
	spec := prefabs.DefaultPlayerSpec()
	p := NewPlayer(100, 360, spec)

	reqs := p.Update(0.016, &Input{BubblePressed: true})
	if len(reqs) != 0 {
		t.Fatalf("bubble must not spawn on the press frame")
	}
	if p.AnimKind() != "forming" {
		t.Fatalf("expected forming state, got %s", p.AnimKind())
	}

	// step through the wind-up; exactly one bubble should appear partway
	reqs = stepPlayer(p, spec.Bubble.FormationSeconds+0.1, 0.05, nil)
	if len(reqs) != 1 {
		t.Fatalf("expected 1 spawn request during formation, got %d", len(reqs))
	}
	if reqs[0].Kind != SpawnKindBubble {
		t.Fatalf("expected a bubble request, got kind %d", reqs[0].Kind)
	}
	if p.AnimKind() != "idle" {
		t.Fatalf("expected idle after formation, got %s", p.AnimKind())
	}

	// a second press during cooldown is refused
	p.Update(0.016, &Input{BubblePressed: true})
	if p.AnimKind() == "forming" {
		t.Fatalf("press during cooldown should not start a new formation")
	}

	// after the cooldown runs out the press works again
	stepPlayer(p, spec.Bubble.CooldownSeconds, 0.05, nil)
	p.Update(0.016, &Input{BubblePressed: true})
	if p.AnimKind() != "forming" {
		t.Fatalf("press after cooldown should start forming, got %s", p.AnimKind())
	}
}

func TestPlayerMeleeSwing(t *testing.T) {
	spec := prefabs.DefaultPlayerSpec()
	p := NewPlayer(100, 360, spec)

	if p.MeleeBox() != nil {
		t.Fatalf("no melee box before a swing")
	}

	p.Update(0.016, &Input{MeleePressed: true})
	if !p.IsAttacking() {
		t.Fatalf("expected melee state after press")
	}
	box := p.MeleeBox()
	if box == nil {
		t.Fatalf("expected an active melee box")
	}
	if box.X < p.X+p.Width {
		t.Fatalf("facing right, box should extend right of the player")
	}

	if !p.TryConsumeMeleeHit() {
		t.Fatalf("first consume of a swing should succeed")
	}
	if p.TryConsumeMeleeHit() {
		t.Fatalf("one swing damages the boss at most once")
	}

	stepPlayer(p, spec.Melee.DurationSeconds+0.1, 0.05, nil)
	if p.MeleeBox() != nil {
		t.Fatalf("melee box should vanish when the swing ends")
	}
}

func TestPlayerMeleeBoxFacingLeft(t *testing.T) {
	p := NewPlayer(300, 360, prefabs.DefaultPlayerSpec())
	p.Update(0.016, &Input{MoveX: -1})
	if !p.FacingLeft {
		t.Fatalf("moving left should set facing")
	}
	p.Update(0.016, &Input{MeleePressed: true})
	box := p.MeleeBox()
	if box == nil {
		t.Fatalf("expected an active melee box")
	}
	if box.X+box.Width > p.X+0.001 {
		t.Fatalf("facing left, box should extend left of the player")
	}
}

func TestPlayerVerticalClamp(t *testing.T) {
	spec := prefabs.DefaultPlayerSpec()
	p := NewPlayer(100, 360, spec)

	stepPlayer(p, 5, 0.05, &Input{MoveY: -1})
	if p.Y != spec.PadTop {
		t.Fatalf("expected clamp at top pad %v, got %v", spec.PadTop, p.Y)
	}

	stepPlayer(p, 5, 0.05, &Input{MoveY: 1})
	want := 720 - spec.PadBottom - spec.Height
	if p.Y != want {
		t.Fatalf("expected clamp at bottom pad %v, got %v", want, p.Y)
	}
}

func TestPlayerAnimPriority(t *testing.T) {
	p := NewPlayer(100, 360, prefabs.DefaultPlayerSpec())

	p.Update(0.016, &Input{MoveX: 1})
	if p.AnimKind() != "swim" {
		t.Fatalf("moving should report swim, got %s", p.AnimKind())
	}

	// melee outranks movement
	p.Update(0.016, &Input{MoveX: 1, MeleePressed: true})
	if p.AnimKind() != "melee" {
		t.Fatalf("melee should outrank swim, got %s", p.AnimKind())
	}
}
