package main

import (
	"testing"

	"github.com/milk9111/reefdiver/component"
	"github.com/milk9111/reefdiver/obj"
)

func testLevel() *Level {
	return &Level{
		Name:   "test",
		Width:  2400,
		Player: SpawnPoint{X: 120, Y: 360},
		Boss:   &BossRecord{X: 2100, Y: 320, PatrolMinX: 1900, PatrolMaxX: 2300},
		Entities: []EntityRecord{
			{Type: "puffer", X: 500, Y: 400},
			{Type: "jellyfish", X: 700, Y: 200},
			{Type: "hazard", X: 900, Y: 600},
			{Type: "obstacle", X: 640, Y: 540, Width: 120, Height: 80},
			{Type: "coin", X: 430, Y: 300},
		},
	}
}

func TestSceneBuildSkipsUnknownTypes(t *testing.T) {
	level := testLevel()
	level.Entities = append(level.Entities, EntityRecord{Type: "kraken", X: 1, Y: 1})

	s := NewPlayScene(level, NopAudio{})

	if len(s.enemies) != 2 {
		t.Fatalf("expected 2 enemies, got %d", len(s.enemies))
	}
	if len(s.hazards) != 1 || len(s.obstacles) != 1 || len(s.coins) != 1 {
		t.Fatalf("unexpected collection sizes: %d hazards, %d obstacles, %d coins",
			len(s.hazards), len(s.obstacles), len(s.coins))
	}
	if s.boss == nil {
		t.Fatalf("boss record should build a boss")
	}
	if s.boss.PatrolMinX != 1900 || s.boss.PatrolMaxX != 2300 {
		t.Fatalf("boss patrol bounds not applied: [%v, %v]", s.boss.PatrolMinX, s.boss.PatrolMaxX)
	}
}

func TestSceneBubbleCapRefusesSpawn(t *testing.T) {
	s := NewPlayScene(testLevel(), NopAudio{})
	maxActive := s.playerSpec.Bubble.MaxActive

	reqs := make([]obj.SpawnRequest, 0, maxActive+3)
	for i := 0; i < maxActive+3; i++ {
		reqs = append(reqs, obj.SpawnRequest{Kind: obj.SpawnKindBubble, X: 100, Y: 300, DirX: 1})
	}
	s.spawnFromRequests(reqs)

	if len(s.bubbles) != maxActive {
		t.Fatalf("expected the cap of %d bubbles, got %d", maxActive, len(s.bubbles))
	}
}

func TestSceneGameOverAfterLastLife(t *testing.T) {
	s := NewPlayScene(testLevel(), NopAudio{})

	for i := 0; i < startingLives-1; i++ {
		s.emitter.Emit(component.CombatEvent{Type: component.EventPlayerHit})
		if s.Status() != StatusPlaying {
			t.Fatalf("run ended with %d lives left", startingLives-1-i)
		}
	}
	s.emitter.Emit(component.CombatEvent{Type: component.EventPlayerHit})
	if s.Status() != StatusGameOver {
		t.Fatalf("losing the last life should end the run, status %d", s.Status())
	}
}

func TestSceneCompleteNeedsBossAndCleanSweep(t *testing.T) {
	s := NewPlayScene(testLevel(), NopAudio{})

	// spawn-in first, damage is a no-op until then
	for i := 0; i < 40; i++ {
		s.Update(0.05, nil)
	}
	if !s.boss.TakeDamage(s.boss.Health.Max) {
		t.Fatalf("lethal damage should land after spawn-in")
	}

	// boss sinks away, but enemies and coins still block completion
	for i := 0; i < 100 && s.boss != nil; i++ {
		s.Update(0.05, nil)
	}
	if s.boss != nil {
		t.Fatalf("sunk boss should leave the scene")
	}
	if s.Status() != StatusPlaying {
		t.Fatalf("level must not complete with enemies and coins left, status %d", s.Status())
	}

	for _, e := range s.enemies {
		e.Kill()
	}
	for _, c := range s.coins {
		c.Collect()
	}
	for i := 0; i < 10 && s.Status() == StatusPlaying; i++ {
		s.Update(0.05, nil)
	}
	if s.Status() != StatusComplete {
		t.Fatalf("clearing the level should complete it, status %d", s.Status())
	}
}

func TestSceneScoringEvents(t *testing.T) {
	s := NewPlayScene(testLevel(), NopAudio{})

	s.emitter.Emit(component.CombatEvent{Type: component.EventEnemyKill, Score: 20})
	s.emitter.Emit(component.CombatEvent{Type: component.EventCoinPickup, Score: 5})

	if s.hud.Score != 25 {
		t.Fatalf("score = %d, want 25", s.hud.Score)
	}
	if s.hud.Coins != 1 {
		t.Fatalf("coins = %d, want 1", s.hud.Coins)
	}
}

func TestSceneRemovesDeadEnemies(t *testing.T) {
	s := NewPlayScene(testLevel(), NopAudio{})
	before := len(s.enemies)

	s.enemies[0].Kill()
	s.Update(0.05, nil)

	if len(s.enemies) != before-1 {
		t.Fatalf("expected %d enemies after removal, got %d", before-1, len(s.enemies))
	}
}

func TestSceneRemovesExpiredBubbles(t *testing.T) {
	s := NewPlayScene(testLevel(), NopAudio{})
	s.spawnFromRequests([]obj.SpawnRequest{{Kind: obj.SpawnKindBubble, X: 400, Y: 300, DirX: 1}})
	if len(s.bubbles) != 1 {
		t.Fatalf("expected 1 bubble, got %d", len(s.bubbles))
	}

	lifespan := s.playerSpec.Bubble.LifespanSeconds + s.playerSpec.Bubble.PopSeconds
	for t2 := 0.0; t2 < lifespan+0.5; t2 += 0.05 {
		s.Update(0.05, nil)
	}
	if len(s.bubbles) != 0 {
		t.Fatalf("expired bubble should be removed, %d remain", len(s.bubbles))
	}
}
