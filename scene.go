package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reefdiver/common"
	"github.com/milk9111/reefdiver/component"
	"github.com/milk9111/reefdiver/obj"
	"github.com/milk9111/reefdiver/prefabs"
)

// SceneStatus is the outcome of the current run.
type SceneStatus int

const (
	StatusPlaying SceneStatus = iota
	StatusGameOver
	StatusComplete
)

// PlayScene owns every live entity and runs one dive from spawn to either the
// boss sinking or the last life lost. Entities own their timers; the scene
// owns membership, spawning and the combat resolver.
type PlayScene struct {
	level *Level

	playerSpec prefabs.PlayerSpec
	bossSpec   prefabs.BossSpec
	pufferSpec prefabs.PufferSpec
	jellySpec  prefabs.JellyfishSpec
	hazardSpec prefabs.HazardSpec

	background *Background
	player     *obj.Player
	boss       *obj.Boss

	bubbles   []*obj.Bubble
	shots     []*obj.BossShot
	enemies   []obj.Enemy
	hazards   []*obj.Hazard
	obstacles []*obj.Obstacle
	coins     []*obj.Coin

	driftScript *obj.MotionScript

	hud      *HUD
	emitter  *component.CombatEventEmitter
	resolver *CombatResolver
	audio    AudioPlayer

	world        *ebiten.Image
	bossDefeated bool
	status       SceneStatus
}

// entityBuilders maps level record types to constructors. Unknown types are
// logged and skipped so a hand-edited level never crashes the game.
var entityBuilders = map[string]func(s *PlayScene, rec EntityRecord){
	"puffer": func(s *PlayScene, rec EntityRecord) {
		s.enemies = append(s.enemies, obj.NewPuffer(rec.X, rec.Y, s.pufferSpec))
	},
	"jellyfish": func(s *PlayScene, rec EntityRecord) {
		s.enemies = append(s.enemies, obj.NewJellyfish(rec.X, rec.Y, s.jellySpec, s.driftScript))
	},
	"hazard": func(s *PlayScene, rec EntityRecord) {
		s.hazards = append(s.hazards, obj.NewHazard(rec.X, rec.Y, s.hazardSpec))
	},
	"obstacle": func(s *PlayScene, rec EntityRecord) {
		w, h := rec.Width, rec.Height
		if w <= 0 {
			w = 64
		}
		if h <= 0 {
			h = 64
		}
		s.obstacles = append(s.obstacles, obj.NewObstacle(rec.X, rec.Y, w, h, rec.Damaging))
	},
	"coin": func(s *PlayScene, rec EntityRecord) {
		s.coins = append(s.coins, obj.NewCoin(rec.X, rec.Y))
	},
}

func NewPlayScene(level *Level, audio AudioPlayer) *PlayScene {
	if audio == nil {
		audio = NopAudio{}
	}

	s := &PlayScene{
		level:      level,
		playerSpec: prefabs.LoadPlayerSpec(),
		bossSpec:   prefabs.LoadBossSpec(),
		pufferSpec: prefabs.LoadPufferSpec(),
		jellySpec:  prefabs.LoadJellyfishSpec(),
		hazardSpec: prefabs.LoadHazardSpec(),
		background: NewBackground(),
		hud:        NewHUD(),
		emitter:    &component.CombatEventEmitter{},
		audio:      audio,
	}
	s.resolver = NewCombatResolver(s.emitter)
	s.driftScript = s.loadDriftScript()

	s.emitter.Handlers = append(s.emitter.Handlers, s.onCombatEvent)

	s.player = obj.NewPlayer(level.Player.X, level.Player.Y, s.playerSpec)
	if level.Boss != nil {
		s.boss = obj.NewBoss(level.Boss.X, level.Boss.Y, s.bossSpec)
		if level.Boss.PatrolMinX < level.Boss.PatrolMaxX {
			s.boss.PatrolMinX = level.Boss.PatrolMinX
			s.boss.PatrolMaxX = level.Boss.PatrolMaxX
		}
	}

	for _, rec := range level.Entities {
		build, ok := entityBuilders[rec.Type]
		if !ok {
			log.Printf("[scene] unknown entity type %q at (%.0f, %.0f), skipping", rec.Type, rec.X, rec.Y)
			continue
		}
		build(s, rec)
	}

	return s
}

func (s *PlayScene) loadDriftScript() *obj.MotionScript {
	if s.jellySpec.Script == "" {
		return nil
	}
	src, err := prefabs.LoadScript(s.jellySpec.Script)
	if err != nil {
		log.Printf("[scene] load drift script %s: %v", s.jellySpec.Script, err)
		return nil
	}
	script, err := obj.CompileMotionScript(src)
	if err != nil {
		log.Printf("[scene] compile drift script %s: %v", s.jellySpec.Script, err)
		return nil
	}
	return script
}

// onCombatEvent applies score and life effects and forwards the cue to audio.
func (s *PlayScene) onCombatEvent(evt component.CombatEvent) {
	switch evt.Type {
	case component.EventPlayerHit:
		if !s.hud.LoseLife() {
			s.status = StatusGameOver
		}
	case component.EventCoinPickup:
		s.hud.AddCoin(evt.Score)
	default:
		s.hud.AddScore(evt.Score)
	}
	s.audio.Play(evt.Type)
}

// Status returns the run outcome, StatusPlaying while the dive is live.
func (s *PlayScene) Status() SceneStatus {
	return s.status
}

// Score returns the run's current score.
func (s *PlayScene) Score() int {
	return s.hud.Score
}

// Update advances one frame. dt is in seconds. Ordering is fixed: entity
// collections first, then the resolver, then the player, so a hit can never
// land before the hitbox at the player's new position exists.
func (s *PlayScene) Update(dt float64, in *obj.Input) {
	if s.status != StatusPlaying {
		return
	}

	s.background.Update(dt)

	var requests []obj.SpawnRequest
	if s.boss != nil {
		pb := s.player.Bounds()
		requests = append(requests, s.boss.Update(dt, pb.X, pb.Y)...)
		if s.boss.Removable() {
			s.boss = nil
			s.bossDefeated = true
		}
	}
	s.updateCollections(dt)

	s.resolver.Resolve(Frame{
		Player:    s.player,
		Boss:      s.boss,
		Bubbles:   s.bubbles,
		Shots:     s.shots,
		Enemies:   s.enemies,
		Hazards:   s.hazards,
		Obstacles: s.obstacles,
		Coins:     s.coins,
	})

	requests = append(requests, s.player.Update(dt, in)...)
	s.player.X = common.Clamp(s.player.X, 0, s.level.Width-s.player.Width)
	s.spawnFromRequests(requests)

	if s.status == StatusPlaying && s.bossDefeated && len(s.enemies) == 0 && len(s.coins) == 0 {
		s.status = StatusComplete
	}
}

// updateCollections advances every collection and compacts out removed
// entries in place.
func (s *PlayScene) updateCollections(dt float64) {
	pb := s.player.Bounds()

	n := 0
	for _, b := range s.bubbles {
		if b.Update(dt) {
			obj.ReleaseBubble(b)
			continue
		}
		s.bubbles[n] = b
		n++
	}
	s.bubbles = s.bubbles[:n]

	n = 0
	for _, shot := range s.shots {
		if shot.Update(dt) {
			continue
		}
		s.shots[n] = shot
		n++
	}
	s.shots = s.shots[:n]

	n = 0
	for _, e := range s.enemies {
		if e.Update(dt, pb.X, pb.Y) {
			e.Destroy()
			continue
		}
		s.enemies[n] = e
		n++
	}
	s.enemies = s.enemies[:n]

	for _, h := range s.hazards {
		h.Update(dt)
	}

	n = 0
	for _, c := range s.coins {
		if c.Update(dt) {
			continue
		}
		s.coins[n] = c
		n++
	}
	s.coins = s.coins[:n]
}

// spawnFromRequests turns queued spawn requests into live projectiles. Bubble
// spawns past the active cap are refused silently.
func (s *PlayScene) spawnFromRequests(requests []obj.SpawnRequest) {
	for _, req := range requests {
		switch req.Kind {
		case obj.SpawnKindBubble:
			if s.activeBubbles() >= s.playerSpec.Bubble.MaxActive {
				continue
			}
			s.bubbles = append(s.bubbles, obj.SpawnBubble(req.X, req.Y, req.DirX, s.playerSpec.Bubble, s.level.Width))
		case obj.SpawnKindBossShot:
			s.shots = append(s.shots, obj.NewBossShot(req.X, req.Y, req.DirX, req.DirY, s.bossSpec.Volley, s.level.Width))
		}
	}
}

func (s *PlayScene) activeBubbles() int {
	count := 0
	for _, b := range s.bubbles {
		if b.Alive() {
			count++
		}
	}
	return count
}

// ApplyTuning reloads every tuning spec from disk and pushes the new values
// into live entities. Called by the hot-reload watcher.
func (s *PlayScene) ApplyTuning() {
	s.playerSpec = prefabs.LoadPlayerSpec()
	s.bossSpec = prefabs.LoadBossSpec()
	s.pufferSpec = prefabs.LoadPufferSpec()
	s.jellySpec = prefabs.LoadJellyfishSpec()
	s.hazardSpec = prefabs.LoadHazardSpec()

	s.player.ApplyTuning(s.playerSpec)
	if s.boss != nil {
		s.boss.ApplyTuning(s.bossSpec)
	}
	for _, h := range s.hazards {
		h.ApplyTuning(s.hazardSpec)
	}

	s.driftScript = s.loadDriftScript()
	for _, e := range s.enemies {
		if j, ok := e.(*obj.Jellyfish); ok {
			j.SetScript(s.driftScript)
		}
	}
	log.Printf("[scene] tuning reloaded")
}

// cameraX returns the horizontal scroll offset following the player, clamped
// to the level bounds.
func (s *PlayScene) cameraX() float64 {
	if s.level.Width <= common.BaseWidth {
		return 0
	}
	target := s.player.X + s.player.Width/2 - common.BaseWidth/2
	return common.Clamp(target, 0, s.level.Width-common.BaseWidth)
}

func (s *PlayScene) Draw(screen *ebiten.Image) {
	s.background.Draw(screen)

	if s.world == nil {
		s.world = ebiten.NewImage(int(s.level.Width), common.BaseHeight)
	}
	s.world.Clear()

	for _, o := range s.obstacles {
		o.Draw(s.world)
	}
	for _, h := range s.hazards {
		h.Draw(s.world)
	}
	for _, c := range s.coins {
		c.Draw(s.world)
	}
	for _, e := range s.enemies {
		e.Draw(s.world)
	}
	for _, b := range s.bubbles {
		b.Draw(s.world)
	}
	for _, shot := range s.shots {
		shot.Draw(s.world)
	}
	if s.boss != nil {
		s.boss.Draw(s.world)
	}
	s.player.Draw(s.world)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.cameraX(), 0)
	screen.DrawImage(s.world, op)

	bossFrac := -1.0
	if s.boss != nil {
		bossFrac = s.boss.Health.Fraction()
	}
	s.hud.Draw(screen, bossFrac, s.player.BubbleCooldown())
}
