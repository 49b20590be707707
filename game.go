package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/reefdiver/common"
	"github.com/milk9111/reefdiver/obj"
	"github.com/milk9111/reefdiver/prefabs"
)

// maxFrameDelta caps dt so a stalled frame (window drag, debugger pause) never
// teleports entities.
const maxFrameDelta = 0.05

type Game struct {
	levelName string
	debug     bool

	input   *obj.Input
	scene   *PlayScene
	audio   AudioPlayer
	scores  *ScoreStore
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI

	lastUpdate time.Time
	paused     bool
	submitted  bool
	newBest    bool
}

func NewGame(levelName string, debug bool) *Game {
	if levelName == "" {
		levelName = "reef"
	}

	g := &Game{
		levelName: levelName,
		debug:     debug,
		input:     obj.NewInput(),
		audio:     NewSynthAudio(),
		scores:    OpenScoreStore(),
	}
	g.pauseUI = NewPauseUI(g)
	g.scene = g.newScene()

	watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
	if err != nil {
		log.Printf("[game] tuning watcher disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	return g
}

func (g *Game) newScene() *PlayScene {
	level, err := LoadLevel(g.levelName)
	if err != nil {
		log.Printf("[game] load level %s: %v, using empty level", g.levelName, err)
		level = &Level{Name: "empty", Width: common.BaseWidth, Player: SpawnPoint{X: 120, Y: 360}}
	}
	return NewPlayScene(level, g.audio)
}

func (g *Game) restart() {
	g.scene = g.newScene()
	g.submitted = false
	g.newBest = false
}

func (g *Game) Update() error {
	now := time.Now()
	dt := maxFrameDelta
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
	}
	g.lastUpdate = now

	g.input.Update()
	g.drainWatcher()

	if g.paused {
		g.pauseUI.Update()
		if g.input.PausePressed {
			g.paused = false
		}
		return nil
	}

	switch g.scene.Status() {
	case StatusPlaying:
		if g.input.PausePressed {
			g.paused = true
			return nil
		}
		g.scene.Update(dt, g.input)
	default:
		if !g.submitted {
			g.submitted = true
			g.newBest = g.scores.Submit(g.scene.Score())
		}
		if g.input.ConfirmPressed {
			g.restart()
		}
	}

	return nil
}

// drainWatcher applies pending tuning and script edits.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("[game] watcher: %v", err)
			}
		default:
			if reload {
				g.scene.ApplyTuning()
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	switch g.scene.Status() {
	case StatusGameOver:
		g.drawEndBanner(screen, "GAME OVER")
	case StatusComplete:
		g.drawEndBanner(screen, "LEVEL COMPLETE")
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("\nFPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *Game) drawEndBanner(screen *ebiten.Image, msg string) {
	line := fmt.Sprintf("%s  -  Score: %d  Best: %d", msg, g.scene.Score(), g.scores.Best())
	if g.newBest {
		line += "  NEW BEST!"
	}
	line += "\nPress Enter to dive again"
	g.scene.hud.DrawBanner(screen, line)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
