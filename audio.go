package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/reefdiver/component"
)

const sampleRate = 48000

// AudioPlayer plays short combat cues. The interface keeps the scene testable
// without an audio device.
type AudioPlayer interface {
	Play(evt component.CombatEventType)
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) Play(component.CombatEventType) {}

// SynthAudio plays synthesized beeps, one per event type. No asset files
// needed; every cue is generated at startup.
type SynthAudio struct {
	players map[component.CombatEventType]*audio.Player
}

func NewSynthAudio() *SynthAudio {
	ctx := audio.NewContext(sampleRate)
	return &SynthAudio{
		players: map[component.CombatEventType]*audio.Player{
			component.EventBubblePop:  newBeepPlayer(ctx, 880, 0.08),
			component.EventMeleeHit:   newBeepPlayer(ctx, 660, 0.1),
			component.EventEnemyKill:  newBeepPlayer(ctx, 1040, 0.12),
			component.EventBossHit:    newBeepPlayer(ctx, 520, 0.1),
			component.EventBossKill:   newBeepPlayer(ctx, 330, 0.5),
			component.EventPlayerHit:  newBeepPlayer(ctx, 180, 0.25),
			component.EventCoinPickup: newBeepPlayer(ctx, 1320, 0.08),
		},
	}
}

func (a *SynthAudio) Play(evt component.CombatEventType) {
	p, ok := a.players[evt]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

// newBeepPlayer synthesizes a decaying sine tone as 16-bit stereo PCM.
func newBeepPlayer(ctx *audio.Context, freq, durSec float64) *audio.Player {
	n := int(sampleRate * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := math.Pow(math.E, -4*t)
		v := int16(math.Sin(2*math.Pi*freq*t) * 6000 * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return ctx.NewPlayerFromBytes(buf)
}
