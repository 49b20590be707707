package assets

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// The registry hands out drawable handles by lookup key. Real art can be
// registered at startup; any key without an image falls back to a solid
// placeholder so a missing asset is never fatal.

var (
	registry    = map[string]*ebiten.Image{}
	warnedKeys  = map[string]bool{}
	placeholder = map[string]color.RGBA{
		"player_idle":    colornames.Sandybrown,
		"player_swim":    colornames.Peru,
		"player_melee":   colornames.Orangered,
		"player_forming": colornames.Lightskyblue,
		"boss":           colornames.Darkolivegreen,
		"boss_hurt":      colornames.Indianred,
		"puffer":         colornames.Khaki,
		"jellyfish":      colornames.Plum,
		"bubble":         colornames.Paleturquoise,
		"boss_shot":      colornames.Mediumpurple,
		"hazard":         colornames.Orange,
		"obstacle":       colornames.Dimgray,
		"coin":           colornames.Gold,
	}
)

// Register installs a loaded image under a lookup key.
func Register(name string, img *ebiten.Image) {
	if name == "" || img == nil {
		return
	}
	registry[name] = img
}

// Image returns the drawable for name, building a w x h placeholder when no
// real asset was registered.
func Image(name string, w, h int) *ebiten.Image {
	if img, ok := registry[name]; ok {
		return img
	}
	if !warnedKeys[name] {
		warnedKeys[name] = true
		log.Printf("[assets] no image for %q, using placeholder", name)
	}
	if w <= 0 {
		w = 16
	}
	if h <= 0 {
		h = 16
	}
	img := ebiten.NewImage(w, h)
	clr, ok := placeholder[name]
	if !ok {
		clr = colornames.Hotpink
	}
	img.Fill(clr)
	registry[name] = img
	return img
}
