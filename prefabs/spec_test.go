package prefabs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSpecLayersOverDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "prefabs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefabs", "custom.yaml"), []byte("move_speed: 500\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	}()

	spec, err := LoadSpec("custom.yaml", DefaultPlayerSpec())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.MoveSpeed != 500 {
		t.Fatalf("move_speed = %v, want 500 from file", spec.MoveSpeed)
	}
	if spec.Width != DefaultPlayerSpec().Width {
		t.Fatalf("width = %v, want default %v", spec.Width, DefaultPlayerSpec().Width)
	}
	if spec.Bubble.MaxActive != DefaultPlayerSpec().Bubble.MaxActive {
		t.Fatalf("nested defaults should survive a partial file")
	}
}

func TestLoadSpecMissingFileReturnsDefaults(t *testing.T) {
	defaults := DefaultBossSpec()
	spec, err := LoadSpec("does_not_exist.yaml", defaults)
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if spec.MaxHP != defaults.MaxHP {
		t.Fatalf("missing file should fall back to defaults")
	}
}

func TestEmbeddedSpecsLoad(t *testing.T) {
	player := LoadPlayerSpec()
	if player.MoveSpeed <= 0 || player.Bubble.FormationSeconds <= 0 {
		t.Fatalf("player spec not loaded: %+v", player)
	}

	boss := LoadBossSpec()
	if boss.MaxHP != 300 {
		t.Fatalf("boss max hp = %v, want 300", boss.MaxHP)
	}
	if len(boss.PhaseSpeed) != 4 || len(boss.PhaseAttackDelay) != 4 {
		t.Fatalf("boss spec needs one entry per phase: %+v", boss)
	}
	for i := 1; i < 4; i++ {
		if boss.PhaseSpeed[i] <= boss.PhaseSpeed[i-1] {
			t.Fatalf("phase speed must rise with phase: %v", boss.PhaseSpeed)
		}
		if boss.PhaseAttackDelay[i] >= boss.PhaseAttackDelay[i-1] {
			t.Fatalf("attack delay must fall with phase: %v", boss.PhaseAttackDelay)
		}
	}

	if s := LoadPufferSpec(); s.InflatedRadius <= s.Radius {
		t.Fatalf("inflated radius must exceed resting radius: %+v", s)
	}
	if s := LoadJellyfishSpec(); s.Radius <= 0 {
		t.Fatalf("jellyfish spec not loaded: %+v", s)
	}
	if s := LoadHazardSpec(); s.ActiveSeconds <= 0 || s.InactiveSeconds <= 0 {
		t.Fatalf("hazard spec not loaded: %+v", s)
	}
}

func TestLoadScriptEmbedded(t *testing.T) {
	data, err := LoadScript("jellyfish_drift.tengo")
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("embedded script is empty")
	}
}
