package obj

import (
	"math"
	"testing"

	"github.com/milk9111/reefdiver/prefabs"
)

func TestMotionScriptOffsets(t *testing.T) {
	script, err := CompileMotionScript([]byte("dx := t * 2.0\ndy := phase"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	dx, dy, err := script.Offsets(0.5, 3.0)
	if err != nil {
		t.Fatalf("offsets: %v", err)
	}
	if math.Abs(dx-1.0) > 1e-9 {
		t.Fatalf("dx = %v, want 1.0", dx)
	}
	if math.Abs(dy-3.0) > 1e-9 {
		t.Fatalf("dy = %v, want 3.0", dy)
	}
}

func TestMotionScriptCompileError(t *testing.T) {
	if _, err := CompileMotionScript([]byte("dx := nosuchfunc(")); err == nil {
		t.Fatalf("expected a compile error")
	}
}

func TestJellyfishSineFallbackWithoutScript(t *testing.T) {
	j := NewJellyfish(0, 100, prefabs.DefaultJellyfishSpec(), nil)

	j.Update(0.5, 0, 0)
	if j.X == 0 && j.Y == 100 {
		t.Fatalf("jellyfish should drift from its anchor")
	}
}

func TestJellyfishScriptDrivesDrift(t *testing.T) {
	script, err := CompileMotionScript([]byte("dx := t * 10.0\ndy := 0.0"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	j := NewJellyfish(0, 100, prefabs.DefaultJellyfishSpec(), script)

	j.Update(0.5, 0, 0)
	if math.Abs(j.X-5.0) > 1e-6 {
		t.Fatalf("script drift x = %v, want 5.0", j.X)
	}
	if math.Abs(j.Y-100.0) > 1e-6 {
		t.Fatalf("script drift y = %v, want 100.0", j.Y)
	}
}

func TestJellyfishFallsBackOnScriptError(t *testing.T) {
	// compiles fine, divides by zero at runtime
	script, err := CompileMotionScript([]byte("dx := 1 / int(t)\ndy := 0.0"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	j := NewJellyfish(0, 100, prefabs.DefaultJellyfishSpec(), script)

	j.Update(0.1, 0, 0)
	if !j.scriptBroken {
		t.Fatalf("runtime error should mark the script broken")
	}

	// drift keeps working via the sine fallback
	j.Update(0.4, 0, 0)
	if j.X == 0 && j.Y == 100 {
		t.Fatalf("fallback drift should still move the jellyfish")
	}
}

func TestJellyfishKillRemoval(t *testing.T) {
	j := NewJellyfish(0, 100, prefabs.DefaultJellyfishSpec(), nil)
	if !j.Alive() {
		t.Fatalf("fresh jellyfish should be alive")
	}
	j.Kill()
	if j.Alive() {
		t.Fatalf("killed jellyfish should not be alive")
	}
	if removed := j.Update(0.1, 0, 0); !removed {
		t.Fatalf("killed jellyfish should request removal")
	}
}
