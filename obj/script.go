package obj

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// MotionScript wraps a compiled tengo script that maps (t, phase) to drift
// offsets. Scripts declare dx and dy; both default to 0 if left unset.
type MotionScript struct {
	compiled *tengo.Compiled
}

// CompileMotionScript compiles a drift script once; Offsets re-runs it with
// fresh inputs each call.
func CompileMotionScript(src []byte) (*MotionScript, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("t", 0.0); err != nil {
		return nil, fmt.Errorf("obj: motion script: %w", err)
	}
	if err := script.Add("phase", 0.0); err != nil {
		return nil, fmt.Errorf("obj: motion script: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("obj: compile motion script: %w", err)
	}
	return &MotionScript{compiled: compiled}, nil
}

// Offsets evaluates the script for elapsed time t and per-entity phase.
func (m *MotionScript) Offsets(t, phase float64) (float64, float64, error) {
	if m == nil || m.compiled == nil {
		return 0, 0, fmt.Errorf("obj: motion script not compiled")
	}
	if err := m.compiled.Set("t", t); err != nil {
		return 0, 0, err
	}
	if err := m.compiled.Set("phase", phase); err != nil {
		return 0, 0, err
	}
	if err := m.compiled.Run(); err != nil {
		return 0, 0, err
	}
	var dx, dy float64
	if m.compiled.IsDefined("dx") {
		dx = m.compiled.Get("dx").Float()
	}
	if m.compiled.IsDefined("dy") {
		dy = m.compiled.Get("dy").Float()
	}
	return dx, dy, nil
}
