package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript returns an embedded tengo script, preferring an on-disk copy so
// edits picked up by the watcher take effect without rebuilding.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

//go:embed *.yaml
var TuningFS embed.FS

// Load returns a tuning file by name, preferring an on-disk copy over the
// embedded default.
func Load(name string) ([]byte, error) {
	clean := cleanTuningPath(name)
	if data, err := os.ReadFile(diskTuningPath(clean)); err == nil {
		return data, nil
	}
	return TuningFS.ReadFile(clean)
}

// ModTime returns the on-disk modification time of a tuning file, if present.
func ModTime(name string) (time.Time, bool) {
	clean := cleanTuningPath(name)
	info, err := os.Stat(diskTuningPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanTuningPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "prefabs/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskTuningPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
