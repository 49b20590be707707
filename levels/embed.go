package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"embed"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Load returns a level file by name, preferring an on-disk copy over the
// embedded default so levels can be edited without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	data, err := LevelsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", clean, err)
	}
	return data, nil
}

func cleanPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
