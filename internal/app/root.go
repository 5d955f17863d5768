package app

import (
	"os"
	"path/filepath"

	"github.com/datacore/crew_stats/internal/config"
)

// FindRoot walks up from start looking for the run config. When none is
// found the app root is start itself and ok is false.
func FindRoot(start string) (root string, ok bool) {
	dir := start
	for i := 0; i < 10; i++ {
		candidate := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(candidate); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return start, false
}
