package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// Loader reads prebuilt widget markup from a directory. Markup is loaded once
// at startup; a component with no matching asset is startup-fatal.
type Loader struct {
	dir    string
	logger *zap.Logger
}

// NewLoader builds a Loader over dir.
func NewLoader(dir string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		dir:    dir,
		logger: logger.Named("assets"),
	}
}

// LoadMarkup returns the markup for component name. It prefers an asset named
// exactly "<name>.html"; failing that it takes the lexicographically last
// match of "<name>-*.html", which picks the newest content-hashed build.
func (l *Loader) LoadMarkup(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("asset name is required")
	}

	exact := filepath.Join(l.dir, name+".html")
	if data, err := os.ReadFile(exact); err == nil {
		return string(data), nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read asset %s: %w", exact, err)
	}

	candidates, err := filepath.Glob(filepath.Join(l.dir, name+"-*.html"))
	if err != nil {
		return "", fmt.Errorf("scan assets for %q: %w", name, err)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("widget markup for %q not found in %s", name, l.dir)
	}
	sort.Strings(candidates)
	fallback := candidates[len(candidates)-1]

	data, err := os.ReadFile(fallback)
	if err != nil {
		return "", fmt.Errorf("read asset %s: %w", fallback, err)
	}
	l.logger.Debug("asset fallback used", zap.String("name", name), zap.String("path", fallback))
	return string(data), nil
}
