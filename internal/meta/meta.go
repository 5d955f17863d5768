// Package meta reads per-crew supplementary metadata from the YAML front
// matter of crew Markdown files. The Markdown body is passed through as is.
package meta

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/datacore/crew_stats/internal/domain"

	"gopkg.in/yaml.v3"
)

var delim = []byte("---")

// ErrMalformed marks a crew document whose front matter cannot be parsed.
var ErrMalformed = errors.New("malformed front matter")

// Parse splits a document into front matter and body. A document without a
// leading "---" line has no front matter.
func Parse(doc []byte) (domain.CrewMeta, error) {
	doc = bytes.TrimPrefix(doc, []byte("\xef\xbb\xbf"))
	doc = bytes.ReplaceAll(doc, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(doc, delim) {
		return domain.CrewMeta{Markdown: strings.TrimSpace(string(doc))}, nil
	}
	rest := doc[len(delim):]
	end := bytes.Index(rest, append([]byte("\n"), delim...))
	if end == -1 {
		return domain.CrewMeta{}, fmt.Errorf("%w: missing closing ---", ErrMalformed)
	}

	var m domain.CrewMeta
	if err := yaml.Unmarshal(rest[:end], &m); err != nil {
		return domain.CrewMeta{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	body := rest[end+1+len(delim):]
	m.Markdown = strings.TrimSpace(string(body))
	return m, nil
}

// Load reads <dir>/<symbol>.md. ok is false when the file does not exist.
func Load(dir, symbol string) (m domain.CrewMeta, ok bool, err error) {
	path := filepath.Join(dir, symbol+".md")
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.CrewMeta{}, false, nil
		}
		return domain.CrewMeta{}, false, fmt.Errorf("read %s: %w", path, err)
	}
	m, err = Parse(b)
	if err != nil {
		return domain.CrewMeta{}, false, fmt.Errorf("%s: %w", path, err)
	}
	return m, true, nil
}

// LoadAll loads metadata for every symbol. Missing files and malformed front
// matter are logged and left out of the result; only unreadable files fail
// the load.
func LoadAll(dir string, symbols []string, logger *slog.Logger) (map[string]domain.CrewMeta, error) {
	if logger == nil {
		logger = slog.Default()
	}
	out := make(map[string]domain.CrewMeta, len(symbols))
	missing, skipped := 0, 0
	for _, sym := range symbols {
		m, ok, err := Load(dir, sym)
		if errors.Is(err, ErrMalformed) {
			skipped++
			logger.Warn("crew markdown ignored", "symbol", sym, "err", err)
			continue
		}
		if err != nil {
			return nil, err
		}
		if !ok {
			missing++
			logger.Warn("crew markdown not found", "symbol", sym, "dir", dir)
			continue
		}
		out[sym] = m
	}
	if missing > 0 || skipped > 0 {
		logger.Info("crew metadata loaded", "found", len(out), "missing", missing, "malformed", skipped)
	}
	return out, nil
}
