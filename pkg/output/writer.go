// Package output writes rendered configurations to flat text files,
// either one aggregate file for the whole plan or one file per link.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/imadrouass/network-config-generator/pkg/render"
	"github.com/imadrouass/network-config-generator/pkg/util"
)

// DefaultDir is where configuration files land unless overridden.
const DefaultDir = "FinalConfigFiles"

// timestampLayout matches the filename convention operators already
// archive: day-month-year, then time.
const timestampLayout = "02-01-2006_15-04-05"

// Mode selects between one aggregate file and one file per link.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMultiple
)

func (m Mode) String() string {
	if m == ModeMultiple {
		return "multiple"
	}
	return "single"
}

// ParseMode accepts the mode spellings the CLI and the interactive prompt
// use: "single"/"s" or "multiple"/"m", case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "s":
		return ModeSingle, nil
	case "multiple", "multi", "m":
		return ModeMultiple, nil
	}
	return ModeSingle, fmt.Errorf("unknown output mode %q (want single or multiple)", s)
}

// Writer writes configuration text into a target directory. The clock is
// injectable so tests get stable filenames.
type Writer struct {
	Dir string
	now func() time.Time
}

// NewWriter creates a writer for dir, falling back to DefaultDir when
// empty. The directory is created on first write.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = DefaultDir
	}
	return &Writer{Dir: dir, now: time.Now}
}

// WriteAll writes the rendered plan in the given mode and returns the
// paths written, in output order.
func (w *Writer) WriteAll(configs []*render.Config, mode Mode) ([]string, error) {
	if mode == ModeMultiple {
		paths := make([]string, 0, len(configs))
		for _, cfg := range configs {
			path, err := w.WriteLink(cfg)
			if err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	texts := make([]string, 0, len(configs))
	for _, cfg := range configs {
		texts = append(texts, cfg.Text())
	}
	path, err := w.WriteSingle(strings.Join(texts, "\n"))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// WriteSingle writes the whole plan's text into one timestamped file.
func (w *Writer) WriteSingle(text string) (string, error) {
	name := fmt.Sprintf("Configuration_%s.txt", w.timestamp())
	return w.write(name, text)
}

// WriteLink writes one link's configuration into its own timestamped file
// named after both endpoint sites.
func (w *Writer) WriteLink(cfg *render.Config) (string, error) {
	name := fmt.Sprintf("Configuration_%s_to_%s_%s.txt", cfg.SiteA, cfg.SiteB, w.timestamp())
	return w.write(name, cfg.Text())
}

func (w *Writer) write(name, text string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", w.Dir, err)
	}
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	util.Infof("Configuration saved to %s", path)
	return path, nil
}

func (w *Writer) timestamp() string {
	return w.now().Format(timestampLayout)
}
