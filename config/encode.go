package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mwiater/benchit/benchmark"
)

// Encode writes s as a settings document in the given format ("json",
// "yaml" or "yml"). The minimum execution time is written as clock text with
// nanosecond digits, so Decode restores it exactly.
func Encode(w io.Writer, s benchmark.Settings, format string) error {
	doc := toDocument(s)
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json settings: %w", err)
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml settings: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported settings format %q", format)
	}
}

// Write creates a settings file at path. The format follows the extension.
// An existing file is left untouched unless overwrite is set.
func Write(path string, s benchmark.Settings, overwrite bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(f, s, FormatFromPath(path)); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
