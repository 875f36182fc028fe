// File: miniconf/file.go
package miniconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects a configuration file format.
type Format int

const (
	FormatJSON Format = iota
	FormatCSV
	FormatTOML
	FormatYAML
)

// String returns the canonical extension of the format.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// detectFormat sniffs the format from the file extension. Anything
// unrecognized defaults to JSON.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".toml", ".tml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile merges a configuration file into the resolved values. The format
// is sniffed from the extension. Declared keys are coerced to their declared
// kind; unknown keys come in as strays. A missing file is reported as
// ErrConfigNotFound.
func (c *Config) LoadFile(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadFileLocked(path)
}

func (c *Config) loadFileLocked(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	switch detectFormat(path) {
	case FormatCSV:
		c.mergeCSV(string(data))
		return nil
	case FormatTOML:
		tree := make(map[string]any)
		if err := toml.Unmarshal(data, &tree); err != nil {
			return fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
		return c.mergeTree(tree)
	case FormatYAML:
		tree := make(map[string]any)
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
		return c.mergeTree(tree)
	default:
		tree := make(map[string]any)
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&tree); err != nil {
			return fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
		return c.mergeTree(tree)
	}
}

// mergeCSV imports flat "key,value" lines. Malformed or unparseable lines
// are logged and skipped; the rest of the file still merges.
func (c *Config) mergeCSV(data string) {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, raw, ok := strings.Cut(line, ",")
		if !ok {
			c.logf(LogWarning, line, "skipping malformed csv line")
			continue
		}
		v := c.csvLeaf(key, raw)
		if v.IsEmpty() {
			c.logf(LogWarning, key, "cannot parse csv value %q", raw)
			continue
		}
		c.values[key] = v
	}
}

// csvLeaf types one flat file value: declared keys coerce to the declared
// kind, stray keys infer bool, then number, then string.
func (c *Config) csvLeaf(key, raw string) Value {
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		raw = raw[1 : len(raw)-1]
	}
	if opt, ok := c.options[key]; ok {
		return parseToken(raw, opt.Type())
	}
	switch raw {
	case "true", "false":
		return NewBool(raw == "true")
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return NewFloat(f)
	}
	return NewString(raw)
}

// Serialize renders the resolved configuration as text in the given format.
// Hidden options are never exported.
func (c *Config) Serialize(format Format) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serializeLocked(format)
}

func (c *Config) serializeLocked(format Format) (string, error) {
	switch format {
	case FormatCSV:
		var b strings.Builder
		for _, key := range c.sortedKeys() {
			if opt, ok := c.options[key]; ok && opt.hidden {
				continue
			}
			b.WriteString(key)
			b.WriteByte(',')
			b.WriteString(c.values[key].text())
			b.WriteByte('\n')
		}
		return b.String(), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c.exportTree()); err != nil {
			return "", fmt.Errorf("failed to marshal config to TOML: %w", err)
		}
		return buf.String(), nil
	case FormatYAML:
		out, err := yaml.Marshal(c.exportTree())
		if err != nil {
			return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		return string(out), nil
	default:
		out, err := json.MarshalIndent(c.exportTree(), "", "    ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		return string(out), nil
	}
}

// Save writes the resolved configuration to a file atomically, in the format
// sniffed from the path extension.
func (c *Config) Save(path string) error {
	c.mu.RLock()
	text, err := c.serializeLocked(detectFormat(path))
	c.mu.RUnlock()
	if err != nil {
		return err
	}
	return atomicWriteFile(path, []byte(text))
}

// atomicWriteFile writes through a temp file in the target directory and
// renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
