// Package config loads tokattr.toml: the language registry, the color palette
// and store settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"

	"tokattr/internal/attrs"
)

// FileName is the manifest name searched for by Find.
const FileName = "tokattr.toml"

// maxPaletteSize is the number of indexes the foreground field can address.
const maxPaletteSize = attrs.MaxForeground + 1

// Config is a loaded and validated tokattr.toml.
type Config struct {
	Path      string
	Languages map[string]uint32
	Palette   []string
	StoreDir  string

	byID map[uint32]string
}

type fileConfig struct {
	Languages map[string]int `toml:"languages"`
	Palette   paletteConfig  `toml:"palette"`
	Store     storeConfig    `toml:"store"`
}

type paletteConfig struct {
	Colors []string `toml:"colors"`
}

type storeConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the configuration used when no tokattr.toml exists.
func Default() *Config {
	cfg, err := build("", fileConfig{
		Languages: map[string]int{
			"plaintext":  1,
			"go":         2,
			"typescript": 3,
			"javascript": 4,
			"json":       5,
			"markdown":   6,
		},
		Palette: paletteConfig{Colors: []string{
			"#000000", // 0: no color
			"#d4d4d4",
			"#1e1e1e",
			"#569cd6",
			"#ce9178",
			"#6a9955",
			"#d16969",
			"#c586c0",
			"#dcdcaa",
		}},
	})
	if err != nil {
		panic(err)
	}
	return cfg
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes and validates the file at path.
func Load(path string) (*Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg, err := build(path, fc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads explicitPath if set, otherwise the nearest FileName above
// startDir, otherwise Default.
func Resolve(explicitPath, startDir string) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func build(path string, fc fileConfig) (*Config, error) {
	cfg := &Config{
		Path:      path,
		Languages: make(map[string]uint32, len(fc.Languages)),
		byID:      make(map[uint32]string, len(fc.Languages)),
		StoreDir:  strings.TrimSpace(fc.Store.Dir),
	}
	if cfg.StoreDir != "" && path != "" && !filepath.IsAbs(cfg.StoreDir) {
		cfg.StoreDir = filepath.Join(filepath.Dir(path), cfg.StoreDir)
	}

	// детерминированный порядок, чтобы ошибки о дубликатах были стабильны
	names := make([]string, 0, len(fc.Languages))
	for name := range fc.Languages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, raw := range names {
		name := NormalizeName(raw)
		if name == "" {
			return nil, fmt.Errorf("[languages]: empty language name")
		}
		id, err := safecast.Conv[uint32](fc.Languages[raw])
		if err != nil || id == 0 || id > attrs.MaxLanguageID {
			return nil, fmt.Errorf("[languages].%s: id %d out of range [1, %d]", raw, fc.Languages[raw], attrs.MaxLanguageID)
		}
		if _, dup := cfg.Languages[name]; dup {
			return nil, fmt.Errorf("[languages].%s: duplicate language name", raw)
		}
		if prev, dup := cfg.byID[id]; dup {
			return nil, fmt.Errorf("[languages].%s: id %d already used by %q", raw, id, prev)
		}
		cfg.Languages[name] = id
		cfg.byID[id] = name
	}

	if len(fc.Palette.Colors) > maxPaletteSize {
		return nil, fmt.Errorf("[palette].colors: %d entries, at most %d fit the foreground field", len(fc.Palette.Colors), maxPaletteSize)
	}
	cfg.Palette = make([]string, len(fc.Palette.Colors))
	for i, c := range fc.Palette.Colors {
		c = strings.TrimSpace(c)
		if !isHexColor(c) {
			return nil, fmt.Errorf("[palette].colors[%d]: %q is not a #rgb or #rrggbb color", i, c)
		}
		cfg.Palette[i] = strings.ToLower(c)
	}
	return cfg, nil
}

// NormalizeName folds a language name to its registry key.
func NormalizeName(name string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(name)))
}

// LanguageID returns the id registered for name.
func (c *Config) LanguageID(name string) (uint32, bool) {
	id, ok := c.Languages[NormalizeName(name)]
	return id, ok
}

// LanguageName returns the name registered for id.
func (c *Config) LanguageName(id uint32) (string, bool) {
	name, ok := c.byID[id]
	return name, ok
}

// Color returns the palette color at index. Index 0 and indexes past the end
// of the palette have no color.
func (c *Config) Color(index uint32) (string, bool) {
	if index == 0 || index >= uint32(len(c.Palette)) {
		return "", false
	}
	return c.Palette[index], true
}

// ResolveLanguage accepts a registered name or a numeric id.
func (c *Config) ResolveLanguage(s string) (uint32, error) {
	if id, ok := c.LanguageID(s); ok {
		return id, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if id, err := safecast.Conv[uint32](n); err == nil {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown language %q", s)
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
