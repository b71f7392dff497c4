package common

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type General struct {
	Mouse          bool    `toml:"mouse"`
	BoxStyle       string  `toml:"box-style"`
	CellWidth      float64 `toml:"cell-width"`
	CellHeight     float64 `toml:"cell-height"`
	MinWidth       float64 `toml:"min-width"`
	MinHeight      float64 `toml:"min-height"`
	MinFontSize    int     `toml:"min-font-size"`
	MaxFontSize    int     `toml:"max-font-size"`
	DefaultText    string  `toml:"default-text"`
	NewNoteCommand string  `toml:"new-note-command"`
}

type ColorConfig struct {
	BoxOutline    string  `toml:"box-outline"`
	ActiveOutline string  `toml:"active-outline"`
	StatusBar     string  `toml:"status-bar"`
	Handle        string  `toml:"handle"`
	NoteChroma    float64 `toml:"note-chroma"`
	NoteLuminance float64 `toml:"note-luminance"`
}

type Config struct {
	General General
	Colors  ColorConfig
}

func DefaultConfig() Config {
	return Config{
		General: General{
			Mouse:          true,
			BoxStyle:       "rounded",
			CellWidth:      8,
			CellHeight:     16,
			MinWidth:       80,
			MinHeight:      60,
			MinFontSize:    10,
			MaxFontSize:    32,
			DefaultText:    "New sticker",
			NewNoteCommand: "",
		},
		Colors: ColorConfig{
			BoxOutline:    "",
			ActiveOutline: "\x1b[1m",
			StatusBar:     "\x1b[7m",
			Handle:        "\x1b[1;33m",
			NoteChroma:    0.25,
			NoteLuminance: 0.85,
		},
	}
}

// ParseConfig decodes a TOML document on top of the default config.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := decode(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			return cfg, fmt.Errorf("%v:\n%s", err, derr.String())
		}
		return cfg, err
	}
	if err := cfg.Check(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// floatKeys are the keys decoded into float64 fields, by table.
var floatKeys = map[string][]string{
	"general": {"cell-width", "cell-height", "min-width", "min-height"},
	"colors":  {"note-chroma", "note-luminance"},
}

// decode unmarshals data into cfg. go-toml panics when a bare 0 is decoded
// into a float field, in that case the document is read generically, the
// integers under floatKeys become floats and it is decoded again.
func decode(data []byte, cfg *Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			*cfg = DefaultConfig()
			err = decodeNormalized(data, cfg, r)
		}
	}()
	return toml.Unmarshal(data, cfg)
}

func decodeNormalized(data []byte, cfg *Config, cause any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("could not decode config: %v", r)
		}
	}()
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("could not decode config: %v", cause)
	}
	for table, keys := range floatKeys {
		values, ok := doc[table].(map[string]any)
		if !ok {
			continue
		}
		for _, key := range keys {
			if i, ok := values[key].(int64); ok {
				values[key] = float64(i)
			}
		}
	}
	normalized, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("could not decode config: %w", err)
	}
	return toml.Unmarshal(normalized, cfg)
}

func LoadConfig(pathname string) Config {
	data, err := os.ReadFile(pathname)
	if err != nil {
		Fatal("could not read config: %s", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		Fatal("%s: %s", pathname, err)
	}
	return cfg
}

// Check validates values the program cannot work with.
func (self *Config) Check() error {
	g := &self.General
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return fmt.Errorf("cell size must be positive, got %vx%v", g.CellWidth, g.CellHeight)
	}
	if g.MinWidth < 0 || g.MinHeight < 0 {
		return fmt.Errorf("minimum note size must not be negative")
	}
	if g.MinFontSize <= 0 || g.MinFontSize > g.MaxFontSize {
		return fmt.Errorf(
			"invalid font size range: %d..%d", g.MinFontSize, g.MaxFontSize,
		)
	}
	for name, v := range map[string]float64{
		"note-chroma":    self.Colors.NoteChroma,
		"note-luminance": self.Colors.NoteLuminance,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", name, v)
		}
	}
	return nil
}
