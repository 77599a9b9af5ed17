// Package config loads editor settings from a TOML or YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ukaji3/gridshift-go/pkg/gridshift"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type EditorOptions struct {
	MaxRows            int     `toml:"max-rows" yaml:"max-rows"`
	MaxColumns         int     `toml:"max-columns" yaml:"max-columns"`
	DefaultRowHeight   float64 `toml:"default-row-height" yaml:"default-row-height"`
	DefaultColumnWidth float64 `toml:"default-column-width" yaml:"default-column-width"`
	MaxDigitWidth      float64 `toml:"max-digit-width" yaml:"max-digit-width"`
	// AdjustOtherSheets is a pointer so an explicit false survives the merge.
	AdjustOtherSheets *bool `toml:"adjust-other-sheets" yaml:"adjust-other-sheets"`
}

type LogOptions struct {
	Debug bool `toml:"debug" yaml:"debug"`
}

type Config struct {
	Editor EditorOptions `toml:"editor" yaml:"editor"`
	Log    LogOptions    `toml:"log" yaml:"log"`
}

func Default() Config {
	d := gridshift.DefaultOptions()
	adjust := true
	return Config{
		Editor: EditorOptions{
			MaxRows:            d.MaxRows,
			MaxColumns:         d.MaxColumns,
			DefaultRowHeight:   d.DefaultRowHeight,
			DefaultColumnWidth: d.DefaultColumnWidth,
			MaxDigitWidth:      d.MaxDigitWidth,
			AdjustOtherSheets:  &adjust,
		},
	}
}

// Load reads the file at path over the defaults. An empty path or a missing
// file yields the defaults. Files ending in .yaml or .yml are read as YAML,
// everything else as TOML.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &userCfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(data), &userCfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if userCfg.Editor.MaxRows > 0 {
		cfg.Editor.MaxRows = userCfg.Editor.MaxRows
	}
	if userCfg.Editor.MaxColumns > 0 {
		cfg.Editor.MaxColumns = userCfg.Editor.MaxColumns
	}
	if userCfg.Editor.DefaultRowHeight > 0 {
		cfg.Editor.DefaultRowHeight = userCfg.Editor.DefaultRowHeight
	}
	if userCfg.Editor.DefaultColumnWidth > 0 {
		cfg.Editor.DefaultColumnWidth = userCfg.Editor.DefaultColumnWidth
	}
	if userCfg.Editor.MaxDigitWidth > 0 {
		cfg.Editor.MaxDigitWidth = userCfg.Editor.MaxDigitWidth
	}
	if userCfg.Editor.AdjustOtherSheets != nil {
		cfg.Editor.AdjustOtherSheets = userCfg.Editor.AdjustOtherSheets
	}
	if userCfg.Log.Debug {
		cfg.Log.Debug = true
	}
	return cfg, nil
}

// Options converts the editor settings into gridshift options using log.
func (c Config) Options(log *zap.Logger) gridshift.Options {
	return gridshift.Options{
		MaxRows:            c.Editor.MaxRows,
		MaxColumns:         c.Editor.MaxColumns,
		DefaultRowHeight:   c.Editor.DefaultRowHeight,
		DefaultColumnWidth: c.Editor.DefaultColumnWidth,
		MaxDigitWidth:      c.Editor.MaxDigitWidth,
		AdjustOtherSheets:  c.Editor.AdjustOtherSheets,
		Logger:             log,
	}
}
