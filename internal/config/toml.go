package config

import (
	"github.com/pelletier/go-toml/v2"
)

// TOMLParser reads and writes koanf config maps as TOML.
type TOMLParser struct{}

// TOML returns a koanf parser for locsheet.toml files.
func TOML() *TOMLParser {
	return &TOMLParser{}
}

// Unmarshal parses TOML bytes into a nested map.
func (p *TOMLParser) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// Marshal renders a config map as TOML.
func (p *TOMLParser) Marshal(o map[string]any) ([]byte, error) {
	return toml.Marshal(o)
}
