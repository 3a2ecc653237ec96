package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config is the optional configuration file.
//
//	float: true
//	debug: false
//	history: ~/.calc_history
//	history_size: 500
//	vars:
//	  rate: 3/100
//	  twice: rate 2
type config struct {
	Float       bool   `yaml:"float"`
	Debug       bool   `yaml:"debug"`
	History     string `yaml:"history"`
	HistorySize int    `yaml:"history_size"`
	// Vars maps names to expressions. It is kept as a node so that the
	// bindings are evaluated in file order and may refer to earlier ones.
	Vars yaml.Node `yaml:"vars"`
}

// defaultConfig returns the path of the configuration file used when none is
// named on the command line.
func defaultConfig() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "calc", "config.yaml")
}

// loadConfig reads a configuration file. A file that does not exist is an
// empty configuration unless required is set.
func loadConfig(name string, required bool) (*config, error) {
	var c config
	if name == "" {
		return &c, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return &c, nil
		}
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if c.HistorySize < 0 {
		return nil, fmt.Errorf("%s: history_size (%d) must not be negative", name, c.HistorySize)
	}
	c.History = expandHome(c.History)
	return &c, nil
}

// bindings returns the variable definitions in the order they appear.
func (c *config) bindings() ([][2]string, error) {
	if c.Vars.Kind == 0 {
		return nil, nil
	}
	if c.Vars.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: vars must be a mapping of names to expressions", c.Vars.Line)
	}
	v := make([][2]string, 0, len(c.Vars.Content)/2)
	for i := 0; i+1 < len(c.Vars.Content); i += 2 {
		k, e := c.Vars.Content[i], c.Vars.Content[i+1]
		if k.Kind != yaml.ScalarNode || e.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: variable definitions must be name: expression", k.Line)
		}
		v = append(v, [2]string{k.Value, e.Value})
	}
	return v, nil
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(name string) string {
	if len(name) < 2 || name[:2] != "~/" {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name[2:])
}
