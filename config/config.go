/*
Package config reads figure descriptions from YAML files.

A figure description names the control variables of a chart, the fallback
for uncovered control states, the colours of the controls and limits:

	id: latency
	title: Latency by run
	variables:
	  - name: metric
	    options: [accuracy, {value: latency, label: "<b>p95</b> latency"}]
	    default: latency
	  - name: tags
	    tags: [gpu, cpu, arm]
	    policy: any
	fallback:
	  mode: placeholder
	  text: Please select a single tag
	limits:
	  max_views: 1024

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/cssplt"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'cssplt.config'.
func tracer() tracing.Trace {
	return tracing.Select("cssplt.config")
}

// FigureConfig describes one figure.
type FigureConfig struct {
	ID        string           `yaml:"id,omitempty"`
	Title     string           `yaml:"title,omitempty"`
	Variables []VariableConfig `yaml:"variables"`
	Fallback  FallbackConfig   `yaml:"fallback"`
	Theme     cssplt.Theme     `yaml:"theme,omitempty"`
	Limits    LimitsConfig     `yaml:"limits"`
}

// VariableConfig describes a control variable. A variable with tags is a
// boolean tag group, otherwise it is a single-choice variable.
type VariableConfig struct {
	Name    string            `yaml:"name"`
	Kind    string            `yaml:"kind,omitempty"` // "single" or "tags"; derived if empty
	Title   string            `yaml:"title,omitempty"`
	Options []OptionConfig    `yaml:"options,omitempty"`
	Default string            `yaml:"default,omitempty"`
	Tags    []string          `yaml:"tags,omitempty"`
	Labels  map[string]string `yaml:"labels,omitempty"`
	Policy  string            `yaml:"policy,omitempty"`
}

// OptionConfig is an option of a single-choice variable. In YAML, options
// are either plain scalars or mappings with value and label.
type OptionConfig struct {
	Value string `yaml:"value"`
	Label string `yaml:"label,omitempty"`
}

// UnmarshalYAML accepts scalar options.
func (o *OptionConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Value, o.Label = node.Value, ""
		return nil
	}
	type plain OptionConfig
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*o = OptionConfig(p)
	return nil
}

// FallbackConfig describes the fallback of a figure. Mode "placeholder"
// displays Text; mode "reuse" displays the view for Key, a view key
// identifier, or the first view if Key is empty.
type FallbackConfig struct {
	Mode string `yaml:"mode"`
	Text string `yaml:"text,omitempty"`
	Key  string `yaml:"key,omitempty"`
}

// LimitsConfig holds limits for rendering. MaxViews limits the number of
// views of a figure; 0 means no limit.
type LimitsConfig struct {
	MaxViews int `yaml:"max_views"`
}

// Variable kinds and fallback modes.
const (
	KindSingle = "single"
	KindTags   = "tags"

	FallbackPlaceholder = "placeholder"
	FallbackReuse       = "reuse"
)

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadFromPath reads a figure description from a YAML file.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*FigureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Debugf("loaded figure config from %s", path)
	return cfg, nil
}

// Parse reads a figure description from YAML text.
// Merges loaded config with defaults and validates the result.
func Parse(data []byte) (*FigureConfig, error) {
	loaded := &FigureConfig{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	merged := Merge(loaded, DefaultConfig())
	if err := Validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// Marshal returns the YAML text of a figure description.
func (cfg *FigureConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}
