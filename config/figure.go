package config

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cssplt"
	"github.com/npillmayer/cssplt/statevar"
	"github.com/npillmayer/cssplt/viewkey"
)

// ErrTooManyViews is returned by Figure if a figure would have more views
// than max_views allows.
var ErrTooManyViews = errors.New("too many views")

// Registry registers the variables of a figure description, in order.
func (cfg *FigureConfig) Registry() (*statevar.Registry, error) {
	reg := statevar.NewRegistry()
	for _, v := range cfg.Variables {
		var err error
		switch v.Kind {
		case KindTags:
			var policy statevar.Policy
			if policy, err = statevar.ParsePolicy(v.Policy); err != nil {
				return nil, err
			}
			var opts []statevar.GroupOption
			if len(v.Labels) > 0 {
				opts = append(opts, statevar.WithTagLabels(v.Labels))
			}
			_, err = reg.RegisterBooleanGroup(v.Name, v.Tags, policy, opts...)
		default:
			options := make([]statevar.Option, len(v.Options))
			for i, o := range v.Options {
				options[i] = statevar.Option{Value: o.Value, Label: o.Label}
			}
			var opts []statevar.ChoiceOption
			if v.Default != "" {
				opts = append(opts, statevar.WithDefault(v.Default))
			}
			_, err = reg.RegisterSingleChoice(v.Name, options, opts...)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return reg, nil
}

// Titles returns the control titles per variable name.
func (cfg *FigureConfig) Titles() map[string]string {
	titles := make(map[string]string)
	for _, v := range cfg.Variables {
		if v.Title != "" {
			titles[v.Name] = v.Title
		}
	}
	return titles
}

// Figure creates the figure for a description. The number of views is
// checked against max_views before anything is enumerated.
func (cfg *FigureConfig) Figure() (*cssplt.Figure, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	table := reg.Table()
	if n := viewkey.Count(table); cfg.Limits.MaxViews > 0 && n > cfg.Limits.MaxViews {
		return nil, fmt.Errorf("%w: figure has %d views, max_views is %d", ErrTooManyViews, n, cfg.Limits.MaxViews)
	}
	var fallback cssplt.Fallback
	switch cfg.Fallback.Mode {
	case FallbackReuse:
		enum := viewkey.Enumerate(table)
		key, ok := enum.Keys()[0], true
		if cfg.Fallback.Key != "" {
			key, ok = enum.Lookup(cfg.Fallback.Key)
		}
		if !ok {
			return nil, fmt.Errorf("%w: fallback key %q is not a view of the figure",
				ErrInvalidConfig, cfg.Fallback.Key)
		}
		fallback = cssplt.Reuse(key)
	default:
		fallback = cssplt.Placeholder(cssplt.Text(cfg.Fallback.Text))
	}
	opts := []cssplt.Option{
		cssplt.WithTheme(cfg.Theme),
		cssplt.WithTitles(cfg.Titles()),
	}
	if cfg.ID != "" {
		opts = append(opts, cssplt.WithID(cfg.ID))
	}
	return cssplt.New(table, fallback, opts...)
}
