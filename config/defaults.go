package config

import (
	"fmt"
	"regexp"

	"github.com/npillmayer/cssplt"
	"github.com/npillmayer/cssplt/statevar"
)

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when the figure description is missing
// specific fields.
func DefaultConfig() *FigureConfig {
	return &FigureConfig{
		Fallback: FallbackConfig{
			Mode: FallbackPlaceholder,
			Text: "No view for this selection",
		},
		Theme: cssplt.DefaultTheme(),
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new FigureConfig with merged values.
func Merge(loaded, defaults *FigureConfig) *FigureConfig {
	result := &FigureConfig{
		ID:     loaded.ID,
		Title:  loaded.Title,
		Theme:  loaded.Theme.Merge(defaults.Theme),
		Limits: loaded.Limits,
	}
	if result.ID == "" {
		result.ID = defaults.ID
	}
	if result.Title == "" {
		result.Title = defaults.Title
	}
	if len(loaded.Variables) > 0 {
		result.Variables = make([]VariableConfig, len(loaded.Variables))
		for i, v := range loaded.Variables {
			result.Variables[i] = mergeVariableConfig(v)
		}
	} else {
		result.Variables = defaults.Variables
	}
	result.Fallback = mergeFallbackConfig(loaded.Fallback, defaults.Fallback)
	// MaxViews: use loaded if non-zero
	if result.Limits.MaxViews == 0 {
		result.Limits.MaxViews = defaults.Limits.MaxViews
	}
	return result
}

func mergeVariableConfig(v VariableConfig) VariableConfig {
	if v.Kind == "" {
		if len(v.Tags) > 0 {
			v.Kind = KindTags
		} else {
			v.Kind = KindSingle
		}
	}
	if v.Kind == KindTags && v.Policy == "" {
		v.Policy = statevar.Any.String()
	}
	return v
}

func mergeFallbackConfig(loaded, defaults FallbackConfig) FallbackConfig {
	result := loaded
	if result.Mode == "" {
		result.Mode = defaults.Mode
	}
	if result.Text == "" {
		result.Text = defaults.Text
	}
	return result
}

var figureID = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Validate checks a figure description.
func Validate(cfg *FigureConfig) error {
	if cfg.ID != "" && !figureID.MatchString(cfg.ID) {
		return fmt.Errorf("%w: id must start with a letter, followed by letters, digits, '-' or '_', got %q",
			ErrInvalidConfig, cfg.ID)
	}
	seen := make(map[string]bool, len(cfg.Variables))
	for i, v := range cfg.Variables {
		if err := statevar.CheckName(v.Name); err != nil {
			return fmt.Errorf("%w: variable #%d: %v", ErrInvalidConfig, i+1, err)
		}
		if seen[v.Name] {
			return fmt.Errorf("%w: variable %q declared twice", ErrInvalidConfig, v.Name)
		}
		seen[v.Name] = true
		if err := validateVariable(v); err != nil {
			return err
		}
	}
	switch cfg.Fallback.Mode {
	case FallbackPlaceholder, FallbackReuse:
	default:
		return fmt.Errorf("%w: fallback mode must be one of [%s %s], got %q",
			ErrInvalidConfig, FallbackPlaceholder, FallbackReuse, cfg.Fallback.Mode)
	}
	if cfg.Limits.MaxViews < 0 {
		return fmt.Errorf("%w: max_views must be non-negative, got %d",
			ErrInvalidConfig, cfg.Limits.MaxViews)
	}
	return nil
}

func validateVariable(v VariableConfig) error {
	switch v.Kind {
	case KindSingle:
		if len(v.Options) == 0 {
			return fmt.Errorf("%w: variable %q has no options", ErrInvalidConfig, v.Name)
		}
		if len(v.Tags) > 0 || v.Policy != "" {
			return fmt.Errorf("%w: single-choice variable %q must not have tags or a policy",
				ErrInvalidConfig, v.Name)
		}
	case KindTags:
		if len(v.Tags) == 0 {
			return fmt.Errorf("%w: tag group %q has no tags", ErrInvalidConfig, v.Name)
		}
		if len(v.Options) > 0 || v.Default != "" {
			return fmt.Errorf("%w: tag group %q must not have options or a default",
				ErrInvalidConfig, v.Name)
		}
		if _, err := statevar.ParsePolicy(v.Policy); err != nil {
			return fmt.Errorf("%w: tag group %q: %v", ErrInvalidConfig, v.Name, err)
		}
	default:
		return fmt.Errorf("%w: variable %q: kind must be one of [%s %s], got %q",
			ErrInvalidConfig, v.Name, KindSingle, KindTags, v.Kind)
	}
	return nil
}
