package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// format is the value type of flag --format.
type format string

const (
	formatYAML format = "yaml"
	formatJSON format = "json"
)

func (f *format) String() string {
	return string(*f)
}

// Set is part of interface pflag.Value.
func (f *format) Set(s string) error {
	switch format(s) {
	case formatYAML, formatJSON:
		*f = format(s)
		return nil
	}
	return fmt.Errorf("must be one of yaml|json, got %q", s)
}

// Type is part of interface pflag.Value.
func (f *format) Type() string {
	return "format"
}

var _ pflag.Value = (*format)(nil)

// write outputs v in the format selected with --format.
func write(w io.Writer, v interface{}) error {
	if outputFormat == formatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(v)
}
