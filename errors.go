package cssplt

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cssplt/viewkey"
)

// MissingVisualError is returned by Render if visuals for enumerated view keys
// are absent. A figure is rendered completely or not at all.
type MissingVisualError struct {
	Keys []viewkey.ViewKey // in enumeration order
}

func (e *MissingVisualError) Error() string {
	const show = 8
	ids := make([]string, 0, show+1)
	for i, k := range e.Keys {
		if i == show {
			ids = append(ids, fmt.Sprintf("… (%d more)", len(e.Keys)-show))
			break
		}
		ids = append(ids, k.String())
	}
	return fmt.Sprintf("missing visuals for %d view keys: %s", len(e.Keys), strings.Join(ids, ", "))
}

// FallbackKeyError is returned by New if a reused fallback view key is not
// among the enumerated keys of a figure.
type FallbackKeyError struct {
	Key viewkey.ViewKey
}

func (e *FallbackKeyError) Error() string {
	return fmt.Sprintf("fallback view key %v is not enumerated", e.Key)
}

// InvalidIDError is returned by New for figure identifiers which cannot be
// used in element IDs.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid figure id %q: must start with a letter, followed by letters, digits, '-' or '_'", e.ID)
}
