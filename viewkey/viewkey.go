package viewkey

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/npillmayer/cssplt/statevar"
)

// ViewKey identifies one combination of control state. Keys are immutable
// values and may be compared with == or used as map keys.
//
// The zero value is the key of a table without variables.
type ViewKey struct {
	id string
}

// Coordinate is the part of a view key belonging to one variable. For a
// single-choice variable Value holds the selected option; for a tag group
// Tags holds the sorted subset of active tags.
type Coordinate struct {
	Variable string
	Kind     statevar.Kind
	Value    string
	Tags     []string
}

func (c Coordinate) String() string {
	if c.Kind == statevar.BooleanKind {
		return c.Variable + "={" + strings.Join(c.Tags, ",") + "}"
	}
	return c.Variable + "=" + c.Value
}

// Make creates a view key from coordinates, in the given order. Names are
// expected to have been checked by a statevar registry.
func Make(coords ...Coordinate) ViewKey {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = c.String()
	}
	return ViewKey{id: strings.Join(parts, ";")}
}

// ID returns the canonical identifier of a key. Identifiers are derived from
// the key's content only.
func (k ViewKey) ID() string {
	return k.id
}

func (k ViewKey) String() string {
	if k.id == "" {
		return "⟨⟩"
	}
	return "⟨" + k.id + "⟩"
}

// Coordinates decodes the key into its parts.
func (k ViewKey) Coordinates() []Coordinate {
	if k.id == "" {
		return nil
	}
	parts := strings.Split(k.id, ";")
	coords := make([]Coordinate, 0, len(parts))
	for _, p := range parts {
		name, val, _ := strings.Cut(p, "=")
		if strings.HasPrefix(val, "{") && strings.HasSuffix(val, "}") {
			c := Coordinate{Variable: name, Kind: statevar.BooleanKind, Tags: []string{}}
			if inner := val[1 : len(val)-1]; inner != "" {
				c.Tags = strings.Split(inner, ",")
			}
			coords = append(coords, c)
			continue
		}
		coords = append(coords, Coordinate{Variable: name, Kind: statevar.SingleChoiceKind, Value: val})
	}
	return coords
}

// Choice returns the selected option of a single-choice variable.
func (k ViewKey) Choice(variable string) (string, bool) {
	for _, c := range k.Coordinates() {
		if c.Variable == variable && c.Kind == statevar.SingleChoiceKind {
			return c.Value, true
		}
	}
	return "", false
}

// Subset returns the active tags of a tag group, sorted.
func (k ViewKey) Subset(group string) ([]string, bool) {
	for _, c := range k.Coordinates() {
		if c.Variable == group && c.Kind == statevar.BooleanKind {
			return c.Tags, true
		}
	}
	return nil, false
}

// Slug returns a name for the key which is safe to use as a file name, e.g.
//
//	metric-accuracy__tags-a+c
//
// Distinct keys of an enumeration have distinct slugs. Values are written
// as-is only if they consist of letters, digits, '-' and '.', and no tag
// reads "none". Otherwise unsafe characters are replaced and a hash of the
// identifier is appended after a single '_', which a plain value never ends with.
func (k ViewKey) Slug() string {
	coords := k.Coordinates()
	if len(coords) == 0 {
		return "all"
	}
	plain := true
	parts := make([]string, len(coords))
	for i, c := range coords {
		v := c.Value
		if c.Kind == statevar.BooleanKind {
			v = "none"
			if len(c.Tags) > 0 {
				v = strings.Join(c.Tags, "+")
			}
			for _, t := range c.Tags {
				plain = plain && t != "none" && isPlain(t)
			}
		} else {
			plain = plain && isPlain(v)
		}
		parts[i] = c.Variable + "-" + v
	}
	slug := strings.Map(func(r rune) rune {
		if isPlainRune(r) || r == '_' || r == '+' {
			return r
		}
		plain = false
		return '_'
	}, strings.Join(parts, "__"))
	if !plain {
		h := fnv.New64a()
		h.Write([]byte(k.id))
		slug = fmt.Sprintf("%s_%016x", slug, h.Sum64())
	}
	return slug
}

func isPlain(s string) bool {
	for _, r := range s {
		if !isPlainRune(r) {
			return false
		}
	}
	return s != ""
}

func isPlainRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return r == '-' || r == '.'
}
