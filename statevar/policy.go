package statevar

import (
	"fmt"
	"strings"
)

// Policy is the combination policy of a tag group. It decides how an active
// tag subset selects data rows. It does not change which control states get
// their own visual: every enumerated subset is dispatched on exact equality.
type Policy uint8

const (
	Any Policy = iota // a row is selected if it carries at least one active tag
	All               // a row is selected if it carries every active tag
)

func (p Policy) String() string {
	if p == All {
		return "all"
	}
	return "any"
}

// ParsePolicy reads a policy from its textual form ("any" or "all", case
// insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any", "or":
		return Any, nil
	case "all", "and":
		return All, nil
	}
	return Any, fmt.Errorf("unknown tag policy %q, expected 'any' or 'all'", s)
}

// Matches is the row predicate for data producers: does a row carrying rowTags
// belong to the visual for an active subset? An empty subset means no filter
// is active, so every row matches.
func (p Policy) Matches(rowTags []string, subset []string) bool {
	if len(subset) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(rowTags))
	for _, t := range rowTags {
		have[t] = struct{}{}
	}
	for _, t := range subset {
		_, ok := have[t]
		if ok && p == Any {
			return true
		}
		if !ok && p == All {
			return false
		}
	}
	return p == All
}
