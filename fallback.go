package cssplt

import (
	"github.com/npillmayer/cssplt/selector"
	"github.com/npillmayer/cssplt/viewkey"
)

// Fallback decides what a figure displays for control states no view key
// covers, e.g. a single-choice variable without an active option, or two
// active tags of a group enumerated with singletons only.
//
// Every figure displays exactly one visual for every control state, so a
// fallback is not optional.
type Fallback struct {
	visual Visual
	key    viewkey.ViewKey
	reuse  bool
}

// Placeholder displays a dedicated visual, e.g. a note asking the reader to
// select fewer tags.
func Placeholder(v Visual) Fallback {
	return Fallback{visual: v}
}

// Reuse displays the visual of an enumerated view key, e.g. the view for the
// empty tag subset.
func Reuse(key viewkey.ViewKey) Fallback {
	return Fallback{key: key, reuse: true}
}

// Reused returns the view key of a reusing fallback.
func (fb Fallback) Reused() (viewkey.ViewKey, bool) {
	return fb.key, fb.reuse
}

// target returns the selector of the container displayed by a fallback.
func (fb Fallback) target() string {
	if fb.reuse {
		return selector.ViewTarget(fb.key.ID())
	}
	return selector.PlaceholderTarget()
}

func (fb Fallback) String() string {
	if fb.reuse {
		return "reuse " + fb.key.String()
	}
	return "placeholder"
}
