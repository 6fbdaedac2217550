package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssplt.style'
func tracer() tracing.Trace {
	return tracing.Select("cssplt.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     display: none
//
// a property value of "none" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String() + ";"
}

// --- Declaration blocks -----------------------------------------------

// Declarations is an ordered CSS declaration block, e.g. the part between
// the braces of
//
//     .cssplt-view { display: none; }
//
// nil is a legal (empty) declaration block.
type Declarations []KeyValue

// Decl is a shortcut to create a declaration block from key/value pairs.
// It panics if called with an odd number of arguments.
//
//     style.Decl("display", "block", "opacity", "1")
//
func Decl(kv ...string) Declarations {
	if len(kv)%2 != 0 {
		panic("style.Decl called with odd number of arguments")
	}
	d := make(Declarations, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		d = d.Set(kv[i], Property(kv[i+1]))
	}
	return d
}

// Get a property's value.
func (d Declarations) Get(key string) (Property, bool) {
	for _, kv := range d {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return NullStyle, false
}

// Set a property's value. Overwrites an existing value in place, if
// present, otherwise appends it. Keys are converted to lower case.
func (d Declarations) Set(key string, p Property) Declarations {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, kv := range d {
		if kv.Key == key {
			d[i].Value = p
			return d
		}
	}
	return append(d, KeyValue{Key: key, Value: p})
}

// Keys returns the property keys in order.
func (d Declarations) Keys() []string {
	keys := make([]string, len(d))
	for i, kv := range d {
		keys[i] = kv.Key
	}
	return keys
}

// String returns the declarations in CSS notation, separated by blanks.
func (d Declarations) String() string {
	parts := make([]string, len(d))
	for i, kv := range d {
		parts[i] = kv.String()
	}
	return strings.Join(parts, " ")
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "font-family", "font-size", "font-weight":
		return true
	case "letter-spacing", "line-height", "quotes", "visibility", "white-space":
		return true
	case "word-spacing", "word-break", "word-wrap", "pointer-events":
		return true
	}
	return false
}
