package statevar

import "fmt"

// DuplicateVariableError is returned if a variable name is already taken
// within a registry. Names are shared between single-choice variables and
// tag groups.
type DuplicateVariableError struct {
	Name string
}

func (e *DuplicateVariableError) Error() string {
	return fmt.Sprintf("variable %q is already registered", e.Name)
}

// EmptyDomainError is returned if a variable is declared without any
// options or tags.
type EmptyDomainError struct {
	Name string
	Kind Kind
}

func (e *EmptyDomainError) Error() string {
	what := "options"
	if e.Kind == BooleanKind {
		what = "tags"
	}
	return fmt.Sprintf("%s variable %q declared with no %s", e.Kind, e.Name, what)
}

// InvalidNameError is returned for names and values which cannot take part
// in a view key: empty strings, duplicates within a domain, or strings
// containing one of the reserved characters.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Name, e.Reason)
}
