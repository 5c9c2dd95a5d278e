package version

import "fmt"

// ParseError reports a version string that does not match the grammar of
// the type being constructed. The rejected input is retained so callers can
// surface it.
type ParseError struct {
	Input   string
	Grammar string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a valid %s version", e.Input, e.Grammar)
}
