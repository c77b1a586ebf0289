package match

import "fmt"

// PatternError reports a configured pattern that cannot back a matcher,
// either because it does not compile or because it carries an
// unsupported flag.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
