package grammar

import "fmt"

// GrammarError reports a structural problem in a grammar, detected at
// construction time (Builder.Grammar). Recognition and parsing never
// raise it — by the time a Grammar exists, it is known to be
// well-formed.
type GrammarError struct {
	Reason string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("grammar error: %s", e.Reason)
}

func newGrammarError(format string, args ...interface{}) *GrammarError {
	return &GrammarError{Reason: fmt.Sprintf(format, args...)}
}
