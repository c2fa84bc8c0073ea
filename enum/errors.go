package enum

import "github.com/npillmayer/schuko/gconf"

// BranchPointerError reports that Tree was called without a preceding
// Next that returned true — e.g. before the first call to Next, or after
// Next has returned false and the enumerator was not Reset. Internal
// bug, not a recognition or disambiguation outcome.
type BranchPointerError struct {
	Reason string
}

func (e *BranchPointerError) Error() string {
	return "thicket/enum: " + e.Reason
}

// guardBranchPointer traces the error always, and additionally panics
// when the operator opted into debug-mode assertions via gconf, so a
// misused enumerator fails loudly in development but degrades to "no
// tree" (the zero value) in a deployed build that never set the flag.
func guardBranchPointer(reason string) *BranchPointerError {
	err := &BranchPointerError{Reason: reason}
	tracer().Errorf(err.Error())
	if gconf.GetBool("panic-on-reenumerate-without-reset") {
		panic(err.Error())
	}
	return err
}
