package thicket

import "errors"

// ErrNoParse is returned by Parser.Parse when recognition failed; the
// accompanying Forest is well-formed but always has Count() == 0. Not an
// exceptional condition — callers that only read Forest.Count() can ignore
// it entirely.
var ErrNoParse = errors.New("thicket: input not recognized")

// ErrNotUnique is returned by Forest.UniqueAnnotated when disambiguation
// left zero or more than one surviving tree. Whether that is itself an
// error, or an expected "still ambiguous" state, is a decision left to the
// caller.
var ErrNotUnique = errors.New("thicket: forest does not have exactly one tree")
