//go:build !debug

// Package debug provides assertions that compile to no-ops unless the debug
// build tag is set.
//
// This is not considered idiomatic Go, but might be useful in an embedded
// environment.
package debug

// Enabled reports whether assertions are compiled in. Guard assertions that
// do their own work (i.e. anything that could panic or allocate) with
// `if debug.Enabled {...}` so release builds can drop them entirely.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
