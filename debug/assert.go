//go:build debug

package debug

// Enabled reports whether assertions are compiled in. Guard assertions that
// do their own work (i.e. anything that could panic or allocate) with
// `if debug.Enabled {...}` so release builds can drop them entirely.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic("assert: " + message)
	}
}

func AssertErrNil(err error) {
	if err != nil {
		panic(err)
	}
}
