package common

import "time"

// Today formats t as a report date (YYYY-MM-DD) in t's own location.
// Callers pass time.Now() in production and a fixed clock in tests.
func Today(t time.Time) string {
	return t.Format(DateFormat)
}

// WipeByteArray zeroes the contents of b. Used to clear passwords from
// memory after use. If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
