// Package editor implements the in-memory editing session over a single CV
// document: list editors for experience, education, and projects, the flat
// personal-details editor, and the two-level skills editor.
package editor

import (
	"strconv"
	"sync/atomic"
	"time"
)

// lastID holds the most recently issued ID so that two adds within the
// same nanosecond still get distinct values.
var lastID atomic.Int64

// NewID returns a time-derived identifier, unique within the process and
// strictly increasing. Item IDs are assigned at creation and never reused.
func NewID() string {
	for {
		last := lastID.Load()
		next := time.Now().UnixNano()
		if next <= last {
			next = last + 1
		}
		if lastID.CompareAndSwap(last, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}
