package debug

import (
	"github.com/ezrec/word16/word"
)

// Change is a detected change of a watched value.
type Change struct {
	Name string
	Old  word.Word
	New  word.Word
}

type watchRecord struct {
	last    word.Word
	changes int
}

// Watcher detects changes of named values between polls. A name seen
// for the first time is reported as a change from zero.
type Watcher struct {
	records map[string]*watchRecord
}

// Watch compares current to the last value seen for name.
func (w *Watcher) Watch(name string, current word.Word) (change Change, ok bool) {
	if w.records == nil {
		w.records = map[string]*watchRecord{}
	}

	rec, seen := w.records[name]
	if !seen {
		rec = &watchRecord{}
		w.records[name] = rec
	} else if rec.last == current {
		return
	}

	change = Change{Name: name, Old: rec.last, New: current}
	rec.last = current
	rec.changes++
	ok = true
	return
}

// Changes is the number of changes reported for name.
func (w *Watcher) Changes(name string) int {
	rec, ok := w.records[name]
	if !ok {
		return 0
	}
	return rec.changes
}

// Reset forgets every watch.
func (w *Watcher) Reset() {
	clear(w.records)
}
