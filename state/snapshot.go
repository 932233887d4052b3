package state

import (
	"github.com/ezrec/word16/word"
)

// Recoverable is the error state a snapshot is restored against.
type Recoverable interface {
	Status() bool // True when an error or condition flag is present.
	ClearError()  // Clears the error register.
}

// Entry is one captured register.
type Entry struct {
	Name  string
	Value word.Word
}

// Snapshot is an ordered copy of named register values.
type Snapshot struct {
	Entries []Entry
}

// Capture reads the named registers from store. Every name must exist.
func Capture(store Store, names ...string) (snap Snapshot, err error) {
	snap.Entries = make([]Entry, 0, len(names))
	for _, name := range names {
		value, ok := store.Get(name)
		if !ok {
			err = ErrRegisterUnknown(name)
			snap = Snapshot{}
			return
		}
		snap.Entries = append(snap.Entries, Entry{Name: name, Value: value})
	}

	return
}

// Restore writes every captured value back to store, in capture order.
func (snap Snapshot) Restore(store Store) (err error) {
	for _, entry := range snap.Entries {
		err = store.Set(entry.Name, entry.Value)
		if err != nil {
			return
		}
	}
	return
}

// RestoreIfError restores the snapshot and clears the error register
// when rec reports a failure. Otherwise nothing is written.
func (snap Snapshot) RestoreIfError(store Store, rec Recoverable) (restored bool, err error) {
	if !rec.Status() {
		return
	}

	err = snap.Restore(store)
	if err != nil {
		return
	}

	rec.ClearError()
	restored = true
	return
}

// Value returns the captured value of name.
func (snap Snapshot) Value(name string) (value word.Word, ok bool) {
	for _, entry := range snap.Entries {
		if entry.Name == name {
			return entry.Value, true
		}
	}
	return
}
