package script

import (
	"fmt"
	"strings"

	"go.starlark.net/starlark"

	"github.com/ezrec/word16/alu"
	"github.com/ezrec/word16/state"
)

// snapshotValue is a captured register snapshot.
type snapshotValue struct {
	snap state.Snapshot
}

var _ starlark.Value = (*snapshotValue)(nil)

func (sv *snapshotValue) String() string {
	names := make([]string, 0, len(sv.snap.Entries))
	for _, entry := range sv.snap.Entries {
		names = append(names, entry.Name)
	}
	return fmt.Sprintf("snapshot(%s)", strings.Join(names, ", "))
}

func (sv *snapshotValue) Type() string         { return "snapshot" }
func (sv *snapshotValue) Freeze()              {}
func (sv *snapshotValue) Truth() starlark.Bool { return len(sv.snap.Entries) > 0 }

func (sv *snapshotValue) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable: %s", sv.Type())
}

// tableValue is an immutable lookup table. It is not indexable;
// entries are only read with lookup().
type tableValue struct {
	table alu.Table
}

var _ starlark.Value = (*tableValue)(nil)

func (tv *tableValue) String() string {
	values := make([]string, 0, tv.table.Len())
	for _, value := range tv.table.All() {
		values = append(values, fmt.Sprintf("%d", int16(value)))
	}
	return fmt.Sprintf("table(%s)", strings.Join(values, ", "))
}

func (tv *tableValue) Type() string         { return "table" }
func (tv *tableValue) Freeze()              {}
func (tv *tableValue) Truth() starlark.Bool { return tv.table.Len() > 0 }

func (tv *tableValue) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable: %s", tv.Type())
}
