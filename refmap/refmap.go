// Package refmap resolves a building's stable identifier to its array
// position during encode. Identifiers are usually dense and small, so
// the table is a sorted slice searched with sort.Search rather than a
// hash map.
package refmap

import (
	"sort"

	"github.com/sphereforge/dspbptk/model"
)

type entry struct {
	stableIndex int32
	position    int32
}

// Table maps a building's stable index to its position in the array it
// was built from.
type Table struct {
	entries []entry
}

// Build constructs a Table from the current building array. Duplicate
// stable indices are not expected (the model's invariant requires
// uniqueness); when present, the lowest matching position wins.
func Build(buildings []model.Building) Table {
	entries := make([]entry, len(buildings))
	for i, b := range buildings {
		entries[i] = entry{stableIndex: b.Index, position: int32(i)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].stableIndex < entries[j].stableIndex
	})
	return Table{entries: entries}
}

// Resolve looks up the array position of the building whose stable
// index equals ref. An absent ref (model.NoRef) resolves as absent
// with ok == true, since there is nothing to look up. A present ref
// with no matching building resolves with ok == false — the caller is
// responsible for logging the dangling reference and rewriting the
// outgoing value to -1.
func (t Table) Resolve(ref model.Ref) (position int32, ok bool) {
	stableIndex, present := ref.Index()
	if !present {
		return -1, true
	}

	entries := t.entries
	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].stableIndex >= stableIndex
	})
	if i < len(entries) && entries[i].stableIndex == stableIndex {
		return entries[i].position, true
	}
	return 0, false
}
