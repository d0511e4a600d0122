package program

import (
	"fmt"
	"sort"

	"github.com/cottand/overload/frontend/restrict"
	"github.com/cottand/overload/frontend/types"
	"github.com/xtgo/set"
)

var _ restrict.Merger = (*Program)(nil)

// Merge is the lattice join of ts: nil inputs are ignored, unions are
// flattened, identical members collapse, and any member already inside the
// cone of another member is dropped. The result is nil for no input, the
// member itself when one remains, and a union sorted by name otherwise.
func (p *Program) Merge(ts ...types.Type) types.Type {
	members := make(byName, 0, len(ts))
	var flatten func(types.Type)
	flatten = func(t types.Type) {
		if types.IsNil(t) {
			return
		}
		if u, ok := t.(*types.UnionType); ok {
			for _, m := range u.Types() {
				flatten(m)
			}
			return
		}
		members = append(members, keyed{t: t, name: t.String(), id: fmt.Sprintf("%p", t)})
	}
	for _, t := range ts {
		flatten(t)
	}

	sort.Sort(members)
	members = members[:set.Uniq(members)]

	kept := make([]types.Type, 0, len(members))
	for i, m := range members {
		if coveredByCone(m.t, members, i) {
			continue
		}
		kept = append(kept, m.t)
	}
	return types.NewUnion(kept...)
}

func coveredByCone(t types.Type, members byName, self int) bool {
	for i, other := range members {
		if i == self {
			continue
		}
		if cone, ok := other.t.(*types.HierarchyType); ok && types.IsSubclassOf(t, cone) {
			return true
		}
	}
	return false
}

type keyed struct {
	t    types.Type
	name string
	id   string
}

// byName orders types by their printed name, breaking ties by identity so
// set.Uniq only collapses identical types
type byName []keyed

func (b byName) Len() int      { return len(b) }
func (b byName) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b byName) Less(i, j int) bool {
	if b[i].name != b[j].name {
		return b[i].name < b[j].name
	}
	return b[i].id < b[j].id
}
