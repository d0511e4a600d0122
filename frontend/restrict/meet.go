package restrict

import (
	"fmt"

	"github.com/cottand/overload/frontend/types"
)

// Restrict narrows t by other: it returns the part of t that other admits, or
// nil when the two have nothing in common. When t is a union, the surviving
// parts of its members are joined with m.
//
// A non-nil result r always satisfies IsRestrictionOf(r, t, owner).
//
// Self on either side stands for owner.Self().
func Restrict(t, other types.Type, owner Owner, m Merger) types.Type {
	if _, isSelf := t.(*types.SelfType); isSelf {
		t = owner.Self()
	}
	if _, isSelf := other.(*types.SelfType); isSelf {
		if bound := owner.Self(); !types.IsNil(bound) && !types.ContainsSelf(bound) {
			other = bound
		}
	}
	if types.ContainsSelf(t) && types.ContainsSelf(owner.Self()) {
		// self bound to itself has nothing to narrow with
		return nil
	}
	if types.IsNil(t) {
		return nil
	}

	var result types.Type
	switch t := t.(type) {
	case *types.NamedType:
		// every parent is tried, not only the first one, so Restrict agrees
		// with IsRestrictionOf on named types
		if namedIsRestrictionOf(t, other, owner) {
			result = t
		}
	case *types.UnionType:
		result = restrictEach(t.Types(), func(member types.Type) types.Type {
			return Restrict(member, other, owner, m)
		}, m)
	case *types.HierarchyType:
		result = restrictHierarchy(t, other, owner, m)
	case *types.SelfType:
		// the owner bound self to itself, there is nothing to narrow with
		result = nil
	default:
		panic(fmt.Sprintf("unexpected type %T", t))
	}

	if types.IsNil(result) {
		logger.Debug("no common refinement", "type", t, "restriction", other)
		return nil
	}
	return result
}

func restrictHierarchy(t *types.HierarchyType, other types.Type, owner Owner, m Merger) types.Type {
	if types.IsNil(other) || types.Equal(t, other) {
		return t
	}

	switch other := other.(type) {
	case *types.UnionType:
		return restrictEach(other.Types(), func(member types.Type) types.Type {
			return Restrict(t, member, owner, m)
		}, m)
	case *types.HierarchyType:
		base := Restrict(t.Base(), other.Base(), owner, m)
		if types.IsNil(base) {
			base = Restrict(other.Base(), t.Base(), owner, m)
		}
		if types.IsNil(base) {
			return nil
		}
		return types.HierarchyOf(base)
	}

	switch {
	case types.IsSubclassOf(other, t.Base()):
		// other lies inside the cone: keep dispatching, but from other down
		return types.HierarchyOf(other)
	case types.IsSubclassOf(t.Base(), other):
		return t
	default:
		return nil
	}
}

// restrictEach narrows every one of ts with f and joins whatever survives.
// Members that fail are left out of the join; if all fail the result is nil.
func restrictEach(ts []types.Type, f func(types.Type) types.Type, m Merger) types.Type {
	results := make([]types.Type, 0, len(ts))
	for _, t := range ts {
		if r := f(t); !types.IsNil(r) {
			results = append(results, r)
		}
	}
	if len(results) == 0 {
		return nil
	}
	return m.Merge(results...)
}
