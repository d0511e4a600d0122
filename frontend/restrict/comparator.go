// Package restrict decides whether one parameter restriction is more specific
// than another, and narrows argument types by a restriction. Both operations
// are pure: they read the type graph and never modify it.
package restrict

import (
	"fmt"
	"slices"

	"github.com/cottand/overload/frontend/types"
)

// IsRestrictionOf reports whether a is at least as specific as b, that is,
// whether a method whose parameter is restricted by a should be preferred over
// one restricted by b.
//
// A resolved type is a restriction of an absent target. A nil candidate is
// only a restriction of a nil target.
func IsRestrictionOf(a, b types.Node, owner Owner) bool {
	if types.IsNil(a) {
		return types.IsNil(b)
	}
	if _, resolved := a.(types.Type); resolved && types.IsNil(b) {
		return true
	}
	if _, isSelf := b.(*types.SelfType); isSelf {
		if _, candidateIsSelf := a.(*types.SelfType); candidateIsSelf {
			return true
		}
		if bound := owner.Self(); !types.IsNil(bound) && !types.ContainsSelf(bound) {
			b = bound
		}
	}

	switch a := a.(type) {
	case *types.Ident:
		return identIsRestrictionOf(a, b, owner)
	case *types.IdentUnion:
		return slices.ContainsFunc(a.Idents, func(ident *types.Ident) bool {
			return IsRestrictionOf(ident, b, owner)
		})
	case *types.NewGenericClass:
		return genericIsRestrictionOf(a, b, owner)
	case *types.SelfType:
		// a receiver bound to self would send the owner back here forever
		if types.ContainsSelf(owner.Self()) {
			return false
		}
		return owner.IsRestrictionOf(b, owner)
	case *types.UnionType:
		return slices.ContainsFunc(a.Types(), func(m types.Type) bool {
			return IsRestrictionOf(m, b, owner)
		})
	case *types.HierarchyType:
		bt, ok := b.(types.Type)
		if !ok {
			return false
		}
		return types.IsSubclassOf(bt, a.Base()) || types.IsSubclassOf(a.Base(), bt)
	case *types.NamedType:
		return namedIsRestrictionOf(a, b, owner)
	default:
		panic(fmt.Sprintf("unexpected node %T", a))
	}
}

func identIsRestrictionOf(a *types.Ident, b types.Node, owner Owner) bool {
	if types.Equal(a, b) {
		return true
	}
	var other *types.Ident
	switch b := b.(type) {
	case *types.IdentUnion:
		return slices.ContainsFunc(b.Idents, func(ident *types.Ident) bool {
			return identIsRestrictionOf(a, ident, owner)
		})
	case *types.Ident:
		other = b
	default:
		return false
	}

	self := owner.LookupType(a)
	if types.IsNil(self) {
		// nothing can be claimed about a name that does not exist
		return false
	}
	resolved := owner.LookupType(other)
	if types.IsNil(resolved) {
		// an unknown target name restricts nothing
		return true
	}
	return IsRestrictionOf(self, resolved, owner)
}

// genericIsRestrictionOf compares instantiations position by position: each
// type argument must itself be a restriction of its counterpart.
func genericIsRestrictionOf(a *types.NewGenericClass, b types.Node, owner Owner) bool {
	if types.Equal(a, b) {
		return true
	}
	other, ok := b.(*types.NewGenericClass)
	if !ok {
		return false
	}
	if !a.Name.Equal(other.Name) || len(a.TypeVars) != len(other.TypeVars) {
		return false
	}
	for i := range a.TypeVars {
		if !IsRestrictionOf(a.TypeVars[i], other.TypeVars[i], owner) {
			return false
		}
	}
	return true
}

func namedIsRestrictionOf(a *types.NamedType, b types.Node, owner Owner) bool {
	if types.IsNil(b) || types.Equal(a, b) {
		return true
	}
	switch b := b.(type) {
	case *types.UnionType:
		if slices.ContainsFunc(b.Types(), func(m types.Type) bool { return IsRestrictionOf(a, m, owner) }) {
			return true
		}
	case *types.HierarchyType:
		if types.IsSubclassOf(a, b.Base()) {
			return true
		}
	case *types.NamedType:
		if isGenericWildcard(a, b) {
			return true
		}
	}
	return slices.ContainsFunc(a.Parents(), func(parent *types.NamedType) bool {
		return IsRestrictionOf(parent, b, owner)
	})
}

// isGenericWildcard reports whether b is the bare name of a's generic family,
// such as Array when a is Array(Int)
func isGenericWildcard(a, b *types.NamedType) bool {
	return a.IsGeneric() &&
		a.Container() == b.Container() &&
		a.Name() == b.Name() &&
		!b.HasBoundTypeVars()
}
