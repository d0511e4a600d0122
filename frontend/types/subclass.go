package types

import (
	"fmt"
	"iter"

	"github.com/hashicorp/go-set/v3"
)

// IsSubclassOf reports whether every value of a is also a value of b, judged
// only by ancestry:
//   - a named type is a subclass of b when b appears in the reflexive-transitive
//     closure of its direct parents (see Ancestors)
//   - a cone on either side is replaced by its base, as a cone and its base
//     share the same set of ancestors
//   - a union on the left must have every member be a subclass of b, a union on
//     the right only needs one member to contain a
//
// SelfType and nil are never subclasses of anything, as their meaning depends
// on an owner this function does not have.
func IsSubclassOf(a, b Type) bool {
	if IsNil(a) || IsNil(b) {
		return false
	}
	if a == b {
		return true
	}

	switch a := a.(type) {
	case *UnionType:
		for _, m := range a.types {
			if !IsSubclassOf(m, b) {
				return false
			}
		}
		return true
	case *HierarchyType:
		return IsSubclassOf(a.base, b)
	case *SelfType:
		return false
	case *NamedType:
		switch b := b.(type) {
		case *HierarchyType:
			return isAncestor(a, b.base)
		case *UnionType:
			for _, m := range b.types {
				if IsSubclassOf(a, m) {
					return true
				}
			}
			return false
		case *NamedType:
			return isAncestor(a, b)
		case *SelfType:
			return false
		default:
			panic(fmt.Sprintf("unexpected type %T", b))
		}
	default:
		panic(fmt.Sprintf("unexpected type %T", a))
	}
}

func isAncestor(t, ancestor *NamedType) bool {
	for candidate := range Ancestors(t) {
		if candidate == ancestor {
			return true
		}
	}
	return false
}

// Ancestors yields t followed by every type reachable through its parents,
// breadth first, each exactly once. A generic instance counts the generic
// class it instantiates among its ancestors.
func Ancestors(t *NamedType) iter.Seq[*NamedType] {
	return func(yield func(*NamedType) bool) {
		seen := set.New[*NamedType](8)
		queue := []*NamedType{t}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			if !seen.Insert(current) {
				continue
			}
			if !yield(current) {
				return
			}
			if current.origin != nil {
				queue = append(queue, current.origin)
			}
			queue = append(queue, current.parents...)
		}
	}
}
