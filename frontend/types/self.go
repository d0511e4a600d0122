package types

import "slices"

// SelfType stands for the receiver's own type. It carries no data: what it
// means is always decided by the owner it is evaluated against.
type SelfType struct{}

// Self is the only SelfType value needed; comparisons never rely on its identity
var Self = &SelfType{}

func (*SelfType) String() string { return "self" }

// ContainsSelf reports whether t is self or a union with self among its members
func ContainsSelf(t Type) bool {
	switch t := t.(type) {
	case *SelfType:
		return t != nil
	case *UnionType:
		return t != nil && slices.ContainsFunc(t.types, ContainsSelf)
	default:
		return false
	}
}
