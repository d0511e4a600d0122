package types

import "fmt"

// HierarchyType is a dispatch cone: its base type or any runtime subtype of it.
//
// Cones are obtained through NamedType.Hierarchy, which memoizes them, so two
// cones over the same base are identical.
type HierarchyType struct {
	base *NamedType
}

func (t *HierarchyType) Base() *NamedType { return t.base }

func (t *HierarchyType) String() string {
	return fmt.Sprintf("%s+", t.base)
}

// HierarchyOf returns the cone over t. Named types get their memoized cone,
// cones are returned as they are, and every member of a union is widened into
// its own cone. SelfType and nil have no cone and yield nil.
func HierarchyOf(t Type) Type {
	switch t := t.(type) {
	case nil:
		return nil
	case *NamedType:
		return t.Hierarchy()
	case *HierarchyType:
		return t
	case *UnionType:
		cones := make([]Type, 0, len(t.types))
		for _, m := range t.types {
			cones = append(cones, HierarchyOf(m))
		}
		return NewUnion(cones...)
	case *SelfType:
		return nil
	default:
		panic(fmt.Sprintf("unexpected type %T", t))
	}
}
