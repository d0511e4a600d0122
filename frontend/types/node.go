// Package types holds the closed family of type representations compared by
// overload resolution: resolved types (NamedType, UnionType, HierarchyType,
// SelfType) and the unresolved syntactic restrictions written in method
// signatures (Ident, IdentUnion, NewGenericClass).
//
// Resolved types are compared by identity. Two *NamedType values describe the
// same type only if they are the same pointer, which is why generic instances
// and hierarchy cones are memoized by whoever builds them.
package types

import "fmt"

// Node is implemented by every variant of the family and by nothing else.
type Node interface {
	fmt.Stringer
	node()
}

// Type is a resolved Node
type Type interface {
	Node
	resolved()
}

// Expr is an unresolved, syntactic Node as written in a method signature
type Expr interface {
	Node
	expr()
}

var (
	_ Type = (*NamedType)(nil)
	_ Type = (*UnionType)(nil)
	_ Type = (*HierarchyType)(nil)
	_ Type = (*SelfType)(nil)

	_ Expr = (*Ident)(nil)
	_ Expr = (*IdentUnion)(nil)
	_ Expr = (*NewGenericClass)(nil)
)

func (*NamedType) node()     {}
func (*UnionType) node()     {}
func (*HierarchyType) node() {}
func (*SelfType) node()      {}

func (*NamedType) resolved()     {}
func (*UnionType) resolved()     {}
func (*HierarchyType) resolved() {}
func (*SelfType) resolved()      {}

func (*Ident) node()           {}
func (*IdentUnion) node()      {}
func (*NewGenericClass) node() {}

func (*Ident) expr()           {}
func (*IdentUnion) expr()      {}
func (*NewGenericClass) expr() {}

// IsNil reports whether n is absent, including a typed nil pointer stored in
// the interface.
func IsNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *NamedType:
		return n == nil
	case *UnionType:
		return n == nil
	case *HierarchyType:
		return n == nil
	case *SelfType:
		return n == nil
	case *Ident:
		return n == nil
	case *IdentUnion:
		return n == nil
	case *NewGenericClass:
		return n == nil
	default:
		panic(fmt.Sprintf("unexpected node %T", n))
	}
}
