package types

import (
	"fmt"
	"slices"
	"strings"
)

// Ident is an unresolved, possibly qualified type name such as Geo::Point.
// Global marks a name written with a leading ::, which is looked up from the
// top level only.
type Ident struct {
	Names  []string
	Global bool
}

func NewIdent(names ...string) *Ident {
	return &Ident{Names: names}
}

func (i *Ident) String() string {
	name := strings.Join(i.Names, "::")
	if i.Global {
		return "::" + name
	}
	return name
}

// Equal compares names structurally
func (i *Ident) Equal(other *Ident) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.Global == other.Global && slices.Equal(i.Names, other.Names)
}

// IdentUnion is an unresolved union written as A | B
type IdentUnion struct {
	Idents []*Ident
}

func (u *IdentUnion) String() string {
	names := make([]string, len(u.Idents))
	for i, ident := range u.Idents {
		names[i] = ident.String()
	}
	return strings.Join(names, " | ")
}

// NewGenericClass is an unresolved generic instantiation such as Array(Int).
// TypeVars are syntactic nodes themselves, or Self.
type NewGenericClass struct {
	Name     *Ident
	TypeVars []Node
}

func (g *NewGenericClass) String() string {
	args := make([]string, len(g.TypeVars))
	for i, arg := range g.TypeVars {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", g.Name, strings.Join(args, ", "))
}

// Equal reports whether two nodes are the same: syntactic nodes compare
// structurally, resolved types by identity.
func Equal(a, b Node) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	switch a := a.(type) {
	case *Ident:
		other, ok := b.(*Ident)
		return ok && a.Equal(other)
	case *IdentUnion:
		other, ok := b.(*IdentUnion)
		return ok && slices.EqualFunc(a.Idents, other.Idents, (*Ident).Equal)
	case *NewGenericClass:
		other, ok := b.(*NewGenericClass)
		return ok && a.Name.Equal(other.Name) && slices.EqualFunc(a.TypeVars, other.TypeVars, Equal)
	case *SelfType:
		_, ok := b.(*SelfType)
		return ok
	case *NamedType, *UnionType, *HierarchyType:
		return a == b
	default:
		panic(fmt.Sprintf("unexpected node %T", a))
	}
}
