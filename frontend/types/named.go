package types

import (
	"iter"
	"strings"
	"sync"

	"github.com/benbjohnson/immutable"
)

// TypeVar is the binding of one type parameter of a generic NamedType.
// Type is nil while the parameter is unbound.
type TypeVar struct {
	Name string
	Type Type
}

// NamedType is a concrete resolved type: a class, a module, a generic class
// or an instantiation of one.
type NamedType struct {
	name      string
	container *NamedType // nil for top-level types
	parents   []*NamedType
	module    bool

	generic bool
	// params keeps declaration order, typeVars the bindings for each name
	params   []string
	typeVars *immutable.SortedMap[string, TypeVar]
	// origin is the generic class this type instantiates, if any
	origin *NamedType

	coneOnce sync.Once
	cone     *HierarchyType
}

// NewClass returns a non-generic class. parents are its direct supertypes in
// declaration order.
func NewClass(name string, container *NamedType, parents ...*NamedType) *NamedType {
	return &NamedType{
		name:      name,
		container: container,
		parents:   parents,
	}
}

// NewModule returns a module, usable as a container for other types
func NewModule(name string, container *NamedType) *NamedType {
	return &NamedType{
		name:      name,
		container: container,
		module:    true,
	}
}

// NewGeneric returns an uninstantiated generic class: every parameter in params
// is unbound.
func NewGeneric(name string, container *NamedType, params []string, parents ...*NamedType) *NamedType {
	vars := immutable.NewSortedMap[string, TypeVar](nil)
	for _, p := range params {
		vars = vars.Set(p, TypeVar{Name: p})
	}
	return &NamedType{
		name:      name,
		container: container,
		parents:   parents,
		generic:   true,
		params:    params,
		typeVars:  vars,
	}
}

// NewInstance binds the parameters of generic to args, positionally.
// It does not memoize: callers that need identity between equal
// instantiations (such as program.Program) must cache the result.
// args may be shorter than the parameter list, leaving the rest unbound.
func NewInstance(generic *NamedType, args ...Type) *NamedType {
	vars := generic.typeVars
	for i, arg := range args {
		if i >= len(generic.params) {
			break
		}
		name := generic.params[i]
		vars = vars.Set(name, TypeVar{Name: name, Type: arg})
	}
	return &NamedType{
		name:      generic.name,
		container: generic.container,
		parents:   generic.parents,
		generic:   true,
		params:    generic.params,
		typeVars:  vars,
		origin:    generic,
	}
}

func (t *NamedType) Name() string          { return t.name }
func (t *NamedType) Container() *NamedType { return t.container }
func (t *NamedType) IsGeneric() bool       { return t.generic }
func (t *NamedType) IsModule() bool        { return t.module }
func (t *NamedType) Params() []string      { return t.params }

// Origin is the generic class t was instantiated from, or nil
func (t *NamedType) Origin() *NamedType { return t.origin }

// Parents returns the direct supertypes of t in declaration order
func (t *NamedType) Parents() []*NamedType { return t.parents }

// TypeVar returns the binding of the parameter called name
func (t *NamedType) TypeVar(name string) (TypeVar, bool) {
	if t.typeVars == nil {
		return TypeVar{}, false
	}
	return t.typeVars.Get(name)
}

// TypeVars yields the bindings of t in parameter declaration order
func (t *NamedType) TypeVars() iter.Seq[TypeVar] {
	return func(yield func(TypeVar) bool) {
		for _, p := range t.params {
			v, _ := t.TypeVar(p)
			if !yield(v) {
				return
			}
		}
	}
}

// HasBoundTypeVars reports whether at least one parameter of t is bound.
// A generic type without bound parameters acts as a wildcard for every
// instantiation of its family.
func (t *NamedType) HasBoundTypeVars() bool {
	for v := range t.TypeVars() {
		if v.Type != nil {
			return true
		}
	}
	return false
}

// Hierarchy returns the dispatch cone rooted at t. The cone is built once,
// so repeated calls return the identical value.
func (t *NamedType) Hierarchy() *HierarchyType {
	t.coneOnce.Do(func() {
		t.cone = &HierarchyType{base: t}
	})
	return t.cone
}

// FullName is the name of t qualified by its containers, such as Geo::Point
func (t *NamedType) FullName() string {
	if t.container == nil {
		return t.name
	}
	return t.container.FullName() + "::" + t.name
}

func (t *NamedType) String() string {
	if !t.HasBoundTypeVars() {
		return t.FullName()
	}
	sb := strings.Builder{}
	sb.WriteString(t.FullName())
	sb.WriteString("(")
	i := 0
	for v := range t.TypeVars() {
		if i > 0 {
			sb.WriteString(", ")
		}
		i++
		if v.Type == nil {
			sb.WriteString(v.Name)
			continue
		}
		sb.WriteString(v.Type.String())
	}
	sb.WriteString(")")
	return sb.String()
}
