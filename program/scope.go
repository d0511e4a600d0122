package program

import (
	"fmt"
	"strings"

	"github.com/cottand/overload/frontend/ast"
	"github.com/cottand/overload/frontend/ilerr"
	"github.com/cottand/overload/frontend/overload"
	"github.com/cottand/overload/frontend/restrict"
	"github.com/cottand/overload/frontend/types"
	"github.com/cottand/overload/parser"
)

var (
	_ restrict.Owner    = (*Scope)(nil)
	_ overload.Resolver = (*Scope)(nil)
)

// Scope is the context a method is declared in. Names are looked up in the
// receiver's own namespace first, then in each enclosing container, then at
// the top level.
type Scope struct {
	program *Program
	self    types.Type
}

// ReceiverScope resolves src at the top level and returns the scope of
// methods declared on it. An empty src is the top-level scope. The receiver
// cannot be self, nor a union with self in it.
func (p *Program) ReceiverScope(src string) (*Scope, error) {
	if src == "" {
		return p.Scope(nil), nil
	}
	self, err := p.Scope(nil).ResolveType(src)
	if err != nil {
		return nil, err
	}
	if types.ContainsSelf(self) {
		return nil, ilerr.New(ilerr.NewInvalidReceiver{Positioner: ast.Range{PosStart: 0, PosEnd: len(src)}, Receiver: src})
	}
	return p.Scope(self), nil
}

func (s *Scope) Program() *Program { return s.program }

func (s *Scope) Self() types.Type { return s.self }

func (s *Scope) IsRestrictionOf(target types.Node, owner restrict.Owner) bool {
	return restrict.IsRestrictionOf(s.self, target, owner)
}

// LookupType returns nil when ident names no declared type
func (s *Scope) LookupType(ident *types.Ident) types.Type {
	t := s.lookup(ident)
	if t == nil {
		return nil
	}
	return t
}

func (s *Scope) lookup(ident *types.Ident) *types.NamedType {
	name := strings.Join(ident.Names, "::")
	if !ident.Global {
		for ns := s.namespace(); ns != nil; ns = ns.Container() {
			if t, ok := s.program.types[ns.FullName()+"::"+name]; ok {
				return t
			}
		}
	}
	return s.program.types[name]
}

// namespace is the innermost named type names are looked up in
func (s *Scope) namespace() *types.NamedType {
	switch self := s.self.(type) {
	case *types.NamedType:
		if origin := self.Origin(); origin != nil {
			return origin
		}
		return self
	case *types.HierarchyType:
		return self.Base()
	default:
		return nil
	}
}

// Resolve turns a restriction node into the type it denotes. Resolved types
// are returned as they are.
func (s *Scope) Resolve(node types.Node) (types.Type, error) {
	switch node := node.(type) {
	case nil:
		return nil, nil
	case types.Type:
		return node, nil
	case *types.Ident:
		t := s.lookup(node)
		if t == nil {
			return nil, ilerr.New(ilerr.NewUnknownType{Positioner: ast.Range{}, Name: node.String()})
		}
		return t, nil
	case *types.IdentUnion:
		members := make([]types.Type, 0, len(node.Idents))
		for _, ident := range node.Idents {
			member, err := s.Resolve(ident)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		}
		return types.NewUnion(members...), nil
	case *types.NewGenericClass:
		generic := s.lookup(node.Name)
		if generic == nil {
			return nil, ilerr.New(ilerr.NewUnknownType{Positioner: ast.Range{}, Name: node.Name.String()})
		}
		args := make([]types.Type, 0, len(node.TypeVars))
		for _, typeVar := range node.TypeVars {
			arg, err := s.Resolve(typeVar)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		instance, err := s.instantiate(generic, args, ast.Range{})
		if err != nil {
			return nil, err
		}
		return instance, nil
	default:
		panic(fmt.Sprintf("unexpected node %T", node))
	}
}

// ResolveType parses src and resolves it in s. Unlike restrictions, type
// expressions may name hierarchy types, written with a trailing +.
func (s *Scope) ResolveType(src string) (types.Type, error) {
	term, err := parser.ParseTerm(src)
	if err != nil {
		return nil, err
	}
	return s.ResolveTerm(term)
}

func (s *Scope) ResolveTerm(term *parser.Term) (types.Type, error) {
	switch {
	case term.Self:
		return types.Self, nil
	case term.IsUnion():
		members := make([]types.Type, 0, len(term.Alts))
		for _, alt := range term.Alts {
			member, err := s.ResolveTerm(alt)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		}
		return types.NewUnion(members...), nil
	}

	named := s.lookup(term.Ident())
	if named == nil {
		return nil, ilerr.New(ilerr.NewUnknownType{Positioner: term.Range, Name: term.Ident().String()})
	}
	if len(term.Args) > 0 {
		args := make([]types.Type, 0, len(term.Args))
		for _, argTerm := range term.Args {
			arg, err := s.ResolveTerm(argTerm)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		instance, err := s.instantiate(named, args, term.Range)
		if err != nil {
			return nil, err
		}
		named = instance
	}
	if term.Cone {
		return named.Hierarchy(), nil
	}
	return named, nil
}

func (s *Scope) instantiate(generic *types.NamedType, args []types.Type, at ast.Range) (*types.NamedType, error) {
	if !generic.IsGeneric() || generic.Origin() != nil {
		return nil, ilerr.New(ilerr.NewNotGeneric{Positioner: at, Name: generic.FullName()})
	}
	if len(args) != len(generic.Params()) {
		return nil, ilerr.New(ilerr.NewTypeArity{
			Positioner: at,
			Name:       generic.FullName(),
			Expected:   len(generic.Params()),
			Found:      len(args),
		})
	}
	return s.program.Instantiate(generic, args...), nil
}
