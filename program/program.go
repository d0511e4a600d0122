// Package program holds a type world (the named types of a program with
// their containers and parents) together with the overloaded methods
// declared over it. It provides the collaborators the restriction algorithm
// needs: name lookup (Scope), ancestry (through types.NamedType) and the
// lattice join (Program.Merge).
package program

import (
	"context"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/cottand/overload/frontend/ast"
	"github.com/cottand/overload/frontend/ilerr"
	"github.com/cottand/overload/frontend/overload"
	"github.com/cottand/overload/frontend/types"
	"github.com/cottand/overload/internal/log"
	"github.com/cottand/overload/util"
)

var programLogger = log.DefaultLogger.With("section", "program")

// Program is a type world. Once loaded, its named types never change; the
// only state that grows afterwards is the cache of generic instances, which
// is guarded so a Program can serve concurrent lookups.
type Program struct {
	// types by full name, such as Geo::Point
	types map[string]*types.NamedType
	// order keeps declaration order for listings
	order []*types.NamedType

	methods      map[string]*overload.Set
	methodScopes map[string]*Scope
	methodOrder  []string

	instancesMu sync.Mutex
	instances   map[instanceKey]*types.NamedType
}

type instanceKey struct {
	generic *types.NamedType
	args    string
}

func newProgram() *Program {
	return &Program{
		types:        make(map[string]*types.NamedType),
		methods:      make(map[string]*overload.Set),
		methodScopes: make(map[string]*Scope),
		instances:    make(map[instanceKey]*types.NamedType),
	}
}

func (p *Program) add(t *types.NamedType) {
	p.types[t.FullName()] = t
	p.order = append(p.order, t)
}

// Type returns the type with the given full name
func (p *Program) Type(fullName string) (*types.NamedType, bool) {
	t, ok := p.types[fullName]
	return t, ok
}

// Types yields every declared type in declaration order
func (p *Program) Types() iter.Seq[*types.NamedType] {
	return slices.Values(p.order)
}

// Method returns the overloads declared under name
func (p *Program) Method(name string) (*overload.Set, bool) {
	s, ok := p.methods[name]
	return s, ok
}

// Call resolves a call to the method name with arguments of the given types
func (p *Program) Call(name string, args ...types.Type) (*overload.Match, error) {
	s, ok := p.methods[name]
	if !ok {
		return nil, ilerr.New(ilerr.NewNoOverloadMatch{Positioner: ast.Range{}, Name: name, Args: util.Strings(args)})
	}
	return s.Lookup(p.methodScopes[name], args...)
}

// CallAll resolves many calls to the method name concurrently, see
// overload.ResolveAll
func (p *Program) CallAll(ctx context.Context, name string, calls [][]types.Type) ([]overload.Resolution, error) {
	s, ok := p.methods[name]
	if !ok {
		return nil, ilerr.New(ilerr.NewNoOverloadMatch{Positioner: ast.Range{}, Name: name})
	}
	return overload.ResolveAll(ctx, s, p.methodScopes[name], calls)
}

// Methods returns the names of all declared methods in declaration order
func (p *Program) Methods() []string {
	return slices.Clone(p.methodOrder)
}

// Instantiate binds the parameters of generic to args. Equal instantiations
// return the identical type, which identity-based comparisons rely on.
func (p *Program) Instantiate(generic *types.NamedType, args ...types.Type) *types.NamedType {
	keyParts := make([]string, len(args))
	for i, arg := range args {
		keyParts[i] = fmt.Sprintf("%p", arg)
	}
	key := instanceKey{generic: generic, args: strings.Join(keyParts, ",")}

	p.instancesMu.Lock()
	defer p.instancesMu.Unlock()
	if instance, ok := p.instances[key]; ok {
		return instance
	}
	instance := types.NewInstance(generic, args...)
	p.instances[key] = instance
	programLogger.Debug("instantiated generic", "type", instance)
	return instance
}

// Instances returns the number of distinct generic instances created so far
func (p *Program) Instances() int {
	p.instancesMu.Lock()
	defer p.instancesMu.Unlock()
	return len(p.instances)
}

// Scope returns the lookup context of a method whose receiver is self. A nil
// self gives the top-level scope, where types.Self means nothing.
func (p *Program) Scope(self types.Type) *Scope {
	return &Scope{program: p, self: self}
}

// TypeNames returns the full names of every declared type, sorted
func (p *Program) TypeNames() []string {
	return slices.Sorted(maps.Keys(p.types))
}
