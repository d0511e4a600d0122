// Package overload keeps the overloads of a method ordered from most to least
// specific and picks the overload a call resolves to.
package overload

import (
	"slices"
	"sync"

	"github.com/cottand/overload/frontend/restrict"
	"github.com/cottand/overload/frontend/types"
	"github.com/cottand/overload/internal/log"
)

var logger = log.DefaultLogger.With("section", "overload")

// Set is the list of overloads of one method, most specific first.
// It is safe for concurrent use.
type Set struct {
	name   string
	owner  restrict.Owner
	merger restrict.Merger

	mu   sync.RWMutex
	defs []*types.Def
}

func NewSet(name string, owner restrict.Owner, merger restrict.Merger) *Set {
	return &Set{
		name:   name,
		owner:  owner,
		merger: merger,
	}
}

func (s *Set) Name() string { return s.name }

// Owner is the context the overloads are compared and resolved in
func (s *Set) Owner() restrict.Owner { return s.owner }

// Defs returns a snapshot of the overloads, most specific first
func (s *Set) Defs() []*types.Def {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.defs)
}

func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.defs)
}

// Add inserts def before the first overload of the same arity it is strictly
// more specific than. A def whose parameters are written exactly like an
// existing overload's redefines it: the old def is replaced and returned.
func (s *Set) Add(def *types.Def) (replaced *types.Def) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.defs {
		if len(existing.Args) != len(def.Args) {
			continue
		}
		if sameRestrictions(existing, def) {
			s.defs[i] = def
			logger.Debug("overload redefined", "method", s.name, "def", def)
			return existing
		}
		if restrict.DefIsRestrictionOf(def, existing, s.owner) && !restrict.DefIsRestrictionOf(existing, def, s.owner) {
			s.defs = slices.Insert(s.defs, i, def)
			logger.Debug("overload added", "method", s.name, "def", def, "before", existing)
			return nil
		}
	}
	s.defs = append(s.defs, def)
	logger.Debug("overload added", "method", s.name, "def", def)
	return nil
}

func sameRestrictions(a, b *types.Def) bool {
	return slices.EqualFunc(a.Args, b.Args, func(x, y types.Arg) bool {
		return types.Equal(x.Constraint(), y.Constraint())
	})
}
