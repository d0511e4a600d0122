package overload

import (
	"context"
	"runtime"

	"github.com/cottand/overload/frontend/ast"
	"github.com/cottand/overload/frontend/ilerr"
	"github.com/cottand/overload/frontend/restrict"
	"github.com/cottand/overload/frontend/types"
	"github.com/cottand/overload/util"
	"golang.org/x/sync/errgroup"
)

// Resolver turns the restriction written on a parameter into the type
// arguments are narrowed by. program.Scope implements it.
type Resolver interface {
	Resolve(node types.Node) (types.Type, error)
}

// Match is the overload a call resolved to, with every argument narrowed by
// the restriction of its parameter.
type Match struct {
	Def  *types.Def
	Args []types.Type
}

// Lookup returns the most specific overload that admits args.
//
// An overload admits a call of its own arity when every restricted
// parameter has a non-nil meet with its argument; unrestricted parameters
// take their argument as it is. When another admitting overload is neither
// less specific than the chosen one nor more specific, the call is
// ambiguous.
func (s *Set) Lookup(resolver Resolver, args ...types.Type) (*Match, error) {
	defs := s.Defs()

	var matches []*Match
	for _, def := range defs {
		m, err := s.match(resolver, def, args)
		if err != nil {
			return nil, err
		}
		if m != nil {
			matches = append(matches, m)
		}
	}

	argNames := util.Strings(args)
	if len(matches) == 0 {
		return nil, ilerr.New(ilerr.NewNoOverloadMatch{
			Positioner: ast.Range{},
			Name:       s.name,
			Args:       argNames,
		})
	}

	best := matches[0]
	for _, other := range matches[1:] {
		if !restrict.DefIsRestrictionOf(best.Def, other.Def, s.owner) {
			return nil, ilerr.New(ilerr.NewAmbiguousOverload{
				Positioner: ast.Range{},
				Name:       s.name,
				Args:       argNames,
				Candidates: []string{best.Def.String(), other.Def.String()},
			})
		}
	}
	logger.Debug("call resolved", "method", s.name, "args", argNames, "def", best.Def)
	return best, nil
}

func (s *Set) match(resolver Resolver, def *types.Def, args []types.Type) (*Match, error) {
	if len(def.Args) != len(args) {
		return nil, nil
	}
	narrowed := make([]types.Type, len(args))
	for i, param := range def.Args {
		constraint := param.Constraint()
		if constraint == nil {
			narrowed[i] = args[i]
			continue
		}
		restriction, err := resolver.Resolve(constraint)
		if err != nil {
			return nil, err
		}
		narrowed[i] = restrict.Restrict(args[i], restriction, s.owner, s.merger)
		if types.IsNil(narrowed[i]) {
			return nil, nil
		}
	}
	return &Match{Def: def, Args: narrowed}, nil
}

// Resolution is the outcome of resolving one call: exactly one of Match and
// Err is set.
type Resolution struct {
	Match *Match
	Err   error
}

// ResolveAll looks up every call in calls against s concurrently. Failing
// lookups are reported per call; the returned error is only set when ctx is
// done before every call was resolved.
func ResolveAll(ctx context.Context, s *Set, resolver Resolver, calls [][]types.Type) ([]Resolution, error) {
	results := make([]Resolution, len(calls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, args := range calls {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := s.Lookup(resolver, args...)
			results[i] = Resolution{Match: m, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
