package cmd

import (
	"github.com/cottand/overload/frontend/restrict"
	"github.com/cottand/overload/frontend/types"
	"github.com/cottand/overload/parser"
	"github.com/cottand/overload/program"
	"github.com/pkg/errors"
)

// Check reports whether the type written as a is a restriction of the one
// written as b. With syntactic set both are kept as unresolved restrictions,
// the way a method signature holds them, instead of being resolved first.
func Check(scope *program.Scope, a, b string, syntactic bool) (bool, error) {
	parse := func(src string) (types.Node, error) {
		if syntactic {
			return parser.ParseRestriction(src)
		}
		return scope.ResolveType(src)
	}
	candidate, err := parse(a)
	if err != nil {
		return false, describe(err, a)
	}
	target, err := parse(b)
	if err != nil {
		return false, describe(err, b)
	}
	return restrict.IsRestrictionOf(candidate, target, scope), nil
}

// Meet narrows the type written as t by the one written as restriction.
// The result is nil when they have nothing in common.
func Meet(scope *program.Scope, t, restriction string) (types.Type, error) {
	narrowed, err := scope.ResolveType(t)
	if err != nil {
		return nil, describe(err, t)
	}
	by, err := scope.ResolveType(restriction)
	if err != nil {
		return nil, describe(err, restriction)
	}
	return restrict.Restrict(narrowed, by, scope, scope.Program()), nil
}

// ParseCall resolves a parenthesised list of argument types such as
// (Dog, Array(Int))
func ParseCall(scope *program.Scope, src string) ([]types.Type, error) {
	params, err := parser.ParseParams(src)
	if err != nil {
		return nil, describe(err, src)
	}
	args := make([]types.Type, 0, len(params))
	for _, param := range params {
		if param.Term == nil {
			return nil, errors.Errorf("argument %q of %s has no type", param.Name, src)
		}
		arg, err := scope.ResolveTerm(param.Term)
		if err != nil {
			return nil, describe(err, src)
		}
		args = append(args, arg)
	}
	return args, nil
}
