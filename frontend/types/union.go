package types

import (
	"slices"
	"strings"
)

// UnionType is a set of alternative types. Members are never unions
// themselves and are never nil; member order carries no meaning.
type UnionType struct {
	types []Type
}

// NewUnion flattens nested unions and drops nil members and duplicate
// (identical) members. It returns nil when nothing is left and the single
// remaining member when there is exactly one, so the result is only a
// *UnionType when it has two or more members.
func NewUnion(members ...Type) Type {
	flat := make([]Type, 0, len(members))
	var add func(Type)
	add = func(t Type) {
		if IsNil(t) {
			return
		}
		if u, ok := t.(*UnionType); ok {
			for _, m := range u.types {
				add(m)
			}
			return
		}
		if slices.Contains(flat, t) {
			return
		}
		flat = append(flat, t)
	}
	for _, m := range members {
		add(m)
	}

	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return &UnionType{types: flat}
	}
}

// Types returns the members of the union
func (t *UnionType) Types() []Type { return t.types }

func (t *UnionType) String() string {
	names := make([]string, len(t.types))
	for i, m := range t.types {
		names[i] = m.String()
	}
	return strings.Join(names, " | ")
}
