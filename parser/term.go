package parser

import (
	"strings"

	"github.com/cottand/overload/frontend/ast"
	"github.com/cottand/overload/frontend/ilerr"
	"github.com/cottand/overload/frontend/types"
)

// Term is a parsed type expression. Exactly one shape applies:
//   - Self: the keyword self
//   - Alts: a union, each alternative a Term of its own
//   - Names: a possibly qualified name, with optional type Args and an
//     optional trailing + (Cone) for a hierarchy type
type Term struct {
	ast.Range
	Self   bool
	Global bool
	Names  []string
	Args   []*Term
	Cone   bool
	Alts   []*Term
}

func (t *Term) IsUnion() bool { return len(t.Alts) > 0 }

// Ident returns the name of t as a syntactic identifier
func (t *Term) Ident() *types.Ident {
	return &types.Ident{Names: t.Names, Global: t.Global}
}

func (t *Term) String() string {
	switch {
	case t.Self:
		return "self"
	case t.IsUnion():
		alts := make([]string, len(t.Alts))
		for i, alt := range t.Alts {
			alts[i] = alt.String()
		}
		return strings.Join(alts, " | ")
	}
	sb := strings.Builder{}
	sb.WriteString(t.Ident().String())
	if len(t.Args) > 0 {
		args := make([]string, len(t.Args))
		for i, arg := range t.Args {
			args[i] = arg.String()
		}
		sb.WriteString("(")
		sb.WriteString(strings.Join(args, ", "))
		sb.WriteString(")")
	}
	if t.Cone {
		sb.WriteString("+")
	}
	return sb.String()
}

// Restriction converts t into the unresolved node a method signature holds.
// Hierarchy types cannot be written in restrictions, and only plain names
// may be joined into a union.
func (t *Term) Restriction() (types.Node, error) {
	switch {
	case t.Self:
		return types.Self, nil
	case t.Cone:
		return nil, ilerr.New(ilerr.NewConeNotAllowed{Positioner: t.Range, Name: t.Ident().String()})
	case t.IsUnion():
		union := &types.IdentUnion{Idents: make([]*types.Ident, 0, len(t.Alts))}
		for _, alt := range t.Alts {
			if alt.Self || alt.Cone || len(alt.Args) > 0 {
				return nil, ilerr.New(ilerr.NewSyntax{
					Positioner:    alt.Range,
					ParserMessage: "only plain type names can be joined with '|' in a restriction",
				})
			}
			union.Idents = append(union.Idents, alt.Ident())
		}
		return union, nil
	case len(t.Args) > 0:
		generic := &types.NewGenericClass{Name: t.Ident(), TypeVars: make([]types.Node, 0, len(t.Args))}
		for _, arg := range t.Args {
			node, err := arg.Restriction()
			if err != nil {
				return nil, err
			}
			generic.TypeVars = append(generic.TypeVars, node)
		}
		return generic, nil
	default:
		return t.Ident(), nil
	}
}

// Param is one parameter of a parsed signature. Term is nil for an
// unrestricted parameter.
type Param struct {
	ast.Range
	Name string
	Term *Term
}
