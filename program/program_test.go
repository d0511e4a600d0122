package program

import (
	"os"
	"testing"

	"github.com/cottand/overload/frontend/ilerr"
	"github.com/cottand/overload/frontend/restrict"
	"github.com/cottand/overload/frontend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func loadZoo(t *testing.T) *Program {
	t.Helper()
	p, err := Load(os.DirFS("testdata"), "zoo.yaml")
	require.NoError(t, err)
	return p
}

func named(t *testing.T, p *Program, name string) *types.NamedType {
	t.Helper()
	typ, ok := p.Type(name)
	require.True(t, ok, "type %s not found", name)
	return typ
}

func TestLoad(t *testing.T) {
	p := loadZoo(t)

	assert.Equal(t, []string{
		"Animal", "Array", "Cat", "Dog", "Geo", "Geo::Circle", "Geo::Point", "Geo::Shape",
		"Hash", "Int", "Object", "Puppy", "String",
	}, p.TypeNames())
	assert.Equal(t, []string{"feed", "area"}, p.Methods())

	point := named(t, p, "Geo::Point")
	assert.Equal(t, []*types.NamedType{named(t, p, "Geo::Shape")}, point.Parents())
	assert.Same(t, named(t, p, "Geo"), point.Container())
	assert.Equal(t, []*types.NamedType{named(t, p, "Geo::Shape")}, named(t, p, "Geo::Circle").Parents())

	array := named(t, p, "Array")
	assert.True(t, array.IsGeneric())
	assert.Equal(t, []string{"T"}, array.Params())
	assert.True(t, named(t, p, "Geo").IsModule())
	assert.True(t, types.IsSubclassOf(named(t, p, "Puppy"), named(t, p, "Object")))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(os.DirFS("testdata"), "missing.yaml")
	assert.ErrorContains(t, err, "could not read program missing.yaml")
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("types:\n  - name: Dog\n    colour: brown\n"))
	assert.ErrorContains(t, err, "invalid program description")
	assert.Equal(t, ilerr.None, ilerr.CodeOf(err))
}

func TestBuildDeclarationOrderDoesNotMatter(t *testing.T) {
	p, err := Build(Description{Types: []TypeDecl{
		{Name: "Zoo::Puppy", Parents: []string{"Dog"}},
		{Name: "Zoo::Dog", Parents: []string{"::Animal"}},
		{Name: "Animal"},
		{Name: "Zoo", Module: true},
	}})
	require.NoError(t, err)
	assert.True(t, types.IsSubclassOf(named(t, p, "Zoo::Puppy"), named(t, p, "Animal")))
}

func buildErrors(t *testing.T, desc Description) []ilerr.IleError {
	t.Helper()
	_, err := Build(desc)
	require.Error(t, err)
	var errs *ilerr.Errors
	require.ErrorAs(t, err, &errs)
	return errs.Errors()
}

func TestBuildErrors(t *testing.T) {
	testCases := []struct {
		name    string
		desc    Description
		code    ilerr.ErrCode
		message string
	}{
		{
			name: "duplicate",
			desc: Description{Types: []TypeDecl{{Name: "Dog"}, {Name: "Dog"}}},
			code: ilerr.DuplicateType, message: "type 'Dog' is defined more than once",
		},
		{
			name: "cycle",
			desc: Description{Types: []TypeDecl{{Name: "A", Parents: []string{"B"}}, {Name: "B", Parents: []string{"A"}}}},
			code: ilerr.CyclicHierarchy, message: "type hierarchy contains a cycle: A < B < A",
		},
		{
			name: "self parent",
			desc: Description{Types: []TypeDecl{{Name: "A", Parents: []string{"A"}}}},
			code: ilerr.CyclicHierarchy, message: "type hierarchy contains a cycle: A < A",
		},
		{
			name: "unknown parent",
			desc: Description{Types: []TypeDecl{{Name: "Dog", Parents: []string{"Wolf"}}}},
			code: ilerr.UnknownType, message: "type 'Wolf' is not defined",
		},
		{
			name: "unknown container",
			desc: Description{Types: []TypeDecl{{Name: "Geo::Point"}}},
			code: ilerr.UnknownType, message: "type 'Geo' is not defined",
		},
		{
			name: "union parent",
			desc: Description{Types: []TypeDecl{{Name: "A"}, {Name: "B"}, {Name: "C", Parents: []string{"A | B"}}}},
			code: ilerr.Syntax, message: "parent 'A | B' must name a class, not a union",
		},
		{
			name: "malformed parent",
			desc: Description{Types: []TypeDecl{{Name: "A", Parents: []string{"B("}}}},
			code: ilerr.Syntax, message: "expected a type name, found end of input",
		},
		{
			name: "instance of a class",
			desc: Description{Types: []TypeDecl{{Name: "Int"}, {Name: "A", Parents: []string{"Int(Int)"}}}},
			code: ilerr.NotGeneric, message: "type 'Int' is not generic",
		},
		{
			name: "malformed signature",
			desc: Description{
				Types:   []TypeDecl{{Name: "A"}},
				Methods: []MethodDecl{{Name: "m", Overloads: []string{"(a : )"}}},
			},
			code: ilerr.Syntax, message: "expected a type name, found ')'",
		},
		{
			name: "unknown method owner",
			desc: Description{
				Types:   []TypeDecl{{Name: "A"}},
				Methods: []MethodDecl{{Name: "m", Owner: "B", Overloads: []string{"(a)"}}},
			},
			code: ilerr.UnknownType, message: "type 'B' is not defined",
		},
		{
			name: "self receiver",
			desc: Description{
				Types:   []TypeDecl{{Name: "A"}},
				Methods: []MethodDecl{{Name: "m", Owner: "self", Overloads: []string{"(a : A)", "(a : self)"}}},
			},
			code: ilerr.InvalidReceiver, message: "receiver 'self' cannot be or contain self",
		},
		{
			name: "receiver union with self",
			desc: Description{
				Types:   []TypeDecl{{Name: "A"}},
				Methods: []MethodDecl{{Name: "m", Owner: "A | self", Overloads: []string{"(a : self)"}}},
			},
			code: ilerr.InvalidReceiver, message: "receiver 'A | self' cannot be or contain self",
		},
		{
			name: "method redeclared on another receiver",
			desc: Description{
				Types: []TypeDecl{{Name: "A"}, {Name: "B"}},
				Methods: []MethodDecl{
					{Name: "m", Owner: "A", Overloads: []string{"(a : self)"}},
					{Name: "m", Owner: "B", Overloads: []string{"(a)"}},
				},
			},
			code: ilerr.ConflictingReceiver, message: "method 'm' is declared with receiver 'A' and again with 'B'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := buildErrors(t, tc.desc)
			require.NotEmpty(t, errs)
			assert.Equal(t, tc.code, errs[0].Code())
			assert.Equal(t, tc.message, errs[0].Error())
		})
	}
}

func TestBuildReportsEveryError(t *testing.T) {
	errs := buildErrors(t, Description{Types: []TypeDecl{
		{Name: "Dog", Parents: []string{"Wolf"}},
		{Name: "Cat", Parents: []string{"Lion"}},
	}})
	assert.Len(t, errs, 2)
}

func TestRedefinedOverloadReplacesTheFirst(t *testing.T) {
	p, err := Build(Description{
		Types: []TypeDecl{{Name: "Dog"}},
		Methods: []MethodDecl{
			{Name: "bark", Overloads: []string{"(a : Dog)"}},
			{Name: "bark", Overloads: []string{"(other : Dog)", "(a)"}},
		},
	})
	require.NoError(t, err)
	s, ok := p.Method("bark")
	require.True(t, ok)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "bark(other : Dog)", s.Defs()[0].String())
	assert.Equal(t, []string{"bark"}, p.Methods())
}

func TestInstantiateIsMemoized(t *testing.T) {
	p := loadZoo(t)
	scope := p.Scope(nil)

	first, err := scope.ResolveType("Array(Int)")
	require.NoError(t, err)
	second, err := scope.ResolveType("Array(Int)")
	require.NoError(t, err)
	other, err := scope.ResolveType("Array(String)")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, p.Instances())
	assert.Equal(t, "Array(Int)", first.String())

	instance := first.(*types.NamedType)
	assert.Same(t, named(t, p, "Array"), instance.Origin())
	assert.True(t, types.IsSubclassOf(instance, named(t, p, "Object")))
}

func TestReceiverScope(t *testing.T) {
	p := loadZoo(t)

	top, err := p.ReceiverScope("")
	require.NoError(t, err)
	assert.Nil(t, top.Self())

	shape, err := p.ReceiverScope("Geo::Shape")
	require.NoError(t, err)
	assert.Same(t, named(t, p, "Geo::Shape"), shape.Self())

	_, err = p.ReceiverScope("self")
	assert.Equal(t, ilerr.InvalidReceiver, ilerr.CodeOf(err))

	_, err = p.ReceiverScope("Wolf")
	assert.Equal(t, ilerr.UnknownType, ilerr.CodeOf(err))
}

func TestScopeBoundToSelfTerminates(t *testing.T) {
	p := loadZoo(t)
	animal := named(t, p, "Animal")
	scope := p.Scope(types.Self)

	assert.False(t, restrict.IsRestrictionOf(types.Self, animal, scope))
	assert.True(t, restrict.IsRestrictionOf(types.Self, types.Self, scope))
	assert.Nil(t, restrict.Restrict(types.Self, animal, scope, p))
}
