package cmd

import (
	"testing"

	"github.com/cottand/overload/frontend/types"
	"github.com/cottand/overload/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const world = `
types:
  - name: Animal
  - name: Dog
    parents: [Animal]
  - name: Cat
    parents: [Animal]
  - name: Box
    params: [T]
methods:
  - name: pet
    overloads: ["(a : Animal)", "(d : Dog)"]
`

func loadWorld(t *testing.T) *program.Program {
	p, err := program.Parse([]byte(world))
	require.NoError(t, err)
	return p
}

func TestCheck(t *testing.T) {
	scope := loadWorld(t).Scope(nil)

	ok, err := Check(scope, "Dog", "Animal", false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Check(scope, "Box(Dog)", "Box(Animal)", true)
	require.NoError(t, err)
	assert.True(t, ok)

	// resolved instances of a generic are unrelated unless identical
	ok, err = Check(scope, "Box(Dog)", "Box(Animal)", false)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Check(scope, "Dog", "Animal(", false)
	assert.ErrorContains(t, err, "(E001) expected a type name, found end of input\n\tAnimal(\n\t       ^")
}

func TestMeet(t *testing.T) {
	scope := loadWorld(t).Scope(nil)

	met, err := Meet(scope, "Animal+", "Cat")
	require.NoError(t, err)
	assert.Equal(t, "Cat+", met.String())

	met, err = Meet(scope, "Dog", "Cat")
	require.NoError(t, err)
	assert.True(t, types.IsNil(met))
}

func TestParseCall(t *testing.T) {
	scope := loadWorld(t).Scope(nil)

	args, err := ParseCall(scope, "(Dog, x : Box(Cat), Animal+)")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dog", "Box(Cat)", "Animal+"}, []string{args[0].String(), args[1].String(), args[2].String()})

	_, err = ParseCall(scope, "(x)")
	assert.ErrorContains(t, err, `argument "x" of (x) has no type`)
}

func TestSummarize(t *testing.T) {
	summary := Summarize(loadWorld(t))

	require.Len(t, summary.Types, 4)
	assert.Equal(t, TypeSummary{Name: "Dog", Kind: "class", Ancestors: []string{"Animal"}}, summary.Types[1])
	assert.Equal(t, TypeSummary{Name: "Box", Kind: "generic", Params: []string{"T"}}, summary.Types[3])
	assert.Equal(t, []MethodSummary{{Name: "pet", Overloads: []string{"pet(d : Dog)", "pet(a : Animal)"}}}, summary.Methods)
}
