package restrict

import (
	"testing"

	"github.com/cottand/overload/frontend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestrict(t *testing.T) {
	w := newWorld()

	testCases := []struct {
		name        string
		t, other    types.Type
		expected    types.Type
		expectedNil bool
	}{
		{name: "child by parent", t: w.dog, other: w.animal, expected: w.dog},
		{name: "parent by child", t: w.animal, other: w.dog, expectedNil: true},
		{name: "through second parent", t: w.robotDog, other: w.animal, expected: w.robotDog},
		{name: "by nothing", t: w.dog, other: nil, expected: w.dog},
		{name: "nothing", t: nil, other: w.dog, expectedNil: true},
		{name: "instance by wildcard", t: w.arrayOfInt, other: w.array, expected: w.arrayOfInt},
		{name: "instance by other instance", t: w.arrayOfInt, other: w.arrayOfStr, expectedNil: true},

		{name: "cone by descendant", t: w.animal.Hierarchy(), other: w.dog, expected: w.dog.Hierarchy()},
		{name: "cone by ancestor", t: w.dog.Hierarchy(), other: w.animal, expected: w.dog.Hierarchy()},
		{name: "cone by itself", t: w.dog.Hierarchy(), other: w.dog.Hierarchy(), expected: w.dog.Hierarchy()},
		{name: "cone by its base", t: w.dog.Hierarchy(), other: w.dog, expected: w.dog.Hierarchy()},
		{name: "cone by unrelated", t: w.dog.Hierarchy(), other: w.cat, expectedNil: true},
		{name: "cone by nothing", t: w.dog.Hierarchy(), other: nil, expected: w.dog.Hierarchy()},
		{name: "cone by smaller cone", t: w.animal.Hierarchy(), other: w.dog.Hierarchy(), expected: w.dog.Hierarchy()},
		{name: "cone by larger cone", t: w.dog.Hierarchy(), other: w.animal.Hierarchy(), expected: w.dog.Hierarchy()},
		{name: "cone by sibling cone", t: w.dog.Hierarchy(), other: w.cat.Hierarchy(), expectedNil: true},
		{name: "cone by union", t: w.animal.Hierarchy(), other: types.NewUnion(w.dog, w.integer), expected: w.dog.Hierarchy()},

		{name: "union keeps matching members", t: types.NewUnion(w.dog, w.integer), other: w.animal, expected: w.dog},
		{name: "union with nothing matching", t: types.NewUnion(w.str, w.integer), other: w.animal, expectedNil: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Restrict(tc.t, tc.other, w.owner, UnionMerger)
			if tc.expectedNil {
				assert.True(t, types.IsNil(result), "expected no match, got %v", result)
				return
			}
			require.False(t, types.IsNil(result))
			assert.Same(t, tc.expected, result, "expected %v, got %v", tc.expected, result)
		})
	}
}

func TestRestrictUnionJoinsSurvivors(t *testing.T) {
	w := newWorld()

	result := Restrict(types.NewUnion(w.dog, w.integer, w.cat), w.animal, w.owner, UnionMerger)
	union, ok := result.(*types.UnionType)
	require.True(t, ok, "expected a union, got %v", result)
	assert.Equal(t, []types.Type{w.dog, w.cat}, union.Types())
}

func TestRestrictUsesMerger(t *testing.T) {
	w := newWorld()

	var merged [][]types.Type
	merger := MergeFunc(func(ts ...types.Type) types.Type {
		merged = append(merged, ts)
		return w.animal
	})

	result := Restrict(types.NewUnion(w.dog, w.integer, w.cat), w.animal, w.owner, merger)
	assert.Same(t, w.animal, result)
	require.Len(t, merged, 1)
	// members that did not survive never reach the merger
	assert.Equal(t, []types.Type{w.dog, w.cat}, merged[0])

	merged = nil
	assert.Nil(t, Restrict(types.NewUnion(w.str, w.integer), w.animal, w.owner, merger))
	assert.Empty(t, merged)
}

func TestRestrictSelf(t *testing.T) {
	w := newWorld()
	dogOwner := w.owner.withSelf(w.dog)

	assert.Same(t, w.dog, Restrict(types.Self, w.animal, dogOwner, UnionMerger))
	assert.Nil(t, Restrict(types.Self, w.cat, dogOwner, UnionMerger))
	assert.Same(t, w.puppy, Restrict(w.puppy, types.Self, dogOwner, UnionMerger))
	assert.Nil(t, Restrict(w.animal, types.Self, dogOwner, UnionMerger))

	// without a receiver self denotes nothing
	assert.Nil(t, Restrict(types.Self, w.animal, w.owner, UnionMerger))

	for _, self := range []types.Type{types.Self, types.NewUnion(w.dog, types.Self)} {
		owner := w.owner.withSelf(self)
		assert.Nil(t, Restrict(types.Self, w.animal, owner, UnionMerger))
		assert.Nil(t, Restrict(w.dog, types.Self, owner, UnionMerger))
		assert.Same(t, w.dog, Restrict(w.dog, w.animal, owner, UnionMerger))
	}
}

func TestRestrictIsRestrictionOfItsInput(t *testing.T) {
	w := newWorld()
	inputs := []types.Type{
		w.dog, w.animal, w.puppy, w.robotDog, w.integer, w.arrayOfInt,
		w.animal.Hierarchy(), w.dog.Hierarchy(), w.robot.Hierarchy(),
		types.NewUnion(w.dog, w.integer), types.NewUnion(w.cat, w.puppy, w.str),
	}
	restrictions := append([]types.Type{nil, w.array, types.NewUnion(w.puppy, w.robot)}, inputs...)

	for _, in := range inputs {
		for _, by := range restrictions {
			result := Restrict(in, by, w.owner, UnionMerger)
			if types.IsNil(result) {
				continue
			}
			assert.True(t, IsRestrictionOf(result, in, w.owner), "Restrict(%v, %v) = %v", in, by, result)
		}
	}
}
