package restrict

import (
	"github.com/cottand/overload/frontend/types"
)

// testOwner resolves names from a fixed table
type testOwner struct {
	names map[string]types.Type
	self  types.Type
}

func (o *testOwner) LookupType(ident *types.Ident) types.Type {
	t, ok := o.names[ident.String()]
	if !ok {
		return nil
	}
	return t
}

func (o *testOwner) Self() types.Type { return o.self }

func (o *testOwner) IsRestrictionOf(target types.Node, owner Owner) bool {
	return IsRestrictionOf(o.self, target, owner)
}

// withSelf returns a copy of o whose receiver is self
func (o *testOwner) withSelf(self types.Type) *testOwner {
	return &testOwner{names: o.names, self: self}
}

type world struct {
	animal, dog, cat, puppy *types.NamedType
	robot, robotDog         *types.NamedType
	integer, str            *types.NamedType
	array, hash             *types.NamedType
	arrayOfInt, arrayOfStr  *types.NamedType

	owner *testOwner
}

func newWorld() world {
	w := world{}
	w.animal = types.NewClass("Animal", nil)
	w.dog = types.NewClass("Dog", nil, w.animal)
	w.cat = types.NewClass("Cat", nil, w.animal)
	w.puppy = types.NewClass("Puppy", nil, w.dog)
	w.robot = types.NewClass("Robot", nil)
	w.robotDog = types.NewClass("RobotDog", nil, w.robot, w.dog)
	w.integer = types.NewClass("Int", nil)
	w.str = types.NewClass("String", nil)
	w.array = types.NewGeneric("Array", nil, []string{"T"})
	w.hash = types.NewGeneric("Hash", nil, []string{"K", "V"})
	w.arrayOfInt = types.NewInstance(w.array, w.integer)
	w.arrayOfStr = types.NewInstance(w.array, w.str)

	names := map[string]types.Type{}
	for _, t := range []*types.NamedType{w.animal, w.dog, w.cat, w.puppy, w.robot, w.robotDog, w.integer, w.str, w.array, w.hash} {
		names[t.Name()] = t
	}
	w.owner = &testOwner{names: names}
	return w
}

func ident(name string) *types.Ident { return types.NewIdent(name) }

func identUnion(names ...string) *types.IdentUnion {
	u := &types.IdentUnion{}
	for _, name := range names {
		u.Idents = append(u.Idents, ident(name))
	}
	return u
}

func generic(name string, args ...types.Node) *types.NewGenericClass {
	return &types.NewGenericClass{Name: ident(name), TypeVars: args}
}
