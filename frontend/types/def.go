package types

import "strings"

// Arg is a parameter of a Def. At most one of Type and Restriction is set;
// when neither is, the parameter is unrestricted.
type Arg struct {
	Name        string
	Type        Type
	Restriction Node
}

// Constraint returns Type when set and Restriction otherwise
func (a Arg) Constraint() Node {
	if !IsNil(a.Type) {
		return a.Type
	}
	if !IsNil(a.Restriction) {
		return a.Restriction
	}
	return nil
}

func (a Arg) String() string {
	c := a.Constraint()
	switch {
	case c == nil && a.Name == "":
		return "_"
	case c == nil:
		return a.Name
	case a.Name == "":
		return c.String()
	default:
		return a.Name + " : " + c.String()
	}
}

// Def is a method signature
type Def struct {
	Name string
	Args []Arg
}

func (d *Def) String() string {
	args := make([]string, len(d.Args))
	for i, arg := range d.Args {
		args[i] = arg.String()
	}
	return d.Name + "(" + strings.Join(args, ", ") + ")"
}
