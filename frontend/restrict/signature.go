package restrict

import (
	"github.com/cottand/overload/frontend/types"
)

// DefIsRestrictionOf reports whether every parameter of self is at least as
// specific as the parameter of other at the same position.
//
// Only the positions both signatures have are compared: parameters past the
// end of the shorter signature are not inspected, so a longer signature can
// be a restriction of a shorter one and the other way around. Callers that
// rank overloads of different arity must separate them first, as
// overload.Set does.
func DefIsRestrictionOf(self, other *types.Def, owner Owner) bool {
	n := min(len(self.Args), len(other.Args))
	if len(self.Args) != len(other.Args) {
		logger.Debug("comparing signatures of different arity",
			"self", self, "other", other, "compared", n)
	}

	for i := range n {
		a := self.Args[i].Constraint()
		b := other.Args[i].Constraint()
		switch {
		case a == nil && b != nil:
			// an unrestricted parameter is never more specific than a restricted one
			return false
		case a == nil && b == nil:
			continue
		case b == nil:
			continue
		}
		if !IsRestrictionOf(a, b, owner) {
			return false
		}
	}
	return true
}
