package restrict

import (
	"github.com/cottand/overload/frontend/types"
	"github.com/cottand/overload/internal/log"
)

var logger = log.DefaultLogger.With("section", "restrict")

// Owner is the enclosing type context of a comparison. It resolves
// identifiers written in signatures and gives meaning to types.Self.
//
// Implementations must be safe for concurrent use if comparisons run in
// parallel; program.Scope is.
type Owner interface {
	// LookupType resolves ident, returning nil when no such type exists
	LookupType(ident *types.Ident) types.Type
	// Self is the type types.Self stands for, or nil when the owner has no
	// receiver
	Self() types.Type
	// IsRestrictionOf reports whether the owner's own type is a restriction of
	// target. Implementations normally answer with
	// IsRestrictionOf(o.Self(), target, owner).
	IsRestrictionOf(target types.Node, owner Owner) bool
}

// Merger joins types into their least upper bound. It must ignore nil inputs
// and return nil only when given nothing but nils.
type Merger interface {
	Merge(ts ...types.Type) types.Type
}

type MergeFunc func(ts ...types.Type) types.Type

func (f MergeFunc) Merge(ts ...types.Type) types.Type { return f(ts...) }

// UnionMerger joins types by building a flat union of them, without any
// simplification beyond removing identical members.
var UnionMerger Merger = MergeFunc(types.NewUnion)
