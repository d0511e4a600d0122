// Package ast holds source positions shared by the parser and error reporting.
// Positions are byte offsets into the text of a single type expression or
// signature, starting at 0.
package ast

import (
	"fmt"
)

// Positioner allows finding the location in the original source text.
type Positioner interface {
	Pos() int // offset of first character belonging to the node
	End() int // offset of first character immediately after the node
}

// Range represents a range of offsets in the source text.
type Range struct {
	PosStart int
	PosEnd   int
}

// Pos returns the starting offset of the range.
func (r Range) Pos() int { return r.PosStart }

// End returns the ending offset of the range.
func (r Range) End() int { return r.PosEnd }

func (r Range) String() string {
	if r.PosStart == r.PosEnd {
		return fmt.Sprintf("%d", r.PosStart)
	}
	return fmt.Sprintf("%d-%d", r.PosStart, r.PosEnd)
}

// RangeBetween creates a Range between two Positioners.
func RangeBetween(fst, snd Positioner) Range {
	return Range{fst.Pos(), snd.End()}
}

// RangeOf creates a Range from a Positioner.
func RangeOf(p Positioner) Range {
	if p == nil {
		return Range{}
	}
	if asRange, ok := p.(Range); ok {
		return asRange
	}
	return Range{p.Pos(), p.End()}
}
