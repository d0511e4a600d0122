//go:build js && wasm

package cmd

import (
	"fmt"
	"syscall/js"

	"github.com/cottand/overload/frontend/types"
	"github.com/cottand/overload/program"
)

// CheckRestriction takes a YAML world and two types, and reports whether the
// first is a restriction of the second.
//
// output: { error: string } | { result: bool }
func CheckRestriction(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("checker panicked: " + fmt.Sprint(r))
		}
	}()
	if len(args) != 3 {
		return errorObj(fmt.Sprintf("expected 3 arguments, got %d", len(args)))
	}
	p, err := program.Parse([]byte(args[0].String()))
	if err != nil {
		return errorObj(err.Error())
	}
	ok, err := Check(p.Scope(nil), args[1].String(), args[2].String(), false)
	if err != nil {
		return errorObj(err.Error())
	}
	return js.ValueOf(map[string]any{"result": ok})
}

// MeetTypes takes a YAML world, a type and a restriction, and returns the
// type narrowed by the restriction.
//
// output: { error: string } | { result: string | null }
func MeetTypes(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("checker panicked: " + fmt.Sprint(r))
		}
	}()
	if len(args) != 3 {
		return errorObj(fmt.Sprintf("expected 3 arguments, got %d", len(args)))
	}
	p, err := program.Parse([]byte(args[0].String()))
	if err != nil {
		return errorObj(err.Error())
	}
	met, err := Meet(p.Scope(nil), args[1].String(), args[2].String())
	if err != nil {
		return errorObj(err.Error())
	}
	if types.IsNil(met) {
		return js.ValueOf(map[string]any{"result": nil})
	}
	return js.ValueOf(map[string]any{"result": met.String()})
}

func errorObj(err string) any {
	return js.ValueOf(map[string]any{"error": err})
}
