//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cottand/overload/cmd"
)

func main() {
	js.Global().Set("CheckRestriction", js.FuncOf(cmd.CheckRestriction))
	js.Global().Set("MeetTypes", js.FuncOf(cmd.MeetTypes))

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}
