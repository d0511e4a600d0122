package cmd

import (
	"github.com/cottand/overload/frontend/types"
	"github.com/cottand/overload/program"
	"github.com/cottand/overload/util"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var DumpCmd = &cobra.Command{
	Use:          "dump",
	Short:        "Print the types and methods of a world as loaded",
	RunE:         runDump,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var dumpFlags *worldFlags

func init() {
	dumpFlags = addWorldFlags(DumpCmd)
}

// TypeSummary is the printable form of a loaded type
type TypeSummary struct {
	Name      string
	Kind      string
	Params    []string
	Ancestors []string
}

type MethodSummary struct {
	Name      string
	Overloads []string
}

type WorldSummary struct {
	Types   []TypeSummary
	Methods []MethodSummary
}

// Summarize lists every type of p with its ancestors, and every method with
// its overloads in specificity order
func Summarize(p *program.Program) WorldSummary {
	var summary WorldSummary
	for t := range p.Types() {
		ts := TypeSummary{Name: t.FullName(), Kind: "class", Params: t.Params()}
		switch {
		case t.IsModule():
			ts.Kind = "module"
		case t.IsGeneric():
			ts.Kind = "generic"
		}
		for ancestor := range util.MapIter(types.Ancestors(t), (*types.NamedType).FullName) {
			if ancestor != ts.Name {
				ts.Ancestors = append(ts.Ancestors, ancestor)
			}
		}
		summary.Types = append(summary.Types, ts)
	}
	for _, name := range p.Methods() {
		s, _ := p.Method(name)
		ms := MethodSummary{Name: name}
		for _, def := range s.Defs() {
			ms.Overloads = append(ms.Overloads, def.String())
		}
		summary.Methods = append(summary.Methods, ms)
	}
	return summary
}

func runDump(cmd *cobra.Command, _ []string) error {
	dumpFlags.setup()
	p, err := dumpFlags.load()
	if err != nil {
		return err
	}
	config := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	config.Fdump(cmd.OutOrStdout(), Summarize(p))
	return nil
}
