package cmd

import (
	"fmt"

	"github.com/cottand/overload/frontend/types"
	"github.com/spf13/cobra"
)

var CallCmd = &cobra.Command{
	Use:   `call METHOD "(T1, T2)"...`,
	Short: "Resolve calls to a method with arguments of the given types",
	Long: `Resolve calls to a method. Each call is written as a parenthesised list of
argument types, and all calls are resolved concurrently.`,
	RunE:         runCall,
	Args:         cobra.MinimumNArgs(2),
	SilenceUsage: true,
}

var callFlags *worldFlags

func init() {
	callFlags = addWorldFlags(CallCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	au := callFlags.setup()
	p, err := callFlags.load()
	if err != nil {
		return err
	}
	scope, err := callFlags.scope(p)
	if err != nil {
		return err
	}

	name, sources := args[0], args[1:]
	calls := make([][]types.Type, len(sources))
	for i, src := range sources {
		if calls[i], err = ParseCall(scope, src); err != nil {
			return err
		}
	}

	resolutions, err := p.CallAll(cmd.Context(), name, calls)
	if err != nil {
		return describe(err, name)
	}
	out := cmd.OutOrStdout()
	for i, res := range resolutions {
		if res.Err != nil {
			_, err = fmt.Fprintf(out, "%s%s %s\n", name, sources[i], au.Red(describe(res.Err, sources[i]).Error()))
		} else {
			_, err = fmt.Fprintf(out, "%s%s %s %s\n", name, sources[i], au.Faint("=>"), au.Green(res.Match.Def.String()))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
