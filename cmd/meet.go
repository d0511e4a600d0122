package cmd

import (
	"fmt"

	"github.com/cottand/overload/frontend/types"
	"github.com/spf13/cobra"
)

var MeetCmd = &cobra.Command{
	Use:          "meet T R",
	Short:        "Narrow the type T by the restriction R",
	RunE:         runMeet,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

var meetFlags *worldFlags

func init() {
	meetFlags = addWorldFlags(MeetCmd)
}

func runMeet(cmd *cobra.Command, args []string) error {
	au := meetFlags.setup()
	p, err := meetFlags.load()
	if err != nil {
		return err
	}
	scope, err := meetFlags.scope(p)
	if err != nil {
		return err
	}
	met, err := Meet(scope, args[0], args[1])
	if err != nil {
		return err
	}
	if types.IsNil(met) {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), au.Red("no match"))
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), au.Bold(met.String()))
	return err
}
