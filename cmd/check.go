package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var CheckCmd = &cobra.Command{
	Use:   "check A B",
	Short: "Report whether A is a restriction of B",
	Long: `Report whether the type A is at least as specific as B, that is, whether
every value accepted by A is accepted by B.`,
	RunE:         runCheck,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

var (
	checkFlags     *worldFlags
	checkSyntactic *bool
)

func init() {
	checkFlags = addWorldFlags(CheckCmd)
	checkSyntactic = CheckCmd.Flags().Bool("syntactic", false, "compare A and B as written in a signature, without resolving them")
}

func runCheck(cmd *cobra.Command, args []string) error {
	au := checkFlags.setup()
	p, err := checkFlags.load()
	if err != nil {
		return err
	}
	scope, err := checkFlags.scope(p)
	if err != nil {
		return err
	}
	ok, err := Check(scope, args[0], args[1], *checkSyntactic)
	if err != nil {
		return err
	}
	if ok {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), au.Green("true"))
	} else {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), au.Red("false"))
	}
	return err
}
