package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var RankCmd = &cobra.Command{
	Use:          "rank METHOD",
	Short:        "List the overloads of a method, most specific first",
	RunE:         runRank,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var rankFlags *worldFlags

func init() {
	rankFlags = addWorldFlags(RankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	au := rankFlags.setup()
	p, err := rankFlags.load()
	if err != nil {
		return err
	}
	s, ok := p.Method(args[0])
	if !ok {
		return errors.Errorf("no method named %s, declared methods are %v", args[0], p.Methods())
	}
	for i, def := range s.Defs() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", au.Faint(fmt.Sprintf("%2d.", i+1)), def); err != nil {
			return err
		}
	}
	return nil
}
