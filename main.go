//go:build !(js || wasm)

package main

import (
	"os"

	"github.com/cottand/overload/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "overload [subcommand]",
	Short:        "overload ranks method overloads by how specific their parameter types are",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.CheckCmd)
	rootCmd.AddCommand(cmd.MeetCmd)
	rootCmd.AddCommand(cmd.RankCmd)
	rootCmd.AddCommand(cmd.CallCmd)
	rootCmd.AddCommand(cmd.DumpCmd)
}
