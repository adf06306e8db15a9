package main

import (
	"fmt"

	"github.com/phroun/hashlife/pattern"
	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the builtin patterns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range pattern.BuiltinNames() {
			p, err := pattern.Builtin(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-12s %3dx%-3d %4d cells\n", name, p.Cols, p.Rows, p.Population())
		}
		return nil
	},
}
