package main

import (
	"github.com/spf13/cobra"

	"tokattr/internal/attrfmt"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the bit layout of a packed value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return attrfmt.Layout(cmd.OutOrStdout())
	},
}
