package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tokattr/internal/attrfmt"
	"tokattr/internal/batch"
)

var previewCmd = &cobra.Command{
	Use:   "preview [flags] VALUE...",
	Short: "Render sample text in each value's colors and font style",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().String("text", attrfmt.DefaultSample, "sample text to render")
}

func runPreview(cmd *cobra.Command, args []string) error {
	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return fmt.Errorf("failed to get text flag: %w", err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	values, err := batch.ParseAll(cmd.Context(), args, 0)
	if err != nil {
		return err
	}
	color, err := useColor(cmd, os.Stdout)
	if err != nil {
		return err
	}
	return attrfmt.Preview(cmd.OutOrStdout(), values, cfg, attrfmt.PreviewOpts{Color: color, Text: text})
}
