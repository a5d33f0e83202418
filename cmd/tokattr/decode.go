package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tokattr/internal/attrfmt"
	"tokattr/internal/batch"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] VALUE...",
	Short: "Unpack values into their fields",
	Long:  `Decode prints every field of each packed value. Values accept decimal, 0x, 0b and 0o forms.`,
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	decodeCmd.Flags().Int("jobs", 0, "max parallel parsers (0=auto)")
	decodeCmd.Flags().String("file", "", "read whitespace-separated values from file (- for stdin)")
	decodeCmd.Flags().Bool("binary", false, "also print the 32-bit binary form")
}

func runDecode(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	binary, err := cmd.Flags().GetBool("binary")
	if err != nil {
		return fmt.Errorf("failed to get binary flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	timer, report, err := commandTimer(cmd)
	if err != nil {
		return err
	}

	inputs := args
	if file != "" {
		done := timer.Track("read")
		fromFile, err := readValueFile(file)
		done(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		inputs = append(append([]string(nil), args...), fromFile...)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no values given")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	done := timer.Track("parse")
	values, err := batch.ParseAll(cmd.Context(), inputs, jobs)
	done(strconv.Itoa(len(inputs)) + " values")
	if err != nil {
		return err
	}

	done = timer.Track("render")
	switch format {
	case "json":
		err = attrfmt.JSON(cmd.OutOrStdout(), values, cfg)
	default:
		color, cerr := useColor(cmd, os.Stdout)
		if cerr != nil {
			return cerr
		}
		err = attrfmt.Pretty(cmd.OutOrStdout(), values, cfg, attrfmt.PrettyOpts{Color: color, Binary: binary})
	}
	done("")
	if err != nil {
		return err
	}
	return report()
}
