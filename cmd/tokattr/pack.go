package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tokattr/internal/pack"
)

var packCmd = &cobra.Command{
	Use:   "pack [flags] FILE...",
	Short: "Store token-line text files as binary tables",
	Long: `Pack reads files of "start:value" pairs, one source line per text line,
and stores each as a binary token table keyed by the digest of its content.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPack,
}

func init() {
	packCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	packCmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
}

func runPack(cmd *cobra.Command, args []string) error {
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	quiet, err := quietFlag(cmd)
	if err != nil {
		return err
	}
	timer, report, err := commandTimer(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	req := &pack.Request{Files: args, Store: st, Jobs: jobs}
	done := timer.Track("pack")
	var res pack.Result
	if mode.enabled() {
		res, err = runPackWithUI(cmd.Context(), "packing", req)
	} else {
		res, err = pack.Run(cmd.Context(), req)
	}
	done(strconv.Itoa(len(args)) + " files")

	useCol, cerr := useColor(cmd, os.Stdout)
	if cerr != nil {
		return cerr
	}
	if perr := printPackResult(cmd.OutOrStdout(), res, quiet, useCol); perr != nil {
		return perr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if failed := len(res.Failed()); failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(res.Entries))
	}
	if err != nil {
		return err
	}
	return report()
}

// printPackResult writes one line per stored file. In quiet mode only the
// digests are printed.
func printPackResult(w io.Writer, res pack.Result, quiet, useColor bool) error {
	ok := color.New(color.FgGreen)
	cached := color.New(color.FgHiBlack)
	failed := color.New(color.FgRed)
	for _, c := range []*color.Color{ok, cached, failed} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	for _, e := range res.Entries {
		if e.Err != nil {
			if quiet {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s %s: %v\n", failed.Sprint("error "), e.File, e.Err); err != nil {
				return err
			}
			continue
		}
		if quiet {
			if _, err := fmt.Fprintln(w, e.Digest); err != nil {
				return err
			}
			continue
		}
		status := ok.Sprint("stored")
		if e.Cached {
			status = cached.Sprint("cached")
		}
		if _, err := fmt.Fprintf(w, "%s %s %s (%d lines, %d tokens)\n", status, e.Digest, e.File, e.Lines, e.Tokens); err != nil {
			return err
		}
	}
	return nil
}

// uiMode selects the pack progress view.
type uiMode uint8

const (
	uiAuto uiMode = iota
	uiOn
	uiOff
)

func readUIMode(value string) (uiMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return uiAuto, nil
	case "on":
		return uiOn, nil
	case "off":
		return uiOff, nil
	}
	return uiAuto, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// enabled reports whether the progress view runs; auto needs a terminal on
// stdout.
func (m uiMode) enabled() bool {
	switch m {
	case uiOn:
		return true
	case uiOff:
		return false
	}
	return isTerminal(os.Stdout)
}
