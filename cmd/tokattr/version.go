package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tokattr/internal/attrs"
	"tokattr/internal/version"
)

// buildReport is what `tokattr version` prints. Empty optional fields were
// not requested.
type buildReport struct {
	Tool          string `json:"tool"`
	Version       string `json:"version"`
	LayoutVersion uint16 `json:"layout_version"`
	GitCommit     string `json:"git_commit,omitempty"`
	BuildDate     string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show tokattr build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
	versionCmd.Flags().Bool("full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	hash, _ := cmd.Flags().GetBool("hash")
	date, _ := cmd.Flags().GetBool("date")
	if full, _ := cmd.Flags().GetBool("full"); full {
		hash, date = true, true
	}
	report := newBuildReport(hash, date)

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "pretty":
		return report.writePretty(cmd.OutOrStdout(), version.Colored())
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

func newBuildReport(withHash, withDate bool) buildReport {
	r := buildReport{
		Tool:          "tokattr",
		Version:       strings.TrimSpace(version.Version),
		LayoutVersion: attrs.LayoutVersion,
	}
	if r.Version == "" {
		r.Version = "dev"
	}
	known := func(s string) string {
		if s = strings.TrimSpace(s); s == "" {
			return "unknown"
		}
		return s
	}
	if withHash {
		r.GitCommit = known(version.GitCommit)
	}
	if withDate {
		r.BuildDate = known(version.BuildDate)
	}
	return r
}

// writePretty prints the report; shown replaces the plain version string,
// typically with a colored one.
func (r buildReport) writePretty(w io.Writer, shown string) error {
	if shown == "" {
		shown = r.Version
	}
	if _, err := fmt.Fprintf(w, "%s %s (layout v%d)\n", r.Tool, shown, r.LayoutVersion); err != nil {
		return err
	}
	if r.GitCommit != "" {
		if _, err := fmt.Fprintf(w, "commit: %s\n", r.GitCommit); err != nil {
			return err
		}
	}
	if r.BuildDate != "" {
		if _, err := fmt.Fprintf(w, "built:  %s\n", r.BuildDate); err != nil {
			return err
		}
	}
	return nil
}
