package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tokattr/internal/config"
	"tokattr/internal/observ"
	"tokattr/internal/store"
)

const appName = "tokattr"

// useColor resolves the --color flag for output going to f.
func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "", "auto":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Resolve(path, wd)
}

func openStore(cfg *config.Config) (*store.Store, error) {
	dir := cfg.StoreDir
	if dir == "" {
		var err error
		dir, err = store.DefaultDir(appName)
		if err != nil {
			return nil, fmt.Errorf("failed to locate cache directory: %w", err)
		}
	}
	return store.Open(dir)
}

// commandTimer returns a Timer and a function printing its summary to stderr
// when --timings is set.
func commandTimer(cmd *cobra.Command) (*observ.Timer, func() error, error) {
	show, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	timer := observ.NewTimer()
	report := func() error {
		if !show {
			return nil
		}
		return timer.WriteSummary(cmd.ErrOrStderr())
	}
	return timer, report, nil
}

func quietFlag(cmd *cobra.Command) (bool, error) {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return false, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	return quiet, nil
}

// readValueList returns the whitespace-separated values of r. '#' starts a
// comment.
func readValueList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		out = append(out, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func readValueFile(path string) ([]string, error) {
	if path == "-" {
		return readValueList(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readValueList(f)
}
