package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tokattr/internal/attrs"
	"tokattr/internal/batch"
	"tokattr/internal/store"
	"tokattr/internal/token"
)

var unpackCmd = &cobra.Command{
	Use:   "unpack [flags] DIGEST",
	Short: "Print a stored token table",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnpack,
}

func init() {
	unpackCmd.Flags().String("format", "text", "output format (text|json)")
}

func runUnpack(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	key, err := store.ParseDigest(args[0])
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

	var payload store.Payload
	found, err := st.Get(key, &payload)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no table stored for %s", key)
	}
	lines, err := payload.TokenLines()
	if err != nil {
		return err
	}
	if format == "json" {
		return writeTableJSON(cmd.Context(), cmd.OutOrStdout(), payload.Name, lines)
	}
	return writeTableText(cmd.OutOrStdout(), payload.Name, lines)
}

// writeTableText prints lines in the form pack reads, so a table can be
// unpacked into a file and packed again.
func writeTableText(w io.Writer, name string, lines []token.Line) error {
	if _, err := fmt.Fprintf(w, "# %s\n", name); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l.Format()); err != nil {
			return err
		}
	}
	return nil
}

type tableJSON struct {
	Name  string     `json:"name"`
	Lines []lineJSON `json:"lines"`
}

type lineJSON struct {
	Line   int         `json:"line"`
	Tokens []tokenJSON `json:"tokens"`
}

type tokenJSON struct {
	Start  uint32       `json:"start"`
	Value  uint32       `json:"value"`
	Fields attrs.Fields `json:"fields"`
}

func writeTableJSON(ctx context.Context, w io.Writer, name string, lines []token.Line) error {
	var values []attrs.Encoded
	for _, l := range lines {
		for _, tok := range l {
			values = append(values, tok.Attrs)
		}
	}
	fields, err := batch.DecodeAll(ctx, values, 0)
	if err != nil {
		return err
	}

	out := tableJSON{Name: name, Lines: make([]lineJSON, len(lines))}
	next := 0
	for i, l := range lines {
		lj := lineJSON{Line: i + 1, Tokens: make([]tokenJSON, len(l))}
		for j, tok := range l {
			lj.Tokens[j] = tokenJSON{Start: tok.StartIndex, Value: uint32(tok.Attrs), Fields: fields[next]}
			next++
		}
		out.Lines[i] = lj
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
