package main

import (
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"tokattr/internal/attrs"
	"tokattr/internal/config"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags]",
	Short: "Pack attribute fields into one value",
	Long: `Encode builds a packed value from every field. Fields that do not fit
their bit width are truncated unless --checked is given.`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().String("lang", "0", "language name from the config or numeric id")
	encodeCmd.Flags().String("type", "other", "token type (other|comment|string|regex)")
	encodeCmd.Flags().Bool("balanced", false, "token contains balanced brackets")
	encodeCmd.Flags().String("font", "none", "font style flags (italic|bold|underline|strikethrough, joined by |)")
	encodeCmd.Flags().Int("fg", 0, "foreground palette index")
	encodeCmd.Flags().Int("bg", 0, "background palette index")
	encodeCmd.Flags().Bool("checked", false, "reject out-of-range fields instead of truncating")
}

type encodeOptions struct {
	lang     string
	typ      string
	balanced bool
	font     string
	fg, bg   int
	checked  bool
}

func runEncode(cmd *cobra.Command, _ []string) error {
	var opts encodeOptions
	flags := cmd.Flags()
	var err error
	if opts.lang, err = flags.GetString("lang"); err != nil {
		return fmt.Errorf("failed to get lang flag: %w", err)
	}
	if opts.typ, err = flags.GetString("type"); err != nil {
		return fmt.Errorf("failed to get type flag: %w", err)
	}
	if opts.balanced, err = flags.GetBool("balanced"); err != nil {
		return fmt.Errorf("failed to get balanced flag: %w", err)
	}
	if opts.font, err = flags.GetString("font"); err != nil {
		return fmt.Errorf("failed to get font flag: %w", err)
	}
	if opts.fg, err = flags.GetInt("fg"); err != nil {
		return fmt.Errorf("failed to get fg flag: %w", err)
	}
	if opts.bg, err = flags.GetInt("bg"); err != nil {
		return fmt.Errorf("failed to get bg flag: %w", err)
	}
	if opts.checked, err = flags.GetBool("checked"); err != nil {
		return fmt.Errorf("failed to get checked flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	v, err := encodeValue(cfg, opts)
	if err != nil {
		return err
	}
	return writeValue(cmd.OutOrStdout(), v)
}

func encodeValue(cfg *config.Config, opts encodeOptions) (attrs.Encoded, error) {
	lang, err := cfg.ResolveLanguage(opts.lang)
	if err != nil {
		return 0, err
	}
	tt, err := attrs.ParseTokenType(opts.typ)
	if err != nil {
		return 0, err
	}
	font, err := attrs.ParseFontStyle(opts.font)
	if err != nil {
		return 0, err
	}

	if opts.checked {
		langInt, err := safecast.Conv[int](lang)
		if err != nil {
			return 0, fmt.Errorf("language id %d: %w", lang, err)
		}
		return attrs.NewChecked(attrs.Raw{
			LanguageID:       langInt,
			TokenType:        int(tt),
			BalancedBrackets: opts.balanced,
			FontStyle:        int(font),
			Foreground:       opts.fg,
			Background:       opts.bg,
		})
	}

	fg, err := safecast.Conv[uint32](opts.fg)
	if err != nil {
		return 0, fmt.Errorf("foreground %d: %w", opts.fg, err)
	}
	bg, err := safecast.Conv[uint32](opts.bg)
	if err != nil {
		return 0, fmt.Errorf("background %d: %w", opts.bg, err)
	}
	return attrs.New(lang, tt, opts.balanced, font, fg, bg), nil
}

func writeValue(w io.Writer, v attrs.Encoded) error {
	_, err := fmt.Fprintf(w, "%d\t0x%08x\t%s\n", uint32(v), uint32(v), v)
	return err
}
