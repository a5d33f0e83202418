package main

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tokattr/internal/attrs"
	"tokattr/internal/config"
)

var setCmd = &cobra.Command{
	Use:   "set VALUE [flags]",
	Short: "Overwrite selected fields of a packed value",
	Long: `Set rewrites the fields given by flags and keeps every other bit.

By default the historic rules apply: --lang 0, --fg 0 and --bg 0 mean
"unchanged", so those fields can never be cleared. With --explicit every
flag that is present is written, zero included.`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	setCmd.Flags().String("lang", "", "language name from the config or numeric id")
	setCmd.Flags().String("type", "", "token type (other|comment|string|regex)")
	setCmd.Flags().Bool("balanced", false, "token contains balanced brackets")
	setCmd.Flags().String("font", "", "font style flags (italic|bold|underline|strikethrough, joined by |)")
	setCmd.Flags().Int("fg", 0, "foreground palette index")
	setCmd.Flags().Int("bg", 0, "background palette index")
	setCmd.Flags().Bool("explicit", false, "write present flags even when they are zero")
}

// setOptions holds the flags that were given; nil means absent.
type setOptions struct {
	lang     *string
	typ      *string
	balanced *bool
	font     *string
	fg, bg   *int
	explicit bool
}

func runSet(cmd *cobra.Command, args []string) error {
	opts, err := readSetOptions(cmd.Flags())
	if err != nil {
		return err
	}
	v, err := attrs.Parse(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	patch, err := buildPatch(cfg, opts)
	if err != nil {
		return err
	}
	if opts.explicit {
		v = v.Apply(patch)
	} else {
		v = setHistoric(v, patch)
	}
	return writeValue(cmd.OutOrStdout(), v)
}

func readSetOptions(flags *pflag.FlagSet) (setOptions, error) {
	var opts setOptions
	var err error
	if opts.explicit, err = flags.GetBool("explicit"); err != nil {
		return opts, fmt.Errorf("failed to get explicit flag: %w", err)
	}
	str := func(name string) (*string, error) {
		if !flags.Changed(name) {
			return nil, nil
		}
		v, err := flags.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		return &v, nil
	}
	num := func(name string) (*int, error) {
		if !flags.Changed(name) {
			return nil, nil
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		return &v, nil
	}
	if opts.lang, err = str("lang"); err != nil {
		return opts, err
	}
	if opts.typ, err = str("type"); err != nil {
		return opts, err
	}
	if opts.font, err = str("font"); err != nil {
		return opts, err
	}
	if opts.fg, err = num("fg"); err != nil {
		return opts, err
	}
	if opts.bg, err = num("bg"); err != nil {
		return opts, err
	}
	if flags.Changed("balanced") {
		b, err := flags.GetBool("balanced")
		if err != nil {
			return opts, fmt.Errorf("failed to get balanced flag: %w", err)
		}
		opts.balanced = &b
	}
	return opts, nil
}

// buildPatch turns present flags into a patch. Values are truncated to their
// field width by Apply, as with encode.
func buildPatch(cfg *config.Config, opts setOptions) (attrs.Patch, error) {
	var p attrs.Patch
	if opts.lang != nil {
		id, err := cfg.ResolveLanguage(*opts.lang)
		if err != nil {
			return p, err
		}
		p.LanguageID = attrs.Some(id)
	}
	if opts.typ != nil {
		tt, err := attrs.ParseTokenType(*opts.typ)
		if err != nil {
			return p, err
		}
		p.TokenType = attrs.Some(tt)
	}
	if opts.balanced != nil {
		p.BalancedBrackets = attrs.Some(*opts.balanced)
	}
	if opts.font != nil {
		fs, err := attrs.ParseFontStyle(*opts.font)
		if err != nil {
			return p, err
		}
		p.FontStyle = attrs.Some(fs)
	}
	if opts.fg != nil {
		fg, err := safecast.Conv[uint32](*opts.fg)
		if err != nil {
			return p, fmt.Errorf("foreground %d: %w", *opts.fg, err)
		}
		p.Foreground = attrs.Some(fg)
	}
	if opts.bg != nil {
		bg, err := safecast.Conv[uint32](*opts.bg)
		if err != nil {
			return p, fmt.Errorf("background %d: %w", *opts.bg, err)
		}
		p.Background = attrs.Some(bg)
	}
	return p, nil
}

// setHistoric routes a patch through attrs.Set, so zero ids and colors keep
// their "unchanged" meaning.
func setHistoric(v attrs.Encoded, p attrs.Patch) attrs.Encoded {
	lang, _ := p.LanguageID.Get()
	tokenType := attrs.TokenTypeNotSet
	if tt, ok := p.TokenType.Get(); ok {
		tokenType = attrs.ToOptional(tt)
	}
	balanced := attrs.BoolNotSet
	if b, ok := p.BalancedBrackets.Get(); ok {
		balanced = attrs.OptionalBoolOf(b)
	}
	font := attrs.FontStyleNotSet
	if fs, ok := p.FontStyle.Get(); ok {
		font = fs
	}
	fg, _ := p.Foreground.Get()
	bg, _ := p.Background.Get()
	return attrs.Set(v, lang, tokenType, balanced, font, fg, bg)
}
