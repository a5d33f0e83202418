package attrfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"tokattr/internal/attrs"
	"tokattr/internal/config"
)

// ValueOutput is the JSON form of one decoded value.
type ValueOutput struct {
	Value            string `json:"value"`
	Binary           string `json:"binary"`
	LanguageID       uint32 `json:"languageId"`
	Language         string `json:"language,omitempty"`
	TokenType        string `json:"tokenType"`
	BalancedBrackets bool   `json:"balancedBrackets"`
	FontStyle        string `json:"fontStyle"`
	FontStyleMask    uint8  `json:"fontStyleMask"`
	Foreground       uint32 `json:"foreground"`
	ForegroundColor  string `json:"foregroundColor,omitempty"`
	Background       uint32 `json:"background"`
	BackgroundColor  string `json:"backgroundColor,omitempty"`
}

// NewValueOutput decodes v. cfg may be nil.
func NewValueOutput(v attrs.Encoded, cfg *config.Config) ValueOutput {
	f := attrs.Decode(v)
	out := ValueOutput{
		Value:            fmt.Sprintf("0x%08x", uint32(v)),
		Binary:           v.BinaryString(),
		LanguageID:       f.LanguageID,
		TokenType:        f.TokenType.String(),
		BalancedBrackets: f.BalancedBrackets,
		FontStyle:        f.FontStyle.String(),
		FontStyleMask:    uint8(f.FontStyle),
		Foreground:       f.Foreground,
		Background:       f.Background,
	}
	if cfg != nil {
		out.Language, _ = cfg.LanguageName(f.LanguageID)
		out.ForegroundColor, _ = cfg.Color(f.Foreground)
		out.BackgroundColor, _ = cfg.Color(f.Background)
	}
	return out
}

// JSON writes values as an indented JSON array.
func JSON(w io.Writer, values []attrs.Encoded, cfg *config.Config) error {
	output := make([]ValueOutput, 0, len(values))
	for _, v := range values {
		output = append(output, NewValueOutput(v, cfg))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
