package attrs

// Fields is the unpacked form of an Encoded value.
type Fields struct {
	LanguageID       uint32            `json:"languageId"`
	TokenType        StandardTokenType `json:"tokenType"`
	BalancedBrackets bool              `json:"balancedBrackets"`
	FontStyle        FontStyle         `json:"fontStyle"`
	Foreground       uint32            `json:"foreground"`
	Background       uint32            `json:"background"`
}

// Decode unpacks every field of e.
func Decode(e Encoded) Fields {
	return Fields{
		LanguageID:       e.LanguageID(),
		TokenType:        e.TokenType(),
		BalancedBrackets: e.BalancedBrackets(),
		FontStyle:        e.FontStyle(),
		Foreground:       e.Foreground(),
		Background:       e.Background(),
	}
}

// Encode packs f with New.
func (f Fields) Encode() Encoded {
	return New(f.LanguageID, f.TokenType, f.BalancedBrackets, f.FontStyle, f.Foreground, f.Background)
}
