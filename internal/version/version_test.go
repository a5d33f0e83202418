package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColored(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	orig := Version
	defer func() { Version = orig }()

	cases := map[string]string{
		"0.1.0-dev": "0.1.0-dev",
		"1.2.3":     "1.2.3",
		"dev":       "dev",
	}
	for in, want := range cases {
		Version = in
		if got := Colored(); got != want {
			t.Errorf("Colored(%q) = %q, want %q", in, got, want)
		}
	}
}
