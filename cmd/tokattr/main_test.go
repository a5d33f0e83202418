package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"tokattr/internal/attrs"
	"tokattr/internal/config"
	"tokattr/internal/pack"
	"tokattr/internal/store"
	"tokattr/internal/token"
	"tokattr/internal/version"
)

const scenarioA = attrs.Encoded(0x6632B301)

func TestEncodeValue(t *testing.T) {
	cfg := config.Default()
	v, err := encodeValue(cfg, encodeOptions{lang: "1", typ: "regex", font: "bold|underline", fg: 101, bg: 102})
	if err != nil {
		t.Fatalf("encodeValue: %v", err)
	}
	if v != scenarioA {
		t.Fatalf("encodeValue = %#x, want %#x", uint32(v), uint32(scenarioA))
	}

	v, err = encodeValue(cfg, encodeOptions{lang: "go", typ: "comment", font: "none", fg: 512})
	if err != nil {
		t.Fatalf("encodeValue: %v", err)
	}
	if v.Foreground() != 0 || v.LanguageID() != 2 || v.TokenType() != attrs.Comment {
		t.Fatalf("unchecked encode = %s", v)
	}

	_, err = encodeValue(cfg, encodeOptions{lang: "go", typ: "other", font: "none", fg: 512, checked: true})
	if !errors.Is(err, attrs.ErrOutOfRange) {
		t.Fatalf("checked encode error = %v, want ErrOutOfRange", err)
	}
	if _, err := encodeValue(cfg, encodeOptions{lang: "go", typ: "other", font: "none", fg: -1}); err == nil {
		t.Fatal("negative color must fail")
	}
	if _, err := encodeValue(cfg, encodeOptions{lang: "cobol", typ: "other"}); err == nil {
		t.Fatal("unknown language must fail")
	}
}

func TestSetHistoricVersusExplicit(t *testing.T) {
	zero := 0
	lang := "0"
	opts := setOptions{fg: &zero, lang: &lang}
	patch, err := buildPatch(config.Default(), opts)
	if err != nil {
		t.Fatalf("buildPatch: %v", err)
	}

	if got := setHistoric(scenarioA, patch); got != scenarioA {
		t.Fatalf("historic set changed the value: %s", got)
	}
	got := scenarioA.Apply(patch)
	if got.Foreground() != 0 || got.LanguageID() != 0 {
		t.Fatalf("explicit set = %s", got)
	}
	if got.Background() != 102 || got.FontStyle() != attrs.Bold|attrs.Underline {
		t.Fatalf("explicit set touched other fields: %s", got)
	}
}

func TestSetHistoricFlags(t *testing.T) {
	typ := "comment"
	font := "none"
	balanced := true
	patch, err := buildPatch(config.Default(), setOptions{typ: &typ, font: &font, balanced: &balanced})
	if err != nil {
		t.Fatalf("buildPatch: %v", err)
	}
	got := setHistoric(scenarioA, patch)
	want := attrs.New(1, attrs.Comment, true, attrs.FontStyleNone, 101, 102)
	if got != want {
		t.Fatalf("setHistoric = %s, want %s", got, want)
	}
	if setHistoric(scenarioA, attrs.Patch{}) != scenarioA {
		t.Fatal("empty patch must be a no-op")
	}
}

func TestReadValueList(t *testing.T) {
	in := "1 0x10 # comment\n\n# skipped 5\n0b11\n"
	got, err := readValueList(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1", "0x10", "0b11"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("readValueList = %v, want %v", got, want)
	}
}

func TestReadUIMode(t *testing.T) {
	cases := map[string]uiMode{"": uiAuto, "AUTO": uiAuto, "on": uiOn, " off ": uiOff}
	for in, want := range cases {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Fatalf("readUIMode(%q) = %d, %v", in, got, err)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatal("invalid mode must fail")
	}
	if !uiOn.enabled() || uiOff.enabled() {
		t.Fatal("explicit modes must win over terminal detection")
	}
}

func TestPrintPackResult(t *testing.T) {
	d := store.DigestOf([]byte("x"))
	res := pack.Result{Entries: []pack.Entry{
		{File: "a.tok", Digest: d, Lines: 2, Tokens: 3},
		{File: "b.tok", Digest: d, Cached: true},
		{File: "c.tok", Err: errors.New("boom")},
	}}
	var buf bytes.Buffer
	if err := printPackResult(&buf, res, false, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"stored " + d.String() + " a.tok (2 lines, 3 tokens)", "cached " + d.String() + " b.tok", "c.tok: boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := printPackResult(&buf, res, true, false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != d.String()+"\n"+d.String()+"\n" {
		t.Fatalf("quiet output = %q", got)
	}
}

func TestPrintPackResultCanceled(t *testing.T) {
	res := pack.Result{Entries: []pack.Entry{{File: "a.tok", Err: context.Canceled}}}
	var buf bytes.Buffer
	if err := printPackResult(&buf, res, false, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "a.tok: context canceled") || strings.Contains(out, "stored") {
		t.Fatalf("skipped file must be reported as an error:\n%s", out)
	}
}

func sampleLines(t *testing.T) []token.Line {
	t.Helper()
	lines, err := token.ParseLines(strings.NewReader("0:0x6632b301 4:0x10\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	return lines
}

func TestWriteTableTextRoundTrip(t *testing.T) {
	lines := sampleLines(t)
	var buf bytes.Buffer
	if err := writeTableText(&buf, "a.tok", lines); err != nil {
		t.Fatal(err)
	}
	back, err := token.ParseLines(&buf)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(back) != len(lines) || back[0].Format() != lines[0].Format() {
		t.Fatalf("round trip = %v, want %v", back, lines)
	}
}

func TestWriteTableJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTableJSON(context.Background(), &buf, "a.tok", sampleLines(t)); err != nil {
		t.Fatal(err)
	}
	var got tableJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "a.tok" || len(got.Lines) != 2 || len(got.Lines[0].Tokens) != 2 {
		t.Fatalf("table = %+v", got)
	}
	tok := got.Lines[0].Tokens[0]
	if tok.Value != uint32(scenarioA) || tok.Fields.Foreground != 101 || tok.Fields.Background != 102 {
		t.Fatalf("token = %+v", tok)
	}
	if got.Lines[1].Line != 2 || len(got.Lines[1].Tokens) != 0 {
		t.Fatalf("empty line = %+v", got.Lines[1])
	}
}

func TestBuildReport(t *testing.T) {
	prevV, prevC, prevD := version.Version, version.GitCommit, version.BuildDate
	defer func() { version.Version, version.GitCommit, version.BuildDate = prevV, prevC, prevD }()
	version.Version, version.GitCommit, version.BuildDate = "1.2.3", "abc", ""

	r := newBuildReport(true, true)
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(r); err != nil {
		t.Fatal(err)
	}
	var payload buildReport
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "tokattr" || payload.GitCommit != "abc" || payload.BuildDate != "unknown" || payload.LayoutVersion != attrs.LayoutVersion {
		t.Fatalf("payload = %+v", payload)
	}

	buf.Reset()
	if err := newBuildReport(false, false).writePretty(&buf, ""); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "tokattr 1.2.3 (layout v1)\n" {
		t.Fatalf("pretty = %q", got)
	}
}
