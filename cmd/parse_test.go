package cmd

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/warpdl/cookieparse/common"
	"github.com/warpdl/cookieparse/pkg/cookies"
)

func TestParseCmd_Argument(t *testing.T) {
	env := setupTestEnv(t, "")
	if err := run(t, "parse", "a=1; b=hello+world"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := env.stdout.String(); got != "a\t1\nb\thello world\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestParseCmd_CookiePrefixStripped(t *testing.T) {
	env := setupTestEnv(t, "")
	if err := run(t, "parse", "Cookie: a=1"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := env.stdout.String(); got != "a\t1\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestParseCmd_Decoders(t *testing.T) {
	tests := []struct {
		decoder string
		header  string
		want    string
	}{
		{"url", "a=x%21+y", "a\tx! y\n"},
		{"raw", "a=x%21+y", "a\tx%21+y\n"},
		{"base64", "a=aGk=; b=***", "a\thi\n"},
		{"strict", "a=%00; b=ok", "b\tok\n"},
	}
	for _, tt := range tests {
		t.Run(tt.decoder, func(t *testing.T) {
			env := setupTestEnv(t, "")
			if err := run(t, "parse", "--decode", tt.decoder, tt.header); err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := env.stdout.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseCmd_DecoderFromEnv(t *testing.T) {
	env := setupTestEnv(t, "")
	t.Setenv(common.DecoderEnv, "raw")
	if err := run(t, "parse", "a=x+y"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := env.stdout.String(); got != "a\tx+y\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestParseCmd_UnknownDecoder(t *testing.T) {
	setupTestEnv(t, "")
	err := run(t, "parse", "--decode", "rot13", "a=1")
	if !errors.Is(err, cookies.ErrUnknownDecoder) {
		t.Fatalf("expected ErrUnknownDecoder, got %v", err)
	}
}

func TestParseCmd_JSON(t *testing.T) {
	env := setupTestEnv(t, "")
	if err := run(t, "parse", "--json", "b=2; a=1; b=3"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	var got []cookies.Cookie
	if err := json.Unmarshal(env.stdout.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output %q: %v", env.stdout.String(), err)
	}
	want := []cookies.Cookie{{Name: "b", Value: "2"}, {Name: "a", Value: "1"}, {Name: "b", Value: "3"}}
	if len(got) != len(want) {
		t.Fatalf("expected %d cookies, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cookie %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestParseCmd_JSONEmpty(t *testing.T) {
	env := setupTestEnv(t, "")
	if err := run(t, "parse", "--json", ";;;"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := env.stdout.String(); got != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}

func TestParseCmd_File(t *testing.T) {
	env := setupTestEnv(t, "")
	writeFile(t, env.fs, "/req.txt", "# captured request\nCookie: a=1\n\nb=2\n")
	if err := run(t, "parse", "--file", "/req.txt"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := env.stdout.String(); got != "a\t1\nb\t2\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestParseCmd_FileErrors(t *testing.T) {
	env := setupTestEnv(t, "")
	writeFile(t, env.fs, "/empty.txt", "# nothing here\n")

	if err := run(t, "parse", "--file", "/missing.txt"); !errors.Is(err, ErrInputFileNotFound) {
		t.Errorf("expected ErrInputFileNotFound, got %v", err)
	}
	if err := run(t, "parse", "--file", "/empty.txt"); !errors.Is(err, ErrInputFileEmpty) {
		t.Errorf("expected ErrInputFileEmpty, got %v", err)
	}
}

func TestParseCmd_Stdin(t *testing.T) {
	env := setupTestEnv(t, "Cookie: a=1; b=x%20y\n")
	if err := run(t, "parse"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := env.stdout.String(); got != "a\t1\nb\tx y\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestParseCmd_TerminalWithoutHeader(t *testing.T) {
	setupTestEnv(t, "")
	stdinIsTerminal = func() bool { return true }
	if err := run(t, "parse"); !errors.Is(err, errNoHeader) {
		t.Fatalf("expected errNoHeader, got %v", err)
	}
}

func TestParseCmd_CookiePairs(t *testing.T) {
	env := setupTestEnv(t, "")
	if err := run(t, "parse", "--cookie", "a=1", "--cookie", "b=two+words"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := env.stdout.String(); got != "a\t1\nb\ttwo words\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestParseCmd_VerboseLogsNamesOnly(t *testing.T) {
	env := setupTestEnv(t, "")
	if err := run(t, "parse", "--verbose", "bad=%D; ok=1"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := env.stdout.String(); got != "ok\t1\n" {
		t.Errorf("unexpected output: %q", got)
	}
	logs := env.stderr.String()
	assertContains(t, logs, "[WARNING]")
	assertContains(t, logs, `"bad"`)
	assertNotContains(t, logs, "%D")
}

func TestParseCmd_QuietByDefault(t *testing.T) {
	env := setupTestEnv(t, "")
	if err := run(t, "parse", "bad=%D"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if env.stderr.Len() != 0 {
		t.Errorf("expected no log output, got %q", env.stderr.String())
	}
}

func TestParseCmd_VerboseFromEnv(t *testing.T) {
	env := setupTestEnv(t, "")
	t.Setenv(common.DebugEnv, "1")
	if err := run(t, "parse", "bad=%D"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	assertContains(t, env.stderr.String(), `"bad"`)
}

func TestParseCmd_LogFile(t *testing.T) {
	env := setupTestEnv(t, "")
	if err := run(t, "parse", "--log-file", "/parse.log", "bad=%D; ok=1"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if env.stderr.Len() != 0 {
		t.Errorf("expected nothing on stderr without --verbose, got %q", env.stderr.String())
	}
	data, err := afero.ReadFile(env.fs, "/parse.log")
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	assertContains(t, string(data), `[WARNING] dropping cookie "bad"`)

	if err := run(t, "parse", "--verbose", "--log-file", "/parse.log", "worse=%G0"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	data, _ = afero.ReadFile(env.fs, "/parse.log")
	assertContains(t, string(data), `"bad"`)
	assertContains(t, string(data), `"worse"`)
	assertContains(t, env.stderr.String(), `"worse"`)
}

func TestParseCmd_LogFileUnwritable(t *testing.T) {
	env := setupTestEnv(t, "")
	appFs = afero.NewReadOnlyFs(env.fs)
	if err := run(t, "parse", "--log-file", "/parse.log", "a=1"); err == nil {
		t.Fatal("expected an error for an unwritable log file")
	}
}

func TestParseCmd_ControlCharactersQuoted(t *testing.T) {
	env := setupTestEnv(t, "")
	if err := run(t, "parse", "a=x%0Ay; b=tab%09c; c=ok"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := "a\t\"x\\ny\"\nb\t\"tab\\tc\"\nc\tok\n"
	if got := env.stdout.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseCmd_ControlCharactersExactInJSON(t *testing.T) {
	env := setupTestEnv(t, "")
	if err := run(t, "parse", "--json", "a=x%0Ay"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	var got []cookies.Cookie
	if err := json.Unmarshal(env.stdout.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output %q: %v", env.stdout.String(), err)
	}
	if len(got) != 1 || got[0].Value != "x\ny" {
		t.Errorf("expected raw newline in JSON value, got %v", got)
	}
}
