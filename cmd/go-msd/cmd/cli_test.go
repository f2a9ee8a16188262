package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/smdbs01/go-msd"
)

// resetFlags restores the flag variables to their defaults. Tests
// mutate the package globals directly instead of going through cobra's
// parser, so each test starts from a known state.
func resetFlags() {
	flagEscapes = true
	flagIgnoreStray = false
	flagOutput = "text"
	flagConfig = ""
}

// writeInput writes an MSD document to a temp file and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.msd")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write input file: %v", err)
	}
	return path
}

// runCommand invokes a subcommand's run function with buffered output.
func runCommand(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	c.SetErr(&errOut)
	err := fn(c, args)
	return out.String(), errOut.String(), err
}

func TestTokensTextOutput(t *testing.T) {
	resetFlags()
	file := writeInput(t, "#A:B;//x\n")

	out, _, err := runCommand(t, runTokens, file)
	if err != nil {
		t.Fatalf("runTokens failed: %v", err)
	}

	walk := []struct{ typ, text string }{
		{"START-PARAMETER", "#"},
		{"TEXT", "A"},
		{"NEXT-COMPONENT", ":"},
		{"TEXT", "B"},
		{"END-PARAMETER", ";"},
		{"COMMENT", "//x"},
		{"TEXT", "\n"},
	}
	var want strings.Builder
	for _, tok := range walk {
		fmt.Fprintf(&want, "%-15s %q\n", tok.typ, tok.text)
	}
	if out != want.String() {
		t.Errorf("Unexpected token dump:\n%s\nExpected:\n%s", out, want.String())
	}
}

func TestTokensJSONOutput(t *testing.T) {
	resetFlags()
	flagOutput = "json"
	file := writeInput(t, "#K;")

	out, _, err := runCommand(t, runTokens, file)
	if err != nil {
		t.Fatalf("runTokens failed: %v", err)
	}

	var got []tokenRecord
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, out)
	}
	want := []tokenRecord{
		{Type: "START-PARAMETER", Text: "#"},
		{Type: "TEXT", Text: "K"},
		{Type: "END-PARAMETER", Text: ";"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Token records mismatch\ngot:  %v\nwant: %v", got, want)
	}
}

func TestTokensUnknownOutputFormat(t *testing.T) {
	resetFlags()
	flagOutput = "xml"
	file := writeInput(t, "#K;")

	_, _, err := runCommand(t, runTokens, file)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("Expected unknown format error, got %v", err)
	}
}

func TestParamsTextOutput(t *testing.T) {
	resetFlags()
	file := writeInput(t, "#TITLE:Springtime;\n#BPMS:0=170:64=85;\n#END;\n")

	out, _, err := runCommand(t, runParams, file)
	if err != nil {
		t.Fatalf("runParams failed: %v", err)
	}

	want := "TITLE: Springtime\nBPMS: 0=170:64=85\nEND\n"
	if out != want {
		t.Errorf("Unexpected params output:\n%s\nExpected:\n%s", out, want)
	}
}

func TestParamsYAMLOutput(t *testing.T) {
	resetFlags()
	flagOutput = "yaml"
	file := writeInput(t, "#A:B;#C;")

	out, _, err := runCommand(t, runParams, file)
	if err != nil {
		t.Fatalf("runParams failed: %v", err)
	}

	var got [][]string
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Output is not valid YAML: %v\n%s", err, out)
	}
	want := [][]string{{"A", "B"}, {"C"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Component lists mismatch\ngot:  %v\nwant: %v", got, want)
	}
}

func TestParamsStrayTextWarns(t *testing.T) {
	resetFlags()
	file := writeInput(t, "#A:B; junk\n#C:D;")

	out, errOut, err := runCommand(t, runParams, file)
	if err != nil {
		t.Fatalf("runParams failed: %v", err)
	}
	if want := "A: B\nC: D\n"; out != want {
		t.Errorf("Unexpected params output:\n%s\nExpected:\n%s", out, want)
	}
	if !strings.Contains(errOut, "stray 'j'") {
		t.Errorf("Expected stray text warning on stderr, got %q", errOut)
	}
}

func TestParamsIgnoreStray(t *testing.T) {
	resetFlags()
	flagIgnoreStray = true
	file := writeInput(t, "#A:B; junk\n#C:D;")

	out, errOut, err := runCommand(t, runParams, file)
	if err != nil {
		t.Fatalf("runParams failed: %v", err)
	}
	if errOut != "" {
		t.Errorf("Expected no warnings with --ignore-stray, got %q", errOut)
	}
	if want := "A: B\nC: D\n"; out != want {
		t.Errorf("Unexpected params output:\n%s\nExpected:\n%s", out, want)
	}
}

func TestJSONCommand(t *testing.T) {
	resetFlags()
	file := writeInput(t, `#A:B\:C;`)

	out, _, err := runCommand(t, runJSON, file)
	if err != nil {
		t.Fatalf("runJSON failed: %v", err)
	}

	var got [][]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, out)
	}
	want := [][]string{{"A", "B:C"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Component lists mismatch\ngot:  %v\nwant: %v", got, want)
	}
}

func TestYAMLCommand(t *testing.T) {
	resetFlags()
	file := writeInput(t, "#A:B;")

	out, _, err := runCommand(t, runYAML, file)
	if err != nil {
		t.Fatalf("runYAML failed: %v", err)
	}

	var got [][]string
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Output is not valid YAML: %v\n%s", err, out)
	}
	want := [][]string{{"A", "B"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Component lists mismatch\ngot:  %v\nwant: %v", got, want)
	}
}

func TestFmtCanonicalizes(t *testing.T) {
	resetFlags()
	file := writeInput(t, "// header\n#A:B\\;C;\n#D:E;\n")

	out, _, err := runCommand(t, runFmt, file)
	if err != nil {
		t.Fatalf("runFmt failed: %v", err)
	}
	if want := "#A:B\\;C;\n#D:E;\n"; out != want {
		t.Errorf("Unexpected fmt output:\n%s\nExpected:\n%s", out, want)
	}
}

func TestFmtWithoutEscapes(t *testing.T) {
	resetFlags()
	flagEscapes = false
	file := writeInput(t, `#T:A\B;`)

	out, _, err := runCommand(t, runFmt, file)
	if err != nil {
		t.Fatalf("runFmt failed: %v", err)
	}
	if want := "#T:A\\B;\n"; out != want {
		t.Errorf("Unexpected fmt output:\n%s\nExpected:\n%s", out, want)
	}
}

func TestFmtStrayTextFails(t *testing.T) {
	resetFlags()
	file := writeInput(t, "#A:B; x")

	_, _, err := runCommand(t, runFmt, file)
	var stray *msd.StrayTextError
	if !errors.As(err, &stray) {
		t.Errorf("Expected StrayTextError, got %v", err)
	}
}

func TestFmtMissingFile(t *testing.T) {
	resetFlags()

	_, _, err := runCommand(t, runFmt, filepath.Join(t.TempDir(), "absent.msd"))
	if err == nil {
		t.Error("Expected an error for a missing input file")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go-msd.toml")
	content := "escapes = false\nignore_stray_text = true\noutput = \"yaml\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Escapes == nil || *cfg.Escapes {
		t.Errorf("Expected escapes = false, got %v", cfg.Escapes)
	}
	if cfg.IgnoreStrayText == nil || !*cfg.IgnoreStrayText {
		t.Errorf("Expected ignore_stray_text = true, got %v", cfg.IgnoreStrayText)
	}
	if cfg.Output != "yaml" {
		t.Errorf("Expected output = yaml, got %q", cfg.Output)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("Expected an error for a missing --config path")
	}
}

func TestLoadConfigNoDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg != nil {
		t.Errorf("Expected nil config without any config file, got %+v", cfg)
	}
}

func TestLoadSettingsFlagsWinOverConfig(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "go-msd.toml")
	content := "escapes = false\noutput = \"json\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	flagConfig = path

	c := &cobra.Command{}
	c.Flags().BoolVar(&flagEscapes, "escapes", true, "")
	c.Flags().BoolVar(&flagIgnoreStray, "ignore-stray", false, "")
	c.Flags().StringVar(&flagOutput, "output", "text", "")
	if err := c.Flags().Parse([]string{"--escapes=true"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	if err := loadSettings(c, nil); err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}
	if !flagEscapes {
		t.Error("Explicit --escapes=true should win over the config file")
	}
	if flagOutput != "json" {
		t.Errorf("Unset --output should take the config value, got %q", flagOutput)
	}
	if flagIgnoreStray {
		t.Error("ignore_stray_text is absent from the config and should stay false")
	}
}

func TestRootCommandExecute(t *testing.T) {
	resetFlags()
	t.Setenv("HOME", t.TempDir())
	file := writeInput(t, "#A:B;")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"params", file, "--output", "json"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v\n%s", err, out.String())
	}

	var got [][]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, out.String())
	}
	want := [][]string{{"A", "B"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Component lists mismatch\ngot:  %v\nwant: %v", got, want)
	}
}

func TestEndsInsideParameter(t *testing.T) {
	resetFlags()

	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"#A", true},
		{"#A:B;", false},
		{"#A:B; trailing", false},
		{"#A:B\\", true},
		{"#A:B;\n#C", true},
		{"#A\n#B;", false},
		{"// just a comment", false},
	}
	for _, test := range tests {
		if got := endsInsideParameter(test.input); got != test.want {
			t.Errorf("endsInsideParameter(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}
