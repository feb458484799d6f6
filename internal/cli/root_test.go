package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
)

// executeCommand runs a command with the given args and captures stdout.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// isolate points the home directory and database at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("PA_DB", filepath.Join(tmp, "test.db"))
	t.Setenv("PA_PROJECT", "")
	t.Setenv("PA_SERVER_URL", "")
	t.Setenv("PA_CATALOG", "")
	color.NoColor = true
	return tmp
}

func TestRootHelp(t *testing.T) {
	_, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("expected --format flag to exist")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("expected --format default 'text', got %q", formatFlag.DefValue)
	}

	dbFlag := root.PersistentFlags().Lookup("db")
	if dbFlag == nil {
		t.Fatal("expected --db flag to exist")
	}

	remoteFlag := root.PersistentFlags().Lookup("remote")
	if remoteFlag == nil {
		t.Fatal("expected --remote flag to exist")
	}
	if remoteFlag.DefValue != "false" {
		t.Errorf("expected --remote default 'false', got %q", remoteFlag.DefValue)
	}
}

func TestArgs(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"ask without question", []string{"ask"}},
		{"show without id", []string{"show"}},
		{"use without id", []string{"use"}},
		{"projects with args", []string{"projects", "extra"}},
		{"history with args", []string{"history", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := executeCommand(tt.args...); err == nil {
				t.Fatal("expected an argument error")
			}
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := executeCommand("version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != Version+"\n" {
		t.Errorf("output = %q", out)
	}
}
