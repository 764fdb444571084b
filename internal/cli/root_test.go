package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"

	"github.com/matzehuels/badgegen/pkg/errors"
	"github.com/matzehuels/badgegen/pkg/observability"
	"github.com/matzehuels/badgegen/pkg/shields"
)

// testCLI returns a non-interactive CLI rooted at dir, writing badges to out.
func testCLI(dir string, out io.Writer) *CLI {
	c := New(out, io.Discard, log.InfoLevel)
	c.dir = dir
	c.interactive = func() bool { return false }
	return c
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)

	root := c.RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	buf, _ := c.out.(*bytes.Buffer)
	if buf == nil {
		return "", err
	}
	return buf.String(), err
}

// gitCheckout creates a git repository in a temp dir with an origin remote.
func gitCheckout(t *testing.T, url string) string {
	t.Helper()
	dir := t.TempDir()
	g, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	if _, err := g.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: []string{url}}); err != nil {
		t.Fatalf("CreateRemote: %v", err)
	}
	return dir
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := testCLI(t.TempDir(), io.Discard).RootCommand()

	want := []string{"dependency", "node", "go", "generic", "render", "inspect", "serve", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	var out bytes.Buffer
	got, err := execute(t, testCLI(t.TempDir(), &out), "--version")
	if err != nil {
		t.Fatalf("--version error = %v", err)
	}
	if !strings.HasPrefix(got, "badgegen version ") {
		t.Errorf("--version output = %q", got)
	}
}

func TestBadgeCommands(t *testing.T) {
	dir := gitCheckout(t, "https://github.com/MichaelCurrin/badge-generator.git")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "dependency",
			args: []string{"dependency", "react", "--registry", "npm", "--logo", "react"},
			want: "[![dependency - react](https://img.shields.io/badge/dependency-react-blue?logo=react)](https://www.npmjs.com/package/react)",
		},
		{
			name: "dependency short flag",
			args: []string{"dependency", "flask", "-r", "pypi"},
			want: "[![dependency - flask](https://img.shields.io/badge/dependency-flask-blue)](https://pypi.org/project/flask)",
		},
		{
			name: "node from git remote",
			args: []string{"node", "vue", "--logo", "vue.js", "--logo-color", "white"},
			want: "[![Package - vue](https://img.shields.io/github/package-json/dependency-version/MichaelCurrin/badge-generator/vue?logo=vue.js&logoColor=white&style=for-the-badge)](https://www.npmjs.com/package/vue)",
		},
		{
			name: "node explicit repo and env",
			args: []string{"node", "typescript", "--repo", "octocat/hello-world", "--env", "dev"},
			want: "[![Package - typescript](https://img.shields.io/github/package-json/dependency-version/octocat/hello-world/dev/typescript?style=for-the-badge)](https://www.npmjs.com/package/typescript)",
		},
		{
			name: "go from git remote",
			args: []string{"go"},
			want: "[![Go Version](https://img.shields.io/github/go-mod/go-version/MichaelCurrin/badge-generator?logo=go&logoColor=white&style=for-the-badge)](https://go.dev)",
		},
		{
			name: "go explicit repo",
			args: []string{"go", "https://github.com/spf13/cobra"},
			want: "[![Go Version](https://img.shields.io/github/go-mod/go-version/spf13/cobra?logo=go&logoColor=white&style=for-the-badge)](https://go.dev)",
		},
		{
			name: "generic",
			args: []string{"generic", "--label", "License", "--message", "MIT", "--link", "https://opensource.org/licenses/MIT"},
			want: "[![License - MIT](https://img.shields.io/badge/License-MIT-blue)](https://opensource.org/licenses/MIT)",
		},
		{
			name: "generic large without link",
			args: []string{"generic", "--message", "Made with Go", "--color", "00ADD8", "--logo", "go", "--large"},
			want: "![Made with Go](https://img.shields.io/badge/Made_with_Go-00ADD8?logo=go&style=for-the-badge)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := execute(t, testCLI(dir, &out), tt.args...)
			if err != nil {
				t.Fatalf("%v error = %v", tt.args, err)
			}
			if got != tt.want+"\n" {
				t.Errorf("output =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestBadgeCommandErrors(t *testing.T) {
	notARepo := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		wantCode errors.Code
	}{
		{"missing registry", []string{"dependency", "react"}, errors.ErrCodeInvalidRegistry},
		{"unknown registry", []string{"dependency", "react", "-r", "maven"}, errors.ErrCodeInvalidRegistry},
		{"unknown env", []string{"node", "vue", "--repo", "a/b", "--env", "staging"}, errors.ErrCodeInvalidEnvironment},
		{"no git checkout", []string{"go"}, errors.ErrCodeInvalidRepo},
		{"bad repo", []string{"go", "not-a-repo"}, errors.ErrCodeInvalidRepo},
		{"generic without message", []string{"generic", "--label", "x"}, errors.ErrCodeInvalidArgument},
		{"generic bad link", []string{"generic", "--message", "x", "--link", "javascript:alert(1)"}, errors.ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := execute(t, testCLI(notARepo, &out), tt.args...)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("%v error = %v, want code %s", tt.args, err, tt.wantCode)
			}
			if got != "" {
				t.Errorf("expected no output on error, got %q", got)
			}
		})
	}
}

func TestDependencyUsesPickerWhenInteractive(t *testing.T) {
	var out bytes.Buffer
	c := testCLI(t.TempDir(), &out)
	c.interactive = func() bool { return true }

	var asked string
	c.pickRegistry = func(_ context.Context, pkg string) (shields.Registry, error) {
		asked = pkg
		return shields.Rust, nil
	}

	got, err := execute(t, c, "dependency", "serde")
	if err != nil {
		t.Fatalf("dependency error = %v", err)
	}
	if asked != "serde" {
		t.Errorf("picker asked for %q, want serde", asked)
	}
	if !strings.HasSuffix(got, "(https://crates.io/crates/serde)\n") {
		t.Errorf("output = %q, want crates.io link", got)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := gitCheckout(t, "git@github.com:MichaelCurrin/badge-generator.git")
	set := `[defaults]
logo_color = "white"

[[badges]]
kind = "go"

[[badges]]
kind = "break"

[[badges]]
kind = "dependency"
name = "flask"
registry = "pypi"
logo = "flask"
`
	path := filepath.Join(dir, "badges.toml")
	if err := os.WriteFile(path, []byte(set), 0o644); err != nil {
		t.Fatal(err)
	}

	want := "[![Go Version](https://img.shields.io/github/go-mod/go-version/MichaelCurrin/badge-generator?logo=go&logoColor=white&style=for-the-badge)](https://go.dev)\n" +
		"[![dependency - flask](https://img.shields.io/badge/dependency-flask-blue?logo=flask&logoColor=white)](https://pypi.org/project/flask)\n"

	t.Run("stdout", func(t *testing.T) {
		var out bytes.Buffer
		got, err := execute(t, testCLI(dir, &out), "render", path)
		if err != nil {
			t.Fatalf("render error = %v", err)
		}
		if got != want {
			t.Errorf("render output =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("output file", func(t *testing.T) {
		var out bytes.Buffer
		dest := filepath.Join(t.TempDir(), "badges.md")
		if _, err := execute(t, testCLI(dir, &out), "render", path, "-o", dest); err != nil {
			t.Fatalf("render error = %v", err)
		}
		data, err := os.ReadFile(dest)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		if string(data) != want {
			t.Errorf("file content =\n%s\nwant\n%s", data, want)
		}
		if out.Len() != 0 {
			t.Errorf("expected nothing on stdout, got %q", out.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		var out bytes.Buffer
		_, err := execute(t, testCLI(dir, &out), "render", filepath.Join(dir, "nope.toml"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("render error = %v, want FILE_NOT_FOUND", err)
		}
	})
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	content := "# Project\n\n" +
		"[![Go Version](https://img.shields.io/github/go-mod/go-version/octocat/hello-world?logo=go)](https://go.dev)\n" +
		"[![dependency - react](https://img.shields.io/badge/dependency-react-blue)](https://www.npmjs.com/package/react)\n"
	if err := os.WriteFile(readme, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		got, err := execute(t, testCLI(dir, &out), "inspect", readme, "--json")
		if err != nil {
			t.Fatalf("inspect error = %v", err)
		}
		for _, want := range []string{`"Go Version"`, `"https://go.dev"`, `"https://www.npmjs.com/package/react"`} {
			if !strings.Contains(got, want) {
				t.Errorf("inspect --json output missing %s:\n%s", want, got)
			}
		}
	})

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		got, err := execute(t, testCLI(dir, &out), "inspect", readme)
		if err != nil {
			t.Fatalf("inspect error = %v", err)
		}
		if !strings.Contains(got, "dependency - react") || !strings.Contains(got, "https://go.dev") {
			t.Errorf("inspect output =\n%s", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		var out bytes.Buffer
		_, err := execute(t, testCLI(dir, &out), "inspect", filepath.Join(dir, "nope.md"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("inspect error = %v, want FILE_NOT_FOUND", err)
		}
	})
}

func TestCompletionCommand(t *testing.T) {
	var out bytes.Buffer
	got, err := execute(t, testCLI(t.TempDir(), &out), "completion", "bash")
	if err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(got, "badgegen") {
		t.Error("bash completion should mention the command name")
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New(errors.ErrCodeInvalidRegistry, "unknown registry %q", "maven"))

	got := buf.String()
	if !strings.Contains(got, `unknown registry "maven"`) || !strings.Contains(got, "INVALID_REGISTRY") {
		t.Errorf("PrintError() = %q", got)
	}
}
