// CLI integration tests for end-to-end command behavior.
// Purpose: validate args/stdin→escape/render→output wiring across commands.
// Exports: none.
// Role: verifies user-visible behavior including exit codes and hints.
// Invariants: tests run with an isolated config dir; stdout is never a TTY here.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var stylemarkBinary string

func TestMain(m *testing.M) {
	// Build binary before running integration tests
	cwd, err := os.Getwd()
	if err != nil {
		os.Stderr.WriteString("failed to get cwd: " + err.Error() + "\n")
		os.Exit(1)
	}
	stylemarkBinary = filepath.Join(cwd, "stylemark-test")

	cmd := exec.Command("go", "build", "-o", stylemarkBinary, ".")
	cmd.Stderr = os.Stderr
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		os.Stderr.WriteString("failed to build stylemark binary: " + err.Error() + "\n")
		os.Exit(1)
	}
	code := m.Run()
	os.Remove(stylemarkBinary) // cleanup
	os.Exit(code)
}

// testEnv returns the current environment with config lookup pointed at an
// empty directory and NO_COLOR removed.
func testEnv(t *testing.T, extra ...string) []string {
	t.Helper()
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "NO_COLOR=") || strings.HasPrefix(kv, "STYLEMARK_CONFIG=") {
			continue
		}
		env = append(env, kv)
	}
	env = append(env, "XDG_CONFIG_HOME="+t.TempDir())
	return append(env, extra...)
}

// runStylemark executes the binary with given stdin and args.
func runStylemark(t *testing.T, stdin string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(stylemarkBinary, args...)
	cmd.Env = testEnv(t)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	exitCode = 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("run stylemark: %v", err)
	}
	return outBuf.String(), errBuf.String(), exitCode
}

func TestEscapeArgs(t *testing.T) {
	stdout, stderr, code := runStylemark(t, "", "escape", "foo [bar] baz")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if stdout != "foo \\[bar\\] baz\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestEscapeStdin(t *testing.T) {
	input := "- [foo]\n- [bold red] keep\n- [foo [bar] baz]\n"
	stdout, stderr, code := runStylemark(t, input, "escape")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	want := "- \\[foo\\]\n- [bold red] keep\n- [foo \\[bar\\] baz]\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestEscapeNoInput(t *testing.T) {
	_, stderr, code := runStylemark(t, "", "escape")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(stderr, "error: no input") {
		t.Errorf("stderr = %q", stderr)
	}
	if !strings.Contains(stderr, "hint: pass text as arguments") {
		t.Errorf("missing hint: %q", stderr)
	}
}

func TestQuietSuppressesHint(t *testing.T) {
	_, stderr, code := runStylemark(t, "", "-q", "escape")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if strings.Contains(stderr, "hint:") {
		t.Errorf("--quiet should suppress hints: %q", stderr)
	}
}

func TestCheckJSON(t *testing.T) {
	stdout, stderr, code := runStylemark(t, "", "--json", "check", "[dim] [x]")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	var items []struct {
		Start   int    `json:"start"`
		End     int    `json:"end"`
		Content string `json:"content"`
		Kind    string `json:"kind"`
	}
	if err := json.Unmarshal([]byte(stdout), &items); err != nil {
		t.Fatalf("decode %q: %v", stdout, err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].Kind != "style" || items[1].Kind != "literal" || items[1].Start != 6 {
		t.Errorf("items = %+v", items)
	}
}

func TestRenderPlainWhenPiped(t *testing.T) {
	stdout, stderr, code := runStylemark(t, "", "render", "[bold]hi[/] [x]")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Errorf("piped output should be plain: %q", stdout)
	}
	if stdout != "hi[/] [x]\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestStrip(t *testing.T) {
	stdout, _, code := runStylemark(t, "", "strip", `[green]ok[/] \[1\]`)
	if code != 0 || stdout != "ok [1]\n" {
		t.Errorf("exit %d, stdout %q", code, stdout)
	}
}

func TestLogError(t *testing.T) {
	stdout, _, code := runStylemark(t, "", "log", "error", "lookup [key] failed")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if stdout != "lookup [key] failed\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestLogRuleWidth(t *testing.T) {
	stdout, _, code := runStylemark(t, "", "--width", "12", "log", "rule", "--title", "ab")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if stdout != "━━━━ ab ━━━━\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestLogUnknownLevel(t *testing.T) {
	_, stderr, code := runStylemark(t, "", "log", "error", "--level", "loud", "x")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(stderr, "hint: levels are off, error, info, debug") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("color: sometimes\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, stderr, code := runStylemark(t, "", "--config", path, "render", "x")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(stderr, "invalid config") || !strings.Contains(stderr, "hint: check the file") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestDemoRuns(t *testing.T) {
	stdout, stderr, code := runStylemark(t, "", "--width", "60", "demo")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	for _, want := range []string{"New run - demo", "Robin", "key [missing] not found"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("demo output missing %q", want)
		}
	}
}

func TestVersion(t *testing.T) {
	stdout, _, code := runStylemark(t, "", "version")
	if code != 0 || stdout != "stylemark dev\n" {
		t.Errorf("exit %d, stdout %q", code, stdout)
	}
}

func TestHelpPlainWhenPiped(t *testing.T) {
	stdout, _, code := runStylemark(t, "", "--help")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Error("piped help should be plain")
	}
	if !strings.Contains(stdout, "USAGE") || !strings.Contains(stdout, "stylemark escape") {
		t.Errorf("help = %q", stdout)
	}
}
