package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// testEnv holds the swapped process streams of one test run.
type testEnv struct {
	fs     afero.Fs
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// setupTestEnv points the command layer at an in-memory filesystem and
// buffers, with input as stdin. Everything is restored on cleanup.
func setupTestEnv(t *testing.T, input string) *testEnv {
	t.Helper()
	env := &testEnv{
		fs:     afero.NewMemMapFs(),
		stdout: new(bytes.Buffer),
		stderr: new(bytes.Buffer),
	}
	oldFs, oldIn, oldOut, oldErr, oldTTY := appFs, stdin, stdout, stderr, stdinIsTerminal
	appFs = env.fs
	stdin = strings.NewReader(input)
	stdout = env.stdout
	stderr = env.stderr
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() {
		appFs, stdin, stdout, stderr, stdinIsTerminal = oldFs, oldIn, oldOut, oldErr, oldTTY
	})
	return env
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	return Execute(append([]string{"cookieparse"}, args...), BuildArgs{Version: "test", BuildType: "dev"})
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// assertContains checks if output contains the expected substring.
func assertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, output)
	}
}

// assertNotContains checks if output does NOT contain the specified substring.
func assertNotContains(t *testing.T, output, notExpected string) {
	t.Helper()
	if strings.Contains(output, notExpected) {
		t.Errorf("expected output to not contain %q, got:\n%s", notExpected, output)
	}
}
