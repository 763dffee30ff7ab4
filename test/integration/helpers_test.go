//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/augprompt-labs/augprompt/internal/location"
)

// testEnv holds an isolated install root and project directory.
type testEnv struct {
	InstallRoot string // <root>/bin/augprompt and <root>/prompts
	ProjectDir  string // working directory the tool runs in
	Resolver    *location.Resolver
}

// setupTestEnv lays out a fake installation and returns a resolver whose
// executable and working directory point into it.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		InstallRoot: t.TempDir(),
		ProjectDir:  t.TempDir(),
	}

	for _, dir := range []string{"bin", "prompts"} {
		if err := os.MkdirAll(filepath.Join(env.InstallRoot, dir), 0755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
	}

	exe := filepath.Join(env.InstallRoot, "bin", "augprompt")
	env.Resolver = &location.Resolver{
		Executable: func() (string, error) { return exe, nil },
		Getwd:      func() (string, error) { return env.ProjectDir, nil },
	}
	return env
}

// bundledPromptsDir is the prompt set shipped in the repository.
func bundledPromptsDir() string {
	return filepath.Join("..", "..", "prompts")
}

// copyBundledPrompts copies the repository's prompts into the fake install.
func copyBundledPrompts(t *testing.T, env *testEnv) []string {
	t.Helper()

	entries, err := os.ReadDir(bundledPromptsDir())
	if err != nil {
		t.Fatalf("reading bundled prompts: %v", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(bundledPromptsDir(), e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		writeFile(t, filepath.Join(env.InstallRoot, "prompts", e.Name()), string(data))
		names = append(names, e.Name())
	}
	return names
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertSameContent(t *testing.T, want, got string) {
	t.Helper()
	a, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("reading %s: %v", want, err)
	}
	b, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("reading %s: %v", got, err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("%s does not match %s", got, want)
	}
}
