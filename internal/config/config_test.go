package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// useTempHome points the config directory at a fresh temp HOME.
func useTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestFilePath(t *testing.T) {
	home := useTempHome(t)

	want := filepath.Join(home, ".augprompt", "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	useTempHome(t)

	if err := Load(); err != nil {
		t.Fatalf("Load with no file: %v", err)
	}
	if got := Get(KeyLang); got != "" {
		t.Errorf("Get(lang) = %q, want empty", got)
	}
}

func TestSetThenLoad(t *testing.T) {
	useTempHome(t)

	if err := Load(); err != nil {
		t.Fatal(err)
	}
	if err := Set(KeyLang, "en"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Set(KeyTargetDir, ".augment/custom"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := Get(KeyLang); got != "en" {
		t.Errorf("Get(lang) = %q, want %q", got, "en")
	}
	if got := Get(KeyTargetDir); got != ".augment/custom" {
		t.Errorf("Get(target_dir) = %q", got)
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	useTempHome(t)

	if err := Set("mirror", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := os.Stat(FilePath()); err == nil {
		t.Error("config file should not be created for a rejected key")
	}
}

func TestSetRejectsInvalidValue(t *testing.T) {
	useTempHome(t)

	err := Set(KeyLang, "fr")
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidError, got %v", err)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	useTempHome(t)

	if err := EnsureDir(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(FilePath(), []byte("lang: de\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Load()
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidError, got %v", err)
	}
	if !strings.Contains(err.Error(), "/lang") {
		t.Errorf("error should name the offending key: %v", err)
	}
}

func TestSetKeepsInvalidFileIntact(t *testing.T) {
	useTempHome(t)

	if err := EnsureDir(); err != nil {
		t.Fatal(err)
	}
	original := "prompts_dir: /opt/prompts\nlang: de\n"
	if err := os.WriteFile(FilePath(), []byte(original), 0644); err != nil {
		t.Fatal(err)
	}
	_ = Load()

	err := Set(KeyLang, "en")
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidError, got %v", err)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Errorf("config file rewritten:\n%s", data)
	}
}

func TestSetKeepsOtherKeys(t *testing.T) {
	useTempHome(t)

	if err := EnsureDir(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(FilePath(), []byte("prompts_dir: /opt/prompts\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Set without a prior Load must still merge with the file.
	if err := Set(KeyLang, "en"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Load(); err != nil {
		t.Fatal(err)
	}
	if got := Get(KeyPromptsDir); got != "/opt/prompts" {
		t.Errorf("Get(prompts_dir) = %q, want %q", got, "/opt/prompts")
	}
	if got := Get(KeyLang); got != "en" {
		t.Errorf("Get(lang) = %q, want %q", got, "en")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		valid bool
	}{
		{"empty", "", true},
		{"lang vi", "lang: vi\n", true},
		{"all keys", "lang: en\nprompts_dir: /opt/prompts\ntarget_dir: .augment/rules\n", true},
		{"bad lang", "lang: xx\n", false},
		{"unknown key", "colour: red\n", false},
		{"empty dir", "prompts_dir: \"\"\n", false},
		{"wrong type", "target_dir: 3\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (issues: %+v)", result.Valid, tt.valid, result.Issues)
			}
			if !tt.valid && len(result.Issues) == 0 {
				t.Error("expected at least one issue")
			}
		})
	}
}

func TestValidateMalformedYAML(t *testing.T) {
	if _, err := Validate([]byte("lang: [unclosed")); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}
