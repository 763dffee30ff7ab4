package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := buildVersion, buildCommit, buildDate
	buildVersion, buildCommit, buildDate = version, commit, date
	t.Cleanup(func() {
		buildVersion, buildCommit, buildDate = oldVersion, oldCommit, oldDate
	})
}

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"v1.2.3", "1.2.3"},
		{"v1.2", "1.2.0"},
		{"1.0.0-rc.1", "1.0.0-rc.1"},
		{"dev", "dev"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := displayVersion(tt.in); got != tt.want {
				t.Errorf("displayVersion(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersionShort(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	withBuildInfo(t, "v0.3.1", "abc123", "2026-01-01")

	stdout, _, err := executeCommand(t, "", "version", "--short")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(stdout) != "0.3.1" {
		t.Errorf("stdout = %q, want 0.3.1", stdout)
	}
}

func TestVersionJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	withBuildInfo(t, "1.0.0", "abc123", "2026-01-01")

	stdout, _, err := executeCommand(t, "", "version", "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var info map[string]string
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if info["version"] != "1.0.0" || info["commit"] != "abc123" || info["date"] != "2026-01-01" {
		t.Errorf("info = %v", info)
	}
}

func TestVersionFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	withBuildInfo(t, "v2.0.0", "abc123", "2026-01-01")

	stdout, _, err := executeCommand(t, "", "--version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(stdout) != "2.0.0" {
		t.Errorf("stdout = %q, want 2.0.0", stdout)
	}
}
