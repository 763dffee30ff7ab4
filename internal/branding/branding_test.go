package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  func() string
		want string
	}{
		{"cli name", CLIName, "augprompt"},
		{"home dir", HomeDir, ".augprompt"},
		{"tool dir", ToolDir, ".augment"},
		{"rules dir", RulesDir, "rules"},
		{"prompts dir", PromptsDir, "prompts"},
		{"prompt ext", PromptExt, ".md"},
		{"default description", DefaultDescription, "Augment AI prompt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got(); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
