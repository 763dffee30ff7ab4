// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed. It names the
// command, the bundled prompts directory and the project directory that
// prompts are installed into.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	HomeDir            string `yaml:"home_dir"`
	ToolDir            string `yaml:"tool_dir"`
	RulesDir           string `yaml:"rules_dir"`
	PromptsDir         string `yaml:"prompts_dir"`
	PromptExt          string `yaml:"prompt_ext"`
	DefaultDescription string `yaml:"default_description"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:            "augprompt",
			DisplayName:        "AugPrompt",
			Description:        "Copy bundled Augment AI prompts into the current project",
			HomeDir:            ".augprompt",
			ToolDir:            ".augment",
			RulesDir:           "rules",
			PromptsDir:         "prompts",
			PromptExt:          ".md",
			DefaultDescription: "Augment AI prompt",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "augprompt").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".augprompt").
func HomeDir() string { load(); return defaults.HomeDir }

// ToolDir returns the hidden project directory owned by the AI tool (e.g., ".augment").
func ToolDir() string { load(); return defaults.ToolDir }

// RulesDir returns the directory under ToolDir that receives prompts (e.g., "rules").
func RulesDir() string { load(); return defaults.RulesDir }

// PromptsDir returns the bundled prompts directory name under the install root.
func PromptsDir() string { load(); return defaults.PromptsDir }

// PromptExt returns the recognized prompt file extension, including the dot.
func PromptExt() string { load(); return defaults.PromptExt }

// DefaultDescription is used when no description can be extracted from a prompt.
func DefaultDescription() string { load(); return defaults.DefaultDescription }
