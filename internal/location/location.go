// Package location resolves where bundled prompts are read from and where
// they are installed in the current project.
package location

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/augprompt-labs/augprompt/internal/branding"
	"github.com/augprompt-labs/augprompt/internal/prompt"
)

// BundledLabel names the embedded prompt set in paths and messages.
const BundledLabel = "(built-in)"

// Resolver computes the source and target directories. The zero value is not
// usable; use NewResolver.
type Resolver struct {
	// Executable returns the path of the running binary.
	Executable func() (string, error)
	// Getwd returns the current working directory.
	Getwd func() (string, error)
	// PromptsDir overrides SourceDir when non-empty.
	PromptsDir string
	// TargetSubdir overrides the project-relative target path when non-empty.
	TargetSubdir string
	// Bundled is used by Source when no prompts directory is installed.
	Bundled fs.FS
}

// NewResolver returns a Resolver backed by the process executable and working
// directory. Empty overrides keep the built-in layout.
func NewResolver(promptsDir, targetSubdir string) *Resolver {
	return &Resolver{
		Executable:   os.Executable,
		Getwd:        os.Getwd,
		PromptsDir:   promptsDir,
		TargetSubdir: targetSubdir,
	}
}

// InstallRoot returns the directory the tool is installed under. Binaries
// live in <root>/bin, so the root is the parent of the executable's
// directory. Symlinks are resolved first so a linked binary still finds its
// bundled prompts.
func (r *Resolver) InstallRoot() string {
	exe, err := r.Executable()
	if err != nil {
		return r.workingDir()
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe))
}

// SourceDir returns the bundled prompts directory, <install root>/prompts.
func (r *Resolver) SourceDir() string {
	if r.PromptsDir != "" {
		return r.absolute(r.PromptsDir)
	}
	return filepath.Join(r.InstallRoot(), branding.PromptsDir())
}

// Source returns the prompts to copy from. Without a prompts_dir override, a
// missing <install root>/prompts falls back to the Bundled set, which covers
// binaries built with go install or run with go run.
func (r *Resolver) Source() prompt.Source {
	dir := r.SourceDir()
	if r.PromptsDir == "" && r.Bundled != nil {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return prompt.Source{FS: r.Bundled, Dir: BundledLabel}
		}
	}
	return prompt.DirSource(dir)
}

// TargetDir returns <cwd>/.augment/rules. Existence is not checked.
func (r *Resolver) TargetDir() string {
	if r.TargetSubdir != "" {
		return r.absolute(r.TargetSubdir)
	}
	return filepath.Join(r.workingDir(), branding.ToolDir(), branding.RulesDir())
}

// DisplayTarget returns the target directory relative to the working
// directory when possible, for user-facing messages.
func (r *Resolver) DisplayTarget() string {
	target := r.TargetDir()
	rel, err := filepath.Rel(r.workingDir(), target)
	if err != nil {
		return target
	}
	return rel + string(filepath.Separator)
}

func (r *Resolver) absolute(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(r.workingDir(), p)
}

func (r *Resolver) workingDir() string {
	wd, err := r.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
