package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/augprompt-labs/augprompt/internal/branding"
	"github.com/augprompt-labs/augprompt/internal/i18n"
	"github.com/augprompt-labs/augprompt/internal/platform"
	"github.com/augprompt-labs/augprompt/internal/prompt"
	"golang.org/x/text/message"
)

// Installer copies prompts from a source into the target directory.
type Installer struct {
	source    prompt.Source
	targetDir string
	confirm   Confirmer
	printer   *message.Printer
}

// Option configures an Installer.
type Option func(*Installer)

// WithConfirmer sets who is asked before overwriting an existing file in
// non-force mode. The default declines every overwrite.
func WithConfirmer(c Confirmer) Option {
	return func(in *Installer) {
		in.confirm = c
	}
}

// WithSource replaces the source directory given to New, e.g. with the
// prompts embedded in the binary.
func WithSource(src prompt.Source) Option {
	return func(in *Installer) {
		in.source = src
	}
}

// WithPrinter sets the printer used for localized report messages.
func WithPrinter(p *message.Printer) Option {
	return func(in *Installer) {
		in.printer = p
	}
}

// New creates an Installer for the given source and target directories.
func New(sourceDir, targetDir string, opts ...Option) *Installer {
	in := &Installer{
		source:    prompt.DirSource(sourceDir),
		targetDir: targetDir,
		confirm:   AlwaysNo,
		printer:   i18n.Printer(""),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// EnsureTarget creates the target directory and its parents if needed.
func (in *Installer) EnsureTarget() error {
	if err := os.MkdirAll(in.targetDir, 0755); err != nil {
		return &TargetDirectoryError{Dir: in.targetDir, Err: err}
	}
	return nil
}

// CopyOne copies the source file src to dst. When dst exists and force is
// false the Confirmer is asked first; a refusal leaves dst untouched. Failures are
// reported in the Outcome, never returned.
func (in *Installer) CopyOne(src, dst string, force bool) Outcome {
	fileName := filepath.Base(dst)

	if !force && platform.Exists(dst) {
		ok, err := in.confirm.Confirm(fileName)
		if err != nil {
			return Outcome{Kind: OutcomeError, FileName: fileName, Err: fmt.Errorf("confirming overwrite: %w", err)}
		}
		if !ok {
			return Outcome{Kind: OutcomeSkipped, FileName: fileName}
		}
	}

	if err := platform.CopyFile(in.source.FS, src, dst); err != nil {
		return Outcome{Kind: OutcomeError, FileName: fileName, Err: err}
	}
	return Outcome{Kind: OutcomeCopied, FileName: fileName}
}

// CopyAll copies every catalog prompt in catalog order.
func (in *Installer) CopyAll(force bool) *Report {
	if err := in.EnsureTarget(); err != nil {
		return failedReport(err)
	}

	prompts, err := in.source.List()
	if err != nil {
		return failedReport(err)
	}

	report := &Report{TotalCount: len(prompts)}
	for _, p := range prompts {
		report.add(in.CopyOne(p.FileName(), in.destination(p.Name), force))
	}
	return report.finish()
}

// CopySelected copies the named prompts in the order given. Names missing
// from the catalog are counted and reported instead of copied.
func (in *Installer) CopySelected(names []string, force bool) *Report {
	if err := in.EnsureTarget(); err != nil {
		return failedReport(err)
	}

	prompts, err := in.source.List()
	if err != nil {
		return failedReport(err)
	}

	byName := make(map[string]prompt.Descriptor, len(prompts))
	for _, p := range prompts {
		byName[p.Name] = p
	}

	report := &Report{TotalCount: len(names)}
	for _, name := range names {
		p, ok := byName[name]
		if !ok {
			report.NotFoundCount++
			report.Errors = append(report.Errors, in.printer.Sprintf(i18n.MsgNotFound, name))
			continue
		}
		report.add(in.CopyOne(p.FileName(), in.destination(p.Name), force))
	}
	return report.finish()
}

func (in *Installer) destination(name string) string {
	return filepath.Join(in.targetDir, name+branding.PromptExt())
}
