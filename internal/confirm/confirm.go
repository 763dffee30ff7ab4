// Package confirm asks the operator yes/no questions on a terminal.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/augprompt-labs/augprompt/internal/i18n"
	"golang.org/x/term"
	"golang.org/x/text/message"
)

// accepted lists the answers that mean "yes", in English and Vietnamese.
var accepted = map[string]bool{
	"y":   true,
	"yes": true,
	"c":   true,
	"co":  true,
	"có":  true,
}

// Prompter asks whether an existing file may be overwritten. The default
// answer is no.
type Prompter struct {
	reader  *bufio.Reader
	out     io.Writer
	printer *message.Printer
	style   func(string) string
}

// NewPrompter reads answers from r and writes questions to w.
func NewPrompter(r io.Reader, w io.Writer, p *message.Printer) *Prompter {
	if p == nil {
		p = i18n.Printer("")
	}
	return &Prompter{
		reader:  bufio.NewReader(r),
		out:     w,
		printer: p,
		style:   func(s string) string { return s },
	}
}

// WithStyle sets how the file name is highlighted in the question.
func (p *Prompter) WithStyle(style func(string) string) *Prompter {
	p.style = style
	return p
}

// Confirm asks about fileName and reports whether the operator accepted.
// End of input counts as "no".
func (p *Prompter) Confirm(fileName string) (bool, error) {
	question := p.printer.Sprintf(i18n.MsgConfirmOverwrite, p.style(fileName))
	fmt.Fprintf(p.out, "? %s (y/N) ", question)

	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.out)
		return false, nil
	}

	return accepted[strings.ToLower(strings.TrimSpace(line))], nil
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
