package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWordWrap is the column width used when rendering markdown.
const DefaultWordWrap = 100

// RenderMarkdown renders prompt markdown for a terminal. When tty is false the
// content is returned unchanged so piped output stays plain.
func RenderMarkdown(content string, tty bool, wordWrap int) (string, error) {
	if !tty {
		return content, nil
	}
	if wordWrap <= 0 {
		wordWrap = DefaultWordWrap
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
