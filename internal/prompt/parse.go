package prompt

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/augprompt-labs/augprompt/internal/branding"
)

// MaxDescriptionLen is the longest description kept, ellipsis included.
const MaxDescriptionLen = 120

const ellipsis = "..."

var (
	titleRe          = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	descriptionRe    = regexp.MustCompile(`(?m)^-\s*description:\s*(.+)$`)
	roleRe           = regexp.MustCompile(`(?s)^(?:#\s*Role:|Role:)\s*(.+?)(?:\n\n|$)`)
	firstParagraphRe = regexp.MustCompile(`(?s)^#\s+.+?\n\n(.+?)(?:\n\n|$)`)
	bulletRe         = regexp.MustCompile(`^[-*]\s*`)
)

// matcher extracts a candidate description from prompt content.
type matcher func(content string) (string, bool)

// descriptionMatchers are tried in order; the first match wins.
var descriptionMatchers = []matcher{
	matchDescriptionField,
	matchRoleBlock,
	matchFirstParagraph,
}

// Descriptor is the catalog entry for one prompt file.
type Descriptor struct {
	Name        string // file stem, also the destination stem
	Title       string
	Description string
	Path        string
}

// FileName returns the prompt's file name including its extension.
func (d Descriptor) FileName() string {
	return d.Name + branding.PromptExt()
}

// ParseFile reads the prompt at path and extracts its metadata. It never
// fails: unreadable files yield a descriptor built from the file stem and
// the default description.
func ParseFile(path string) Descriptor {
	name := stem(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultDescriptor(name, path)
	}
	return Parse(name, path, data)
}

// Parse extracts metadata from prompt content already in memory.
func Parse(name, path string, data []byte) Descriptor {
	content := string(data)
	if !utf8.ValidString(content) {
		content = strings.ToValidUTF8(content, "\uFFFD")
	}

	d := defaultDescriptor(name, path)

	if m := titleRe.FindStringSubmatch(content); m != nil {
		if title := strings.TrimRight(m[1], "\r \t"); title != "" {
			d.Title = title
		}
	}

	for _, match := range descriptionMatchers {
		if desc, ok := match(content); ok {
			d.Description = desc
			break
		}
	}

	d.Description = cleanDescription(d.Description)
	return d
}

func matchDescriptionField(content string) (string, bool) {
	m := descriptionRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func matchRoleBlock(content string) (string, bool) {
	m := roleRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return collapseLines(m[1]), true
}

func matchFirstParagraph(content string) (string, bool) {
	m := firstParagraphRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return collapseLines(m[1]), true
}

func collapseLines(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}

// cleanDescription strips one leading bullet marker, trims, and truncates to
// MaxDescriptionLen runes. An empty result falls back to the default.
func cleanDescription(desc string) string {
	desc = strings.TrimSpace(bulletRe.ReplaceAllString(desc, ""))
	if desc == "" {
		return branding.DefaultDescription()
	}

	if utf8.RuneCountInString(desc) > MaxDescriptionLen {
		runes := []rune(desc)
		desc = string(runes[:MaxDescriptionLen-len(ellipsis)]) + ellipsis
	}
	return desc
}

func defaultDescriptor(name, path string) Descriptor {
	return Descriptor{
		Name:        name,
		Title:       name,
		Description: branding.DefaultDescription(),
		Path:        path,
	}
}

func stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), branding.PromptExt())
}
