package prompt

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/augprompt-labs/augprompt/internal/branding"
	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps the "did you mean" list.
const maxSuggestions = 3

// CatalogReadError is returned when the prompts directory cannot be listed.
type CatalogReadError struct {
	Dir string
	Err error
}

func (e *CatalogReadError) Error() string {
	return fmt.Sprintf("cannot read prompts directory %s: %v", e.Dir, e.Err)
}

func (e *CatalogReadError) Unwrap() error { return e.Err }

// Source is a set of prompt files: a directory on disk or the set embedded
// in the binary.
type Source struct {
	FS  fs.FS
	Dir string // where FS is rooted, for paths and messages
}

// DirSource returns the Source for a directory on disk.
func DirSource(dir string) Source {
	return Source{FS: os.DirFS(dir), Dir: dir}
}

// List returns a descriptor for every prompt file in dir, sorted by name.
func List(dir string) ([]Descriptor, error) {
	return DirSource(dir).List()
}

// List returns a descriptor for every prompt file in the source, sorted by
// name. Entries without the prompt extension and directories are ignored.
func (s Source) List() ([]Descriptor, error) {
	entries, err := fs.ReadDir(s.FS, ".")
	if err != nil {
		return nil, &CatalogReadError{Dir: s.Dir, Err: err}
	}

	var prompts []Descriptor
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), branding.PromptExt()) {
			continue
		}
		prompts = append(prompts, s.parse(entry.Name()))
	}

	sort.Slice(prompts, func(i, j int) bool {
		return prompts[i].Name < prompts[j].Name
	})
	return prompts, nil
}

func (s Source) parse(fileName string) Descriptor {
	path := filepath.Join(s.Dir, fileName)
	data, err := fs.ReadFile(s.FS, fileName)
	if err != nil {
		return defaultDescriptor(stem(fileName), path)
	}
	return Parse(stem(fileName), path, data)
}

// Lookup returns the file name of the prompt called name within the source,
// and whether it exists. Names that would escape the source are never found.
func (s Source) Lookup(name string) (string, bool) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", false
	}

	fileName := name + branding.PromptExt()
	info, err := fs.Stat(s.FS, fileName)
	if err != nil || info.IsDir() {
		return "", false
	}
	return fileName, true
}

// Read returns the raw content of the named prompt.
func (s Source) Read(name string) ([]byte, error) {
	fileName, ok := s.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("prompt %q not found in %s", name, s.Dir)
	}
	data, err := fs.ReadFile(s.FS, fileName)
	if err != nil {
		return nil, fmt.Errorf("reading prompt %s: %w", filepath.Join(s.Dir, fileName), err)
	}
	return data, nil
}

// Names returns the names of the given descriptors in order.
func Names(prompts []Descriptor) []string {
	names := make([]string, len(prompts))
	for i, p := range prompts {
		names[i] = p.Name
	}
	return names
}

// Suggest returns up to three catalog names that fuzzily match name, best
// match first.
func Suggest(name string, names []string) []string {
	matches := fuzzy.Find(name, names)

	var out []string
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
