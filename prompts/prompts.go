// Package prompts embeds the prompt set shipped with augprompt, used when no
// prompts directory is installed next to the binary.
package prompts

import "embed"

// FS holds the bundled prompt files at its root.
//
//go:embed *.md
var FS embed.FS
