// Package cli defines the Cobra command tree for the augprompt CLI. The root
// command copies the bundled prompts into the project (or lists them with
// --list); the version and config subcommands live in their own files.
// Commands delegate to internal packages for the work and only handle flags,
// output formatting, and exit status.
package cli
