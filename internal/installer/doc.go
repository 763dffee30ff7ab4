// Package installer copies catalog prompts into the project's rules
// directory. It prepares the target directory, copies files one at a time in
// catalog (or caller) order, asks before overwriting when not forced, and
// aggregates per-file outcomes into a Report.
package installer
