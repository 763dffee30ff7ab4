// Package prompt reads the bundled prompt catalog. It lists the prompt files
// in a directory and extracts a title and a short description from each
// file using a fixed, ordered set of text heuristics.
package prompt
