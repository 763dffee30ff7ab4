// Package config manages user-level settings stored at ~/.augprompt/config.yaml.
// It loads the file through Viper, validates it against an embedded JSON
// Schema, and exposes the keys that tune the prompt language and the source
// and target directories.
package config
