// Package config loads the fuzzdexctl demo CLI's TOML configuration: search
// defaults and logging options. None of this is read by the fuzzdex core
// library itself — every fuzzdex.Search call takes its options explicitly,
// the library holds no hidden global configuration of its own.
package config

// Config is the fuzzdexctl configuration file's root structure.
type Config struct {
	Search  SearchConfig  `toml:"search"`
	Logging LoggingConfig `toml:"logging"`
}

// SearchConfig holds the query defaults fuzzdexctl applies when a command's
// flags don't override them.
type SearchConfig struct {
	MaxDistance int `toml:"max_distance"`
	Limit       int `toml:"limit"`
}

// LoggingConfig holds logger setup read at process start.
type LoggingConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}
