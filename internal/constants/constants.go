// Package constants holds values specific to the fuzzdexctl demo CLI: its
// name and default config file location. Search tuning (max_distance,
// limit) are fuzzdex library defaults, not CLI constants — see
// fuzzdex.DefaultMaxDistance and fuzzdex.DefaultLimit, which internal/config
// reads directly so the two never drift apart.
package constants

const (
	AppName    = "fuzzdexctl"
	ConfigPath = "~/.config/fuzzdexctl/fuzzdexctl.toml"
)
