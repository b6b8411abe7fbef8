// Package version holds the fuzzdexctl demo CLI's version string.
package version

// Version is the fuzzdexctl release version, following semver.
const Version = "0.1.0"
