package pixelcipher

// Version is the library version, set at build time via ldflags:
//
//	go build -ldflags "-X pixelcipher.Version=$(git describe --tags --always)" ./...
//
// If not set at build time, defaults to "dev".
var Version = "dev"

// GitCommit is the git commit hash, set at build time via ldflags.
var GitCommit = "unknown"

// VersionInfo returns a formatted version string, e.g. "v1.2.0 (commit abc1234)".
func VersionInfo() string {
	return Version + " (commit " + GitCommit + ")"
}
