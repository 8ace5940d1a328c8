// Package version exposes build metadata stamped in at link time
package version

// set via -ldflags "-X folio/internal/core/version.Version=... etc"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is the wire shape for version reporting
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build info
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}
