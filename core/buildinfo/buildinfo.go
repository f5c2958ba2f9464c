// Package buildinfo carries version metadata stamped at link time:
//
//	go build -ldflags "-X 'github.com/m3rciful/tynys/core/buildinfo.Version=v0.3.0' \
//	  -X 'github.com/m3rciful/tynys/core/buildinfo.Commit=abcdef0' \
//	  -X 'github.com/m3rciful/tynys/core/buildinfo.Date=2026-01-01T00:00:00Z'"
package buildinfo

var (
	Version = "dev"
	Commit  = "local"
	// Date is the build timestamp in RFC3339, empty for local builds.
	Date = ""
)

// String renders the version line shown by /status.
func String() string {
	s := Version + " (" + Commit
	if Date != "" {
		s += ", " + Date
	}
	return s + ")"
}
