// Package build carries version information stamped into the binary.
package build

// CurrentCommit is filled in at link time, e.g.
//
//	go build -ldflags "-X github.com/filecoin-project/ledger-bridge/build.CurrentCommit=+git.$(git rev-parse --short HEAD)" ./cmd/ledger-bridge
var CurrentCommit string

// BuildVersion is the release of the bridge.
const BuildVersion = "0.1.0"

// UserVersion is what `ledger-bridge --version` prints.
func UserVersion() string {
	return BuildVersion + CurrentCommit
}
