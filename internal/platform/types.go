// Package platform resolves the host kernel and CPU into the identifiers
// used to name ubi release assets.
//
// Resolution is table-driven and deliberately strict: only kernel and
// machine names the release pipeline actually publishes assets for are
// accepted. Anything else is a hard error so the caller fails loudly
// instead of downloading a binary that cannot run.
package platform

import "context"

// Platform describes one supported release platform.
type Platform struct {
	Name string // release asset platform name, e.g. "Linux"
	Ext  string // archive extension, "tar.gz" or "zip"
	ABI  string // ABI suffix appended to the asset filename, e.g. "-musl"
}

// Host carries the raw identifiers detected on the running machine.
// Keeping the raw strings here lets the resolvers stay pure functions
// that are trivial to test.
type Host struct {
	Kernel  string // uname -s style kernel name, e.g. "Linux"
	Machine string // uname -m style machine hardware name, e.g. "x86_64"
}

// Detector is the interface for host detection.
type Detector interface {
	Detect(ctx context.Context) (*Host, error)
}
