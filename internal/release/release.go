// Package release constructs download URLs for ubi release assets.
//
// Asset naming follows the ubi release pipeline:
//
//	ubi-{platform}-{arch}{abi}.{ext}
//
// e.g. ubi-Linux-x86_64-musl.tar.gz, ubi-Darwin-aarch64.tar.gz,
// ubi-Windows-x86_64.zip.
package release

import (
	"fmt"

	"github.com/houseabsolute/bootstrap-ubi/internal/platform"
)

const (
	// Project is the GitHub repository releases are pulled from.
	Project = "houseabsolute/ubi"

	// ExeName is the name of the installed executable and of the archive
	// entry that holds it.
	ExeName = "ubi"

	// BaseURL is the release download root for the project.
	BaseURL = "https://github.com/" + Project + "/releases"
)

// Asset identifies one downloadable release artifact.
type Asset struct {
	Platform platform.Platform
	Arch     string
	Tag      string // empty means the latest release
}

// Filename returns the release asset filename.
func (a Asset) Filename() string {
	return fmt.Sprintf("%s-%s-%s%s.%s", ExeName, a.Platform.Name, a.Arch, a.Platform.ABI, a.Platform.Ext)
}

// DownloadURL returns the full download URL under base, pointing at the
// latest-release alias when no tag is pinned. An empty base means the
// canonical GitHub release root; tests pass their own.
func (a Asset) DownloadURL(base string) string {
	if base == "" {
		base = BaseURL
	}
	if a.Tag == "" {
		return fmt.Sprintf("%s/latest/download/%s", base, a.Filename())
	}
	return fmt.Sprintf("%s/download/%s/%s", base, a.Tag, a.Filename())
}

// ExeFilename returns the name the executable is installed under for
// the given platform. Windows assets carry an .exe entry.
func ExeFilename(p platform.Platform) string {
	if p.Name == "Windows" {
		return ExeName + ".exe"
	}
	return ExeName
}
