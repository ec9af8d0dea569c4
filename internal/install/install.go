// Package install orchestrates the bootstrap sequence that places the
// ubi executable into the target directory: resolve the target, resolve
// the host platform and architecture, build the release URL, download
// into a scoped temporary workspace, extract, and report whether the
// target directory is on PATH.
//
// The sequence is strictly linear. Each step either succeeds and
// advances or aborts the run with a typed error the caller maps to a
// process exit code.
package install

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/houseabsolute/bootstrap-ubi/internal/config"
	"github.com/houseabsolute/bootstrap-ubi/internal/extract"
	"github.com/houseabsolute/bootstrap-ubi/internal/fetch"
	"github.com/houseabsolute/bootstrap-ubi/internal/platform"
	"github.com/houseabsolute/bootstrap-ubi/internal/release"
)

// TargetError reports a target directory that does not exist before the
// run starts. The directory is a precondition; it is never created.
type TargetError struct {
	Dir string
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("the install target directory %s does not exist", e.Dir)
}

// Result describes a completed install.
type Result struct {
	ExePath   string // full path of the installed executable
	TargetDir string // resolved install directory
	OnPath    bool   // whether TargetDir is a PATH element
}

// Installer runs the bootstrap sequence.
type Installer struct {
	cfg       *config.Config
	host      *platform.Host
	fetcher   *fetch.Fetcher
	extractor *extract.Extractor
	logger    *log.Logger

	// overridden in tests
	releaseBase string
	workRoot    string
	euid        int
	pathEnv     func() string
}

// New creates an installer for the given configuration and detected host.
func New(cfg *config.Config, host *platform.Host, logger *log.Logger) *Installer {
	return &Installer{
		cfg:       cfg,
		host:      host,
		fetcher:   fetch.New(),
		extractor: extract.NewExtractor(),
		logger:    logger,
		euid:      os.Geteuid(),
		pathEnv:   func() string { return os.Getenv("PATH") },
	}
}

// Run executes the bootstrap sequence. The temporary workspace is
// removed on every exit path before Run returns.
func (i *Installer) Run(ctx context.Context) (*Result, error) {
	targetDir, err := i.resolveTarget()
	if err != nil {
		return nil, err
	}
	i.logger.Debug("resolved target directory", "dir", targetDir)

	plat, err := platform.ResolvePlatform(i.host.Kernel)
	if err != nil {
		return nil, err
	}

	arch, err := platform.ResolveArch(i.host.Machine)
	if err != nil {
		return nil, err
	}
	i.logger.Debug("resolved platform", "platform", plat.Name, "arch", arch)

	asset := release.Asset{Platform: plat, Arch: arch, Tag: i.cfg.Tag}
	url := asset.DownloadURL(i.releaseBase)
	i.logger.Info("downloading", "url", url)

	workDir, err := os.MkdirTemp(i.workRoot, "bootstrap-ubi-*")
	if err != nil {
		return nil, fmt.Errorf("create temporary workspace: %w", err)
	}
	defer os.RemoveAll(workDir)

	archivePath := filepath.Join(workDir, asset.Filename())
	if err := i.fetcher.Download(ctx, url, archivePath); err != nil {
		return nil, err
	}

	exePath := filepath.Join(targetDir, release.ExeFilename(plat))
	if err := i.extract(plat, archivePath, exePath, targetDir); err != nil {
		return nil, err
	}
	i.logger.Info("installed", "path", exePath)

	return &Result{
		ExePath:   exePath,
		TargetDir: targetDir,
		OnPath:    DirOnPath(targetDir, i.pathEnv()),
	}, nil
}

// resolveTarget picks the install directory and verifies it exists.
func (i *Installer) resolveTarget() (string, error) {
	dir := i.cfg.TargetDir
	if dir == "" {
		var err error
		dir, err = config.DefaultTargetDir(i.euid)
		if err != nil {
			return "", err
		}
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", &TargetError{Dir: dir}
	}
	return dir, nil
}

// extract unpacks the downloaded archive per the platform's format: the
// single executable entry for tarballs, the full contents for zips (zip
// release assets contain only the executable).
func (i *Installer) extract(plat platform.Platform, archivePath, exePath, targetDir string) error {
	switch plat.Ext {
	case "tar.gz":
		if err := i.extractor.TarGzEntry(archivePath, exePath, release.ExeName); err != nil {
			return err
		}
	case "zip":
		if err := i.extractor.ZipAll(archivePath, targetDir); err != nil {
			return err
		}
	default:
		return fmt.Errorf("no extractor for archive extension %s", plat.Ext)
	}

	if _, err := os.Stat(exePath); err != nil {
		return fmt.Errorf("archive did not contain %s: %w", filepath.Base(exePath), err)
	}
	return extract.SetExecutable(exePath)
}

// DirOnPath reports whether dir appears as an exact colon-delimited
// element of pathEnv. The check mirrors the shell contract: no prefix
// matching, no symlink resolution.
func DirOnPath(dir, pathEnv string) bool {
	for _, elem := range strings.Split(pathEnv, ":") {
		if elem == dir {
			return true
		}
	}
	return false
}
