package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/houseabsolute/bootstrap-ubi/internal/config"
	"github.com/houseabsolute/bootstrap-ubi/internal/install"
	"github.com/houseabsolute/bootstrap-ubi/internal/platform"
	"github.com/houseabsolute/bootstrap-ubi/internal/release"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "bootstrap-ubi",
	Short: "Install the ubi binary from its GitHub releases",
	Long: `bootstrap-ubi downloads the prebuilt ubi binary released for this
machine's platform and architecture and installs it into a target
directory.

The target directory defaults to /usr/local/bin when running as root
and ~/bin otherwise; it must already exist. Set TARGET to override it.
Set TAG to pin a release version instead of installing the latest.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "bootstrap-ubi",
	})

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	host, err := platform.NewDetector().Detect(cmd.Context())
	if err != nil {
		return err
	}

	result, err := install.New(cfg, host, logger).Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%s has been installed to %s\n", release.ExeName, result.TargetDir)
	if !result.OnPath {
		fmt.Println(WarningStyle.Render(fmt.Sprintf(
			"It looks like %s is not in your PATH. You may want to add it to use %s.",
			result.TargetDir, release.ExeName,
		)))
	}

	return nil
}
