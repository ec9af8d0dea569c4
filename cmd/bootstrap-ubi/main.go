// Command bootstrap-ubi installs the ubi binary from its GitHub
// releases. It is the first tool on a new machine, so it carries no
// state and no configuration file: behavior is controlled entirely by
// the TARGET and TAG environment variables and host introspection.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err != nil {
		os.Exit(exitCodeFor(err))
	}
}
