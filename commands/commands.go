// Package commands adds the site's maintenance subcommands to the
// application's cobra root.
package commands

import (
	"time"

	"github.com/spf13/cobra"

	"zignexweb/api"
)

// Register attaches every subcommand to root.
func Register(root *cobra.Command, src api.Source, pageTimeout time.Duration) {
	root.AddCommand(
		probeCmd(src, pageTimeout),
		exportCmd(src, time.Now),
	)
}
