package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"zignexweb/api"
	"zignexweb/handlers"
	"zignexweb/page"
)

func probeCmd(src api.Source, timeout time.Duration) *cobra.Command {
	var retries int

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Load every page's data once and report which pages would fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, batch := range handlers.PublicBatches(src) {
				loader := page.NewLoader(batch.Resources...)
				loader.Timeout = timeout

				start := time.Now()
				state := loader.Load(cmd.Context())
				for i := 0; state == page.Failed && i < retries; i++ {
					state, _ = loader.Retry(cmd.Context())
				}
				elapsed := time.Since(start).Round(time.Millisecond)

				if state == page.Ready {
					fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-6s %s  attempts=%d\n", batch.Name, state, elapsed, loader.Attempts())
					continue
				}
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-6s %s  attempts=%d  %v\n", batch.Name, state, elapsed, loader.Attempts(), loader.Err())
			}
			if failed > 0 {
				return fmt.Errorf("probe: %d page(s) failed to load", failed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&retries, "retries", 1, "retry a failed page this many times before reporting it")
	return cmd
}
