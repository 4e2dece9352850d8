package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"zignexweb/api"
	"zignexweb/services"
)

func exportCmd(src api.Source, now func() time.Time) *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export-submissions",
		Short: "Write recent contact submissions to an Excel or PDF file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var generate func(services.SubmissionExport) ([]byte, error)
			switch format {
			case "xlsx":
				generate = services.GenerateSubmissionsExcel
			case "pdf":
				generate = services.GenerateSubmissionsPDF
			default:
				return fmt.Errorf("export-submissions: unknown format %q (want xlsx or pdf)", format)
			}

			records, err := src.ContactSubmissions(cmd.Context())
			if err != nil {
				return fmt.Errorf("export-submissions: %w", err)
			}
			data, err := generate(services.BuildSubmissionExport(records, now()))
			if err != nil {
				return fmt.Errorf("export-submissions: %w", err)
			}

			if out == "" {
				out = "contact-submissions." + format
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("export-submissions: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d submission(s) to %s\n", len(records), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "xlsx", "output format: xlsx or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default contact-submissions.<format>)")
	return cmd
}
