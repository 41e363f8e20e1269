package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lifefinance/navigator/internal/app"
)

func ImportAnalysisCmd() *cobra.Command {
	var (
		file   string
		fromS3 bool
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "import-analysis",
		Short: "Upsert article analyses from a JSON/YAML export or the S3 bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (file == "") == !fromS3 {
				return errors.New("exactly one of --file or --s3 is required")
			}

			return withApp(func(a *app.App) error {
				var (
					n   int
					err error
				)
				if fromS3 {
					if prefix == "" {
						prefix = a.Cfg.S3AnalysisPrefix
					}
					n, err = a.AnalysisImportService.ImportS3(cmd.Context(), prefix)
				} else {
					n, err = a.AnalysisImportService.ImportFile(file)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d articles\n", n)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to a .json, .yaml or .yml export")
	cmd.Flags().BoolVar(&fromS3, "s3", false, "import every export under the configured bucket prefix")
	cmd.Flags().StringVar(&prefix, "prefix", "", "override S3_ANALYSIS_PREFIX")
	return cmd
}
