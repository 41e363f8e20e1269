package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lifefinance/navigator/internal/app"
)

func NotifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Send the report notification to every user once",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				report, err := a.NotificationService.Run(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "total=%d sent=%d failed=%d skipped=%d duration=%s\n",
					report.Total, report.Sent, report.Failed, report.Skipped, report.Duration)
				return nil
			})
		},
	}
}
