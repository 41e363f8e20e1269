package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lifefinance/navigator/cmd/admin/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "admin",
		Short:        "Operational tasks for the navigator service",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.SeedCmd())
	rootCmd.AddCommand(cmd.ImportAnalysisCmd())
	rootCmd.AddCommand(cmd.NotifyCmd())
	rootCmd.AddCommand(cmd.MigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
