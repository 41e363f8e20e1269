package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifefinance/navigator/internal/app"
	"github.com/lifefinance/navigator/internal/service"
)

func SeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the life-cycle plan catalog (embedded default or --file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				n, err := seed(a, file)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d plan templates\n", n)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML catalog to load instead of the embedded one")
	return cmd
}

func seed(a *app.App, file string) (int, error) {
	if file == "" {
		return a.SeedService.SeedPlans()
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return 0, fmt.Errorf("read catalog: %w", err)
	}
	templates, err := service.ParsePlanTemplates(data)
	if err != nil {
		return 0, err
	}
	return a.SeedService.ReplacePlans(templates)
}
