package insightctl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/startup-insights/insightctl/internal/update"
)

func init() {
	var checkOnly bool
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update insightctl to the latest release",
		RunE: func(_ *cobra.Command, _ []string) error {
			latest, newer, err := update.Check(version, false)
			if err != nil {
				return fmt.Errorf("update check: %w", err)
			}
			if !newer {
				fmt.Println("already up to date")
				return nil
			}
			fmt.Printf("new version available: v%s (current v%s)\n", latest, version)
			if checkOnly {
				return nil
			}
			installed, err := selfUpdate()
			if err != nil {
				return fmt.Errorf("self-update: %w", err)
			}
			fmt.Printf("updated to v%s; re-run your command\n", installed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&checkOnly, "check", false, "only check, do not install")
	rootCmd.AddCommand(cmd)
}
