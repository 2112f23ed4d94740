package insightctl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/startup-insights/insightctl/internal/detectors"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the secret categories the scanner detects",
		Run: func(_ *cobra.Command, _ []string) {
			for _, c := range detectors.Categories() {
				fmt.Println(c)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
