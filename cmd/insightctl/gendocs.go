package insightctl

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/startup-insights/insightctl/internal/detectors"
)

// gendocs regenerates the secret categories section in README.md between
// the markers <!-- BEGIN:SECRET_CATEGORIES --> and <!-- END:SECRET_CATEGORIES -->.
func init() {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate README secret categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := "README.md"
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			start := []byte("<!-- BEGIN:SECRET_CATEGORIES -->")
			end := []byte("<!-- END:SECRET_CATEGORIES -->")
			i := bytes.Index(b, start)
			j := bytes.Index(b, end)
			if i < 0 || j < 0 || j <= i {
				return fmt.Errorf("markers not found in README.md")
			}

			var out strings.Builder
			out.WriteString("\nThe scanner flags these categories (run `insightctl patterns` for the list):\n\n")
			for _, c := range detectors.Categories() {
				out.WriteString("- " + c + "\n")
			}

			var nb bytes.Buffer
			nb.Write(b[:i])
			nb.Write(start)
			nb.WriteString(out.String())
			nb.Write(end)
			nb.Write(b[j+len(end):])
			return os.WriteFile(path, nb.Bytes(), 0644)
		},
	}
	rootCmd.AddCommand(cmd)
}
