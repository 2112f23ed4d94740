package insightctl

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/startup-insights/insightctl/internal/startup"
)

var flagInteractive bool

func init() {
	cmd := &cobra.Command{
		Use:   "load [file]",
		Short: "Load startup records from a CSV or JSON file",
		Long:  "Loads startup records into the collection from a .csv or .json file, or interactively with --interactive. Records are validated before insert; duplicates by name are skipped.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLoad,
	}
	rootCmd.AddCommand(cmd)
	addMongoFlags(cmd)
	cmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "prompt for a single record on stdin")
}

func runLoad(cmd *cobra.Command, args []string) error {
	root, _ := filepath.Abs(".")
	lcfg, gcfg := loadConfigs(root)
	log := newLogger(lcfg, gcfg)

	var records []startup.Startup
	switch {
	case flagInteractive:
		rec, err := promptStartup(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		records = []startup.Startup{rec}
	case len(args) == 1:
		var err error
		switch strings.ToLower(filepath.Ext(args[0])) {
		case ".csv":
			records, err = startup.LoadCSV(args[0])
		case ".json":
			records, err = startup.LoadJSON(args[0])
		default:
			return fmt.Errorf("unsupported file type %q (want .csv or .json)", filepath.Ext(args[0]))
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("pass a file to load or use --interactive")
	}

	if err := startup.ValidateAll(records); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	s, _, err := openStore(ctx, root, log)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	sum, err := s.InsertStartups(ctx, records)
	if err != nil {
		return fmt.Errorf("insert records: %w", err)
	}
	fmt.Printf("Inserted %d record(s), skipped %d duplicate(s)\n", sum.Inserted, sum.Duplicates)
	return nil
}

// promptStartup reads one record field by field. Empty input keeps the
// shown default.
func promptStartup(in *os.File, out *os.File) (startup.Startup, error) {
	sc := bufio.NewScanner(in)
	ask := func(label, def string) string {
		if def != "" {
			fmt.Fprintf(out, "%s [%s]: ", label, def)
		} else {
			fmt.Fprintf(out, "%s: ", label)
		}
		if !sc.Scan() {
			return def
		}
		if v := strings.TrimSpace(sc.Text()); v != "" {
			return v
		}
		return def
	}

	var rec startup.Startup
	rec.Name = ask("Name", "")
	year, err := strconv.Atoi(ask("Founded year", ""))
	if err != nil {
		return rec, fmt.Errorf("founded year must be a number: %w", err)
	}
	rec.FoundedYear = year
	rec.Country = ask("Country", "")
	rec.City = ask("City", "")
	if raw := ask("Industries (comma-separated)", ""); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				rec.Industry = append(rec.Industry, part)
			}
		}
	}
	if raw := ask("Total funding USD", "0"); raw != "" {
		funding, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rec, fmt.Errorf("total funding must be a number: %w", err)
		}
		rec.TotalFundingUSD = funding
	}
	if raw := ask("Employee count", "0"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return rec, fmt.Errorf("employee count must be a number: %w", err)
		}
		rec.EmployeeCount = count
	}
	rec.Status = ask("Status (Operating/Acquired/Closed)", "Operating")
	return rec, sc.Err()
}
