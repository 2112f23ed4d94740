package startup

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadJSON reads an array of startup records from a JSON file.
func LoadJSON(path string) ([]Startup, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var records []Startup
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// LoadCSV reads startup records from a CSV file with a header row. Expected
// columns: name, founded_year, country, city, industry, total_funding_usd,
// employee_count, status. The industry column is a comma-separated list.
// Column order is free; unknown columns are ignored.
func LoadCSV(path string) ([]Startup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "founded_year", "country"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, required)
		}
	}

	field := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var records []Startup
	rowNum := 1
	for {
		row, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%s row %d: %w", path, rowNum, err)
		}
		rowNum++
		s := Startup{
			Name:    field(row, "name"),
			Country: field(row, "country"),
			City:    field(row, "city"),
			Status:  field(row, "status"),
		}
		if s.Status == "" {
			s.Status = "Operating"
		}
		s.FoundedYear, err = atoiField(field(row, "founded_year"), "founded_year", rowNum)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		s.EmployeeCount, _ = strconv.Atoi(field(row, "employee_count"))
		s.TotalFundingUSD, _ = strconv.ParseFloat(field(row, "total_funding_usd"), 64)
		if raw := field(row, "industry"); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				if part = strings.TrimSpace(part); part != "" {
					s.Industry = append(s.Industry, part)
				}
			}
		}
		records = append(records, s)
	}
	return records, nil
}

func atoiField(raw, name string, row int) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("row %d: empty %s", row, name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("row %d: bad %s %q", row, name, raw)
	}
	return v, nil
}
