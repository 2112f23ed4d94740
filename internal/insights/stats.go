// Package insights computes aggregate funding statistics over startup
// records: totals, averages, top-N ranking, and grouping by country. All
// functions are pure; the store feeds them plain slices.
package insights

import (
	"fmt"
	"sort"

	"github.com/startup-insights/insightctl/internal/startup"
)

// FundingStats summarizes total_funding_usd across a set of records.
type FundingStats struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
}

// Funding computes funding statistics. An empty input yields the zero value.
func Funding(records []startup.Startup) FundingStats {
	var s FundingStats
	if len(records) == 0 {
		return s
	}
	s.Min = records[0].TotalFundingUSD
	for _, r := range records {
		f := r.TotalFundingUSD
		s.Total += f
		if f > s.Max {
			s.Max = f
		}
		if f < s.Min {
			s.Min = f
		}
	}
	s.Average = s.Total / float64(len(records))
	return s
}

// TopFunded returns the n records with the highest total funding, sorted
// descending. Ties break by name for deterministic output. n <= 0 yields
// nil.
func TopFunded(records []startup.Startup, n int) []startup.Startup {
	if n <= 0 {
		return nil
	}
	out := make([]startup.Startup, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalFundingUSD != out[j].TotalFundingUSD {
			return out[i].TotalFundingUSD > out[j].TotalFundingUSD
		}
		return out[i].Name < out[j].Name
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// CountryCount is one row of the by-country grouping.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// ByCountry groups records by country, most-represented first. Records with
// an empty country are grouped under "Unknown".
func ByCountry(records []startup.Startup) []CountryCount {
	counts := map[string]int{}
	for _, r := range records {
		c := r.Country
		if c == "" {
			c = "Unknown"
		}
		counts[c]++
	}
	out := make([]CountryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CountryCount{Country: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Country < out[j].Country
	})
	return out
}

// FormatCurrency renders a USD amount with a B/M/K suffix.
func FormatCurrency(amount float64) string {
	switch {
	case amount >= 1_000_000_000:
		return fmt.Sprintf("$%.2fB", amount/1_000_000_000)
	case amount >= 1_000_000:
		return fmt.Sprintf("$%.2fM", amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("$%.2fK", amount/1_000)
	default:
		return fmt.Sprintf("$%.2f", amount)
	}
}
