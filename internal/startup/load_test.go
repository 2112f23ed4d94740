package startup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "startups.json")
	content := `[
  {"name": "Acme", "founded_year": 2018, "country": "USA", "city": "Austin",
   "industry": ["SaaS"], "total_funding_usd": 1500000, "employee_count": 12,
   "status": "Operating"}
]`
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))

	records, err := LoadJSON(p)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0].Name)
	assert.Equal(t, 2018, records[0].FoundedYear)
	assert.Equal(t, []string{"SaaS"}, records[0].Industry)
	assert.NoError(t, records[0].Validate())
}

func TestLoadJSONBadFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0644))
	_, err = LoadJSON(p)
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	p := filepath.Join(t.TempDir(), "startups.csv")
	content := "name,founded_year,country,city,industry,total_funding_usd,employee_count,status\n" +
		"Acme,2018,USA,Austin,\"SaaS, DevTools\",1500000,12,Operating\n" +
		"Globex,2015,Germany,Berlin,Logistics,900000,30,\n"
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))

	records, err := LoadCSV(p)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"SaaS", "DevTools"}, records[0].Industry)
	assert.Equal(t, 1500000.0, records[0].TotalFundingUSD)
	// empty status defaults to Operating
	assert.Equal(t, "Operating", records[1].Status)
	assert.NoError(t, ValidateAll(records))
}

func TestLoadCSVMissingColumn(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(p, []byte("name,city\nAcme,Austin\n"), 0644))
	_, err := LoadCSV(p)
	assert.ErrorContains(t, err, "founded_year")
}

func TestValidateRejectsBadRecords(t *testing.T) {
	cases := []Startup{
		{FoundedYear: 2018, Country: "USA", Status: "Operating"},              // no name
		{Name: "X", FoundedYear: 1200, Country: "USA", Status: "Operating"},   // absurd year
		{Name: "X", FoundedYear: 2018, Country: "USA", Status: "Liquidated"}, // bad status
		{Name: "X", FoundedYear: 2018, Country: "USA", Status: "Operating", TotalFundingUSD: -5},
	}
	for i, s := range cases {
		if err := s.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestSampleDataIsValid(t *testing.T) {
	data := SampleData()
	require.Len(t, data, 5)
	assert.NoError(t, ValidateAll(data))
	names := map[string]bool{}
	for _, s := range data {
		names[s.Name] = true
	}
	assert.True(t, names["OpenAI"] && names["Stripe"] && names["Nubank"])
}
