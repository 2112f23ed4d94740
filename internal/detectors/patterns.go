package detectors

import "regexp"

// Pattern pairs a compiled regular expression with the category label
// reported for its matches. The set is fixed at scan start.
type Pattern struct {
	Re       *regexp.Regexp
	Category string
}

var defaults = []Pattern{
	{regexp.MustCompile(`(?i)mongodb\+srv://[^<][^"']+`), "MongoDB connection string"},
	{regexp.MustCompile(`(?i)password\s*=\s*["'][^"']{8,}["']`), "Hardcoded password"},
	{regexp.MustCompile(`(?i)api[_-]?key\s*=\s*["'][^"']+["']`), "API key"},
	{regexp.MustCompile(`(?i)secret\s*=\s*["'][^"']+["']`), "Secret key"},
	{regexp.MustCompile(`\b(?:AKIA|ASIA)[A-Z0-9]{16}\b`), "AWS access key ID"},
	{regexp.MustCompile(`-----BEGIN (?:RSA |EC |OPENSSH |DSA )?PRIVATE KEY-----`), "Private key block"},
}

// Defaults returns a copy of the built-in pattern set.
func Defaults() []Pattern {
	out := make([]Pattern, len(defaults))
	copy(out, defaults)
	return out
}

// Categories returns the category labels of the built-in pattern set, in
// pattern order.
func Categories() []string {
	out := make([]string, 0, len(defaults))
	for _, p := range defaults {
		out = append(out, p.Category)
	}
	return out
}
