// Package config loads insightctl configuration from YAML files (repo-local
// and global) and database settings from the environment. Precedence is
// CLI flag > local file > global file > environment > built-in default.
package config
