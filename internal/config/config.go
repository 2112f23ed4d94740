package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for insightctl.
// Pointer fields distinguish "unset" from zero so CLI > local > global
// merging works per field.
type FileConfig struct {
	Extensions  []string `yaml:"extensions"`
	ExcludeDirs []string `yaml:"exclude_dirs"`
	Exclude     *string  `yaml:"exclude"`
	MaxBytes    *int64   `yaml:"max_bytes"`
	NoColor     *bool    `yaml:"no_color"`
	NoCache     *bool    `yaml:"no_cache"`
	LogFile     *string  `yaml:"log_file"`

	Mongo *MongoConfig `yaml:"mongo"`
}

// MongoConfig overrides the environment-derived database settings.
type MongoConfig struct {
	URI        *string `yaml:"uri"`
	Database   *string `yaml:"database"`
	Collection *string `yaml:"collection"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .insightctl.yml/.yaml and insightctl.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".insightctl.yml", ".insightctl.yaml", "insightctl.yml", "insightctl.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "insightctl", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Database connection defaults, overridable via environment.
const (
	DefaultMongoURI   = "mongodb://localhost:27017/"
	DefaultDatabase   = "startup_insights"
	DefaultCollection = "startups"
)

// Mongo holds resolved database settings.
type Mongo struct {
	URI        string
	Database   string
	Collection string
}

// LoadMongo resolves database settings: file config wins over environment
// variables (MONGODB_URI, DATABASE_NAME, COLLECTION_NAME), which win over
// the defaults. A .env file in root is loaded into the environment first,
// if present.
func LoadMongo(root string, file *MongoConfig) Mongo {
	_ = godotenv.Load(filepath.Join(root, ".env"))
	m := Mongo{
		URI:        envOr("MONGODB_URI", DefaultMongoURI),
		Database:   envOr("DATABASE_NAME", DefaultDatabase),
		Collection: envOr("COLLECTION_NAME", DefaultCollection),
	}
	if file != nil {
		if file.URI != nil && *file.URI != "" {
			m.URI = *file.URI
		}
		if file.Database != nil && *file.Database != "" {
			m.Database = *file.Database
		}
		if file.Collection != nil && *file.Collection != "" {
			m.Collection = *file.Collection
		}
	}
	return m
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
