// Package config loads process configuration by layering defaults, an
// optional YAML file and environment variables. All state is explicit:
// the loaded Config is passed into constructors and nothing is read
// from the environment after startup.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains process configuration for the ingestion jobs.
type Config struct {
	// MongoURI and MongoDatabase address the document store.
	MongoURI      string `koanf:"mongo_uri"`
	MongoDatabase string `koanf:"mongo_database"`

	// ProviderBaseURL is the timing API the jobs fetch from.
	ProviderBaseURL string `koanf:"provider_base_url"`

	// OutputDir is the root of the per-(year, round) result directories.
	OutputDir string `koanf:"output_dir"`

	// RefDataPath points to the static reference table (flags, track
	// map assets) keyed by location.
	RefDataPath string `koanf:"ref_data_path"`

	// LogDir holds the per-job rotating log files.
	LogDir string `koanf:"log_dir"`

	// VertexProjectID and VertexRegion configure the translation model.
	// Translation is optional; an empty project id disables it.
	VertexProjectID string `koanf:"vertex_project_id"`
	VertexRegion    string `koanf:"vertex_region"`

	// TargetLanguage is the language biography and FAQ fields are
	// translated into.
	TargetLanguage string `koanf:"target_language"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		MongoDatabase:  "gridmetrics",
		OutputDir:      "gp_results",
		RefDataPath:    "data.json",
		LogDir:         "logs",
		VertexRegion:   "us-central1",
		TargetLanguage: "Spanish",
	}
}

// Load builds a Config by layering defaults, optional file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if GRIDMETRICS_CONFIG is set
//  3. env (prefix GRIDMETRICS_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("GRIDMETRICS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: GRIDMETRICS_MONGO_URI, GRIDMETRICS_OUTPUT_DIR, ...
	envProvider := env.Provider("GRIDMETRICS_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "gridmetrics_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.ProviderBaseURL == "" {
		return nil, errors.New("provider_base_url must not be empty")
	}
	return &cfg, nil
}
