package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dshills/checklint/internal/annotate"
)

// DefaultFile is the project-local config file name.
const DefaultFile = ".checklint.yml"

// Config represents the checklint configuration. The resolved value is
// serialized into the check-run report body, so every field carries a yaml tag.
type Config struct {
	CheckName string   `yaml:"checkName"`
	Findings  string   `yaml:"findings,omitempty"`
	Analyzer  Analyzer `yaml:"analyzer,omitempty"`
	RulesFile string   `yaml:"rulesFile,omitempty"`
	BatchSize int      `yaml:"batchSize"`
	Format    string   `yaml:"format"`
}

// Analyzer configures the external analyzer command whose stdout is the
// findings JSON. Empty Command means findings come from the Findings path.
type Analyzer struct {
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		CheckName: "checklint",
		BatchSize: 50,
		Format:    "text",
	}
}

// LoadFile loads config from path, or from DefaultFile in the working
// directory when path is empty. A missing default file is not an error.
func LoadFile(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to path as YAML.
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags; only non-zero values
// should be set.
func Load(filePath string, overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	mergeOverrides(&cfg, overrides)

	if cfg.BatchSize <= 0 {
		return Config{}, fmt.Errorf("batchSize must be positive, got %d", cfg.BatchSize)
	}
	if cfg.BatchSize > annotate.DefaultCapacity {
		return Config{}, fmt.Errorf("batchSize must be at most %d (the API's per-update annotation cap), got %d", annotate.DefaultCapacity, cfg.BatchSize)
	}
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.CheckName != "" {
		dst.CheckName = src.CheckName
	}
	if src.Findings != "" {
		dst.Findings = src.Findings
	}
	if src.Analyzer.Command != "" {
		dst.Analyzer = src.Analyzer
	}
	if src.RulesFile != "" {
		dst.RulesFile = src.RulesFile
	}
	if src.BatchSize > 0 {
		dst.BatchSize = src.BatchSize
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("CHECKLINT_CHECK_NAME"); v != "" {
		cfg.CheckName = v
	}
	if v := os.Getenv("CHECKLINT_FINDINGS"); v != "" {
		cfg.Findings = v
	}
	if v := os.Getenv("CHECKLINT_RULES_FILE"); v != "" {
		cfg.RulesFile = v
	}
	if v := os.Getenv("CHECKLINT_BATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHECKLINT_BATCH_SIZE must be an integer: %w", err)
		}
		cfg.BatchSize = n
	}
	if v := os.Getenv("CHECKLINT_FORMAT"); v != "" {
		cfg.Format = v
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["checkName"]; ok && v != "" {
		cfg.CheckName = v
	}
	if v, ok := overrides["findings"]; ok && v != "" {
		cfg.Findings = v
	}
	if v, ok := overrides["rulesFile"]; ok && v != "" {
		cfg.RulesFile = v
	}
	if v, ok := overrides["batchSize"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BatchSize = n
		}
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
}
