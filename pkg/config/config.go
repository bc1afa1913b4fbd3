package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iamdhiraj69/mongo-copy/pkg/models"
)

const (
	DefaultBatchSize = 1000
	DefaultOutputDir = "./backup"

	envPrefix = "MONGOCOPY"
)

// Config is the resolved configuration for one run.
type Config struct {
	SourceURI   string   `mapstructure:"source"`
	DestURI     string   `mapstructure:"dest"`
	SourceDB    string   `mapstructure:"source-db"`
	DestDB      string   `mapstructure:"dest-db"`
	Collections []string `mapstructure:"-"`
	BatchSize   int      `mapstructure:"batch-size"`
	ExportJSON  bool     `mapstructure:"export"`
	ImportJSON  bool     `mapstructure:"import"`
	OutputDir   string   `mapstructure:"output-dir"`
	DryRun      bool     `mapstructure:"dry-run"`
	Yes         bool     `mapstructure:"yes"`
	LogJSON     bool     `mapstructure:"log-json"`
}

// Load resolves the configuration with priority flag > MONGOCOPY_* env >
// default, then validates it.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("batch-size", DefaultBatchSize)
	v.SetDefault("output-dir", DefaultOutputDir)

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags; %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config; %w", err)
	}
	cfg.Collections = splitCollections(v.GetString("collections"))
	if cfg.DestDB == "" {
		cfg.DestDB = cfg.SourceDB
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects impossible configurations before any I/O happens.
func (c *Config) Validate() error {
	if c.ExportJSON && c.ImportJSON {
		return errors.New("--export and --import are mutually exclusive")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.SourceURI == "" {
		return errors.New("source URI is required")
	}
	if c.SourceDB == "" {
		return errors.New("source database name is required")
	}
	if !c.ExportJSON && c.DestURI == "" {
		return errors.New("destination URI is required unless exporting")
	}
	if (c.ExportJSON || c.ImportJSON) && c.OutputDir == "" {
		return errors.New("output directory is required for export and import")
	}
	return nil
}

// Mode maps the mutually exclusive mode flags onto the job mode.
func (c *Config) Mode() models.Mode {
	switch {
	case c.ExportJSON:
		return models.ModeExportJSON
	case c.ImportJSON:
		return models.ModeImportJSON
	default:
		return models.ModeLive
	}
}

// Job builds the immutable job description the orchestrator runs.
func (c *Config) Job() models.TransferJob {
	return models.TransferJob{
		Collections: c.Collections,
		BatchSize:   c.BatchSize,
		Mode:        c.Mode(),
		DryRun:      c.DryRun,
		OutputDir:   c.OutputDir,
	}
}

// splitCollections parses the comma-separated collections value, dropping
// empty entries and surrounding whitespace.
func splitCollections(value string) []string {
	if value == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
