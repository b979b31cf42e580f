package contract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/huangsam/slogate/schema"
)

// Default values for configuration.
const (
	DefaultPrecision  = 1
	DefaultReportsDir = "reports"
)

// SLORawInput holds a single SLO definition from the YAML config file.
// Optional fields are pointers so omitted values fall back to defaults.
type SLORawInput struct {
	Name            string   `mapstructure:"name"`
	Target          *float64 `mapstructure:"target"`
	Op              string   `mapstructure:"op"`
	WindowDays      *int     `mapstructure:"window-days"`
	BudgetAllowance *float64 `mapstructure:"budget-allowance"`
}

// Config holds the runtime configuration for a gate evaluation.
// This struct remains the "final, validated" config.
type Config struct {
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	ReportsDir   string
	SaveReports  bool
	SnapshotFile string

	BudgetWarning  float64
	BudgetCritical float64

	SLOs []schema.SLODefinition

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	ReportsDir       string `mapstructure:"reports-dir"`
	SnapshotFile     string `mapstructure:"snapshot-file"`
	BudgetWarning    float64 `mapstructure:"budget-warning"`
	BudgetCritical   float64 `mapstructure:"budget-critical"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from checkCmd.Flags() ---
	Save         bool   `mapstructure:"save"`
	TargetsStr   string `mapstructure:"targets-override"`

	// --- SLO definitions from config file ---
	SLOs []SLORawInput `mapstructure:"slos"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.SLOs != nil {
		clone.SLOs = make([]schema.SLODefinition, len(c.SLOs))
		copy(clone.SLOs, c.SLOs)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processBudgetThresholds(cfg, input); err != nil {
		return err
	}
	if err := processSLODefinitions(cfg, input); err != nil {
		return err
	}
	if err := processTargetsOverride(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.SnapshotFile = input.SnapshotFile
	cfg.SaveReports = input.Save

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	// --- 2. Reports Directory Validation ---
	cfg.ReportsDir = strings.TrimSpace(input.ReportsDir)
	if cfg.ReportsDir == "" {
		return fmt.Errorf("reports-dir cannot be empty")
	}

	return nil
}

// processBudgetThresholds validates the warning/critical consumption boundaries.
func processBudgetThresholds(cfg *Config, input *ConfigRawInput) error {
	cfg.BudgetWarning = input.BudgetWarning
	cfg.BudgetCritical = input.BudgetCritical

	if cfg.BudgetWarning < 0.0 {
		return fmt.Errorf("budget-warning must be non-negative (received %.2f)", cfg.BudgetWarning)
	}
	if cfg.BudgetCritical <= cfg.BudgetWarning {
		return fmt.Errorf("budget-critical (%.2f) must be greater than budget-warning (%.2f)", cfg.BudgetCritical, cfg.BudgetWarning)
	}
	return nil
}

// processSLODefinitions converts the raw config-file definitions into the
// final validated SLO set, falling back to the built-in definitions when the
// config file provides none. Operators are rejected here, at construction
// time, never at evaluation time.
func processSLODefinitions(cfg *Config, input *ConfigRawInput) error {
	if len(input.SLOs) == 0 {
		cfg.SLOs = schema.DefaultSLODefinitions()
		return nil
	}

	seen := make(map[string]struct{}, len(input.SLOs))
	defs := make([]schema.SLODefinition, 0, len(input.SLOs))

	for _, raw := range input.SLOs {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			return fmt.Errorf("slo definition is missing a name")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate slo definition %q", name)
		}
		seen[name] = struct{}{}

		if raw.Target == nil {
			return fmt.Errorf("slo %q is missing a target", name)
		}

		op, err := schema.ParseCompareOp(raw.Op)
		if err != nil {
			return fmt.Errorf("slo %q: %w", name, err)
		}

		def := schema.SLODefinition{
			Name:            name,
			Target:          *raw.Target,
			Op:              op,
			WindowDays:      30,
			BudgetAllowance: 1.0,
		}
		if raw.WindowDays != nil {
			if *raw.WindowDays <= 0 {
				return fmt.Errorf("slo %q: window-days must be positive (received %d)", name, *raw.WindowDays)
			}
			def.WindowDays = *raw.WindowDays
		}
		if raw.BudgetAllowance != nil {
			if *raw.BudgetAllowance < 0 {
				return fmt.Errorf("slo %q: budget-allowance must be non-negative (received %.2f)", name, *raw.BudgetAllowance)
			}
			def.BudgetAllowance = *raw.BudgetAllowance
		}
		defs = append(defs, def)
	}

	cfg.SLOs = defs
	return nil
}

// processTargetsOverride applies a "name:value,name:value" flag on top of the
// configured SLO targets. The flag takes precedence over config file settings.
func processTargetsOverride(cfg *Config, input *ConfigRawInput) error {
	if input.TargetsStr == "" {
		return nil
	}

	overrides, err := parseTargetsString(input.TargetsStr)
	if err != nil {
		return fmt.Errorf("invalid --targets-override format: %w", err)
	}

	for name, target := range overrides {
		found := false
		for i := range cfg.SLOs {
			if cfg.SLOs[i].Name == name {
				cfg.SLOs[i].Target = target
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("targets-override references unknown slo %q", name)
		}
	}
	return nil
}

// validateBackendConfig validates the history backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// parseTargetsString parses a string like "availability:99.9,error-rate:0.1"
// into a map of SLO name to target value.
func parseTargetsString(s string) (map[string]float64, error) {
	targets := make(map[string]float64)

	parts := strings.SplitSeq(s, ",")
	for part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keyValue := strings.Split(part, ":")
		if len(keyValue) != 2 {
			return nil, fmt.Errorf("invalid target format '%s', expected 'name:value'", part)
		}

		name := strings.TrimSpace(keyValue[0])
		valueStr := strings.TrimSpace(keyValue[1])

		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid target value '%s' for slo %s: %w", valueStr, name, err)
		}

		targets[name] = value
	}

	return targets, nil
}
