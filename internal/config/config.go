package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/statements/internal/fiscal"
	"github.com/cleared-dev/statements/internal/identifiers"
	"github.com/cleared-dev/statements/internal/rates"
)

// FileName is the project configuration file at the repository root.
const FileName = "statements.yaml"

// Config represents the top-level statements.yaml configuration.
type Config struct {
	Business  BusinessConfig  `yaml:"business"`
	Fiscal    FiscalConfig    `yaml:"fiscal"`
	Reporting ReportingConfig `yaml:"reporting"`
	Rates     RatesConfig     `yaml:"rates,omitempty"`
	Git       GitConfig       `yaml:"git"`
}

// BusinessConfig identifies the reporting entity.
type BusinessConfig struct {
	Name               string `yaml:"name" validate:"required"`
	EntityType         string `yaml:"entity_type" validate:"oneof=pty_ltd sole_proprietor"`
	RegistrationNumber string `yaml:"registration_number,omitempty" validate:"omitempty,company_reg"`
	TaxNumber          string `yaml:"tax_number,omitempty" validate:"omitempty,tax_ref"`
	VATNumber          string `yaml:"vat_number,omitempty" validate:"omitempty,vat_number"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start" validate:"required"` // "MM-DD" format, e.g. "03-01"
}

// ReportingConfig controls how reports are built and rendered.
type ReportingConfig struct {
	Currency  string `yaml:"currency"`
	Locale    string `yaml:"locale"`
	Tolerance string `yaml:"tolerance" validate:"required,numeric"`
	Format    string `yaml:"format" validate:"oneof=text json yaml"`
}

// RatesConfig overrides individual levy rates. Blank fields keep the default.
type RatesConfig struct {
	CorporateTax      string `yaml:"corporate_tax,omitempty" validate:"omitempty,numeric"`
	VAT               string `yaml:"vat,omitempty" validate:"omitempty,numeric"`
	SDL               string `yaml:"sdl,omitempty" validate:"omitempty,numeric"`
	SDLThreshold      string `yaml:"sdl_threshold,omitempty" validate:"omitempty,numeric"`
	UIF               string `yaml:"uif,omitempty" validate:"omitempty,numeric"`
	UIFMonthlyCeiling string `yaml:"uif_monthly_ceiling,omitempty" validate:"omitempty,numeric"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email" validate:"omitempty,email"`
}

// Path returns the config file path for a repository root.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, FileName)
}

// Load reads a statements.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("", "")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, entityType string) *Config {
	if entityType == "" {
		entityType = "pty_ltd"
	}
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: entityType,
		},
		Fiscal: FiscalConfig{
			YearStart: "03-01",
		},
		Reporting: ReportingConfig{
			Currency:  "R",
			Locale:    "en",
			Tolerance: "0.01",
			Format:    "text",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Statements",
			AuthorEmail: "statements@cleared.dev",
		},
	}
}

// Validate checks field formats and that derived values parse.
func (c *Config) Validate() error {
	if err := identifiers.NewValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.StartMonth(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Tolerance(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.LevyRates(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// StartMonth returns the first month of the financial year.
func (c *Config) StartMonth() (time.Month, error) {
	return fiscal.ParseYearStart(c.Fiscal.YearStart)
}

// Tolerance returns the rounding tolerance for balance checks.
func (c *Config) Tolerance() (decimal.Decimal, error) {
	tol, err := decimal.NewFromString(c.Reporting.Tolerance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing tolerance %q: %w", c.Reporting.Tolerance, err)
	}
	if !tol.IsPositive() {
		return decimal.Zero, fmt.Errorf("tolerance must be positive, got %s", tol)
	}
	return tol, nil
}

// LevyRates returns the default rates with any configured overrides applied.
func (c *Config) LevyRates() (rates.Rates, error) {
	r := rates.Default()
	overrides := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"corporate_tax", c.Rates.CorporateTax, &r.CorporateTaxRate},
		{"vat", c.Rates.VAT, &r.VATRate},
		{"sdl", c.Rates.SDL, &r.SDLRate},
		{"sdl_threshold", c.Rates.SDLThreshold, &r.SDLThreshold},
		{"uif", c.Rates.UIF, &r.UIFRate},
		{"uif_monthly_ceiling", c.Rates.UIFMonthlyCeiling, &r.UIFMonthlyCeiling},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		v, err := decimal.NewFromString(o.value)
		if err != nil {
			return rates.Rates{}, fmt.Errorf("parsing rate %s: %w", o.name, err)
		}
		if v.IsNegative() {
			return rates.Rates{}, fmt.Errorf("rate %s must not be negative", o.name)
		}
		*o.dst = v
	}
	return r, nil
}
