package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Categories holds the closed vocabularies for each transaction kind.
// The first entry of each list is the default a blank or unrecognized
// category is coerced to.
type Categories struct {
	Expense []string `yaml:"expense_categories"`
	Income  []string `yaml:"income_categories"`
}

// DefaultCategories is the vocabulary the ledger ships with.
var DefaultCategories = Categories{
	Expense: []string{
		"Food", "Daily Goods", "Transport", "Social", "Entertainment",
		"Housing", "Utilities", "Medical", "Education", "Savings", "Other",
	},
	Income: []string{
		"Salary", "Bonus", "Side Job", "Investment", "Other Income",
	},
}

// ListFor returns the vocabulary for the given kind.
func (c Categories) ListFor(kind Kind) []string {
	if kind == Income {
		return c.Income
	}
	return c.Expense
}

// Normalize coerces a raw category to a member of the kind's list.
// Blank or unknown input maps to the list's first (default) entry;
// normalization never fails.
func (c Categories) Normalize(raw string, kind Kind) string {
	list := c.ListFor(kind)
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		return list[0]
	}
	for _, name := range list {
		if name == normalized {
			return normalized
		}
	}
	return list[0]
}

// validate enforces the invariants the pipeline depends on: both lists
// non-empty (Normalize needs a default entry) and disjoint.
func (c Categories) validate() error {
	if len(c.Expense) == 0 {
		return fmt.Errorf("expense_categories must not be empty")
	}
	if len(c.Income) == 0 {
		return fmt.Errorf("income_categories must not be empty")
	}
	seen := make(map[string]bool, len(c.Expense))
	for _, name := range c.Expense {
		seen[name] = true
	}
	for _, name := range c.Income {
		if seen[name] {
			return fmt.Errorf("category %q appears in both expense and income lists", name)
		}
	}
	return nil
}

type Config struct {
	// Currency is the ISO code used for display formatting.
	Currency string `yaml:"currency,omitempty"`

	Categories Categories `yaml:",inline"`
}

// DefaultConfigPath returns the default config file path (~/.kakeibo/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kakeibo", "config.yaml")
}

// NewDefaultConfig creates a config with the built-in vocabularies.
// Use this when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Currency:   "JPY",
		Categories: DefaultCategories,
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Missing sections fall back to the built-in defaults
	if cfg.Currency == "" {
		cfg.Currency = "JPY"
	}
	if len(cfg.Categories.Expense) == 0 {
		cfg.Categories.Expense = DefaultCategories.Expense
	}
	if len(cfg.Categories.Income) == 0 {
		cfg.Categories.Income = DefaultCategories.Income
	}

	if err := cfg.Categories.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
