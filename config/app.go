package config

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/observability"
	"github.com/kbukum/querykit/validation"
)

// DefaultServiceName names the sample runner in logs, traces and config
// file lookups.
const DefaultServiceName = "querysamples"

// Config is the full configuration of the sample runner.
type Config struct {
	Base    BaseConfig           `yaml:"base" mapstructure:"base"`
	Logging logger.Config        `yaml:"logging" mapstructure:"logging"`
	Tracing observability.Config `yaml:"tracing" mapstructure:"tracing"`
	Samples SamplesConfig        `yaml:"samples" mapstructure:"samples"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	c.Base.ApplyDefaults()
	if c.Base.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
	c.Tracing.ApplyDefaults()
	c.Samples.ApplyDefaults()
}

// Validate validates every section, prefixing errors with the section name.
func (c *Config) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Tracing.Validate(); err != nil {
		return err
	}
	if err := c.Samples.Validate(); err != nil {
		return fmt.Errorf("samples: %w", err)
	}
	return nil
}

// SamplesConfig holds the parameters the samples filter with. The defaults
// are the values the sample descriptions are written around.
type SamplesConfig struct {
	// DataFile is a YAML dataset to load instead of the embedded seed.
	DataFile string `yaml:"data_file" mapstructure:"data_file"`
	// Default lists the samples "run" executes when none are named.
	Default []string `yaml:"default" mapstructure:"default" validate:"min=1"`

	NamePrefix   string `yaml:"name_prefix" mapstructure:"name_prefix" validate:"required"`
	MinCost      string `yaml:"min_cost" mapstructure:"min_cost" validate:"required,numeric"`
	Color        string `yaml:"color" mapstructure:"color" validate:"required"`
	MissingColor string `yaml:"missing_color" mapstructure:"missing_color" validate:"required"`
	ProductID    int    `yaml:"product_id" mapstructure:"product_id" validate:"gt=0"`
	Take         int    `yaml:"take" mapstructure:"take" validate:"gte=0"`
	Skip         int    `yaml:"skip" mapstructure:"skip" validate:"gte=0"`
	WhilePrefix  string `yaml:"while_prefix" mapstructure:"while_prefix" validate:"required"`
}

// DefaultSamplesConfig returns the sample parameters with every default set.
func DefaultSamplesConfig() SamplesConfig {
	var c SamplesConfig
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills every unset parameter.
func (c *SamplesConfig) ApplyDefaults() {
	if len(c.Default) == 0 {
		c.Default = []string{"distinct"}
	}
	if c.NamePrefix == "" {
		c.NamePrefix = "L"
	}
	if c.MinCost == "" {
		c.MinCost = "100"
	}
	if c.Color == "" {
		c.Color = "Red"
	}
	if c.MissingColor == "" {
		c.MissingColor = "asdf"
	}
	if c.ProductID == 0 {
		c.ProductID = 706
	}
	if c.Take == 0 {
		c.Take = 5
	}
	if c.Skip == 0 {
		c.Skip = 20
	}
	if c.WhilePrefix == "" {
		c.WhilePrefix = "A"
	}
}

// Validate checks the parameters through their validate tags.
func (c *SamplesConfig) Validate() error {
	return validation.Validate(c)
}

// MinCostAmount returns MinCost as a decimal. Call it after Validate.
func (c *SamplesConfig) MinCostAmount() decimal.Decimal {
	d, err := decimal.NewFromString(c.MinCost)
	if err != nil {
		return decimal.Zero
	}
	return d
}
