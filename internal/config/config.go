// Package config loads the TOML configuration of the cash command.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/govalues/cash"
)

// Remainder policies accepted by [AllocationConfig.Remainder].
const (
	RemainderFirst  = "first"
	RemainderLast   = "last"
	RemainderRandom = "random"
	RemainderNone   = "none"
)

// Config holds the complete command configuration.
type Config struct {
	Log        LogConfig        `toml:"log"`
	Allocation AllocationConfig `toml:"allocation"`
	Change     ChangeConfig     `toml:"change"`
}

// LogConfig holds diagnostics settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// AllocationConfig holds the defaults of the split and prorata commands.
type AllocationConfig struct {
	Remainder string `toml:"remainder"`
	// Seed of the random remainder policy. Zero picks a random seed.
	Seed uint64 `toml:"seed"`
}

// ChangeConfig holds the defaults of the change command.
type ChangeConfig struct {
	Optimal  bool `toml:"optimal"`
	MaxUnits int  `toml:"max_units"`
	// Denominations maps currency codes to face values of coins and notes.
	// Keys may be alphabetic or numeric codes in any case; Validate
	// rewrites them to upper-case alphabetic codes.
	Denominations map[string][]string `toml:"denominations"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Allocation: AllocationConfig{
			Remainder: RemainderFirst,
		},
		Change: ChangeConfig{
			Optimal:  true,
			MaxUnits: cash.DefaultMaxUnits,
			Denominations: map[string][]string{
				"USD": {"100", "50", "20", "10", "5", "1", "0.25", "0.10", "0.05", "0.01"},
				"EUR": {"500", "200", "100", "50", "20", "10", "5", "2", "1", "0.50", "0.20", "0.10", "0.05", "0.02", "0.01"},
				"GBP": {"50", "20", "10", "5", "2", "1", "0.50", "0.20", "0.10", "0.05", "0.02", "0.01"},
				"JPY": {"10000", "5000", "2000", "1000", "500", "100", "50", "10", "5", "1"},
				"CHF": {"1000", "200", "100", "50", "20", "10", "5", "2", "1", "0.50", "0.20", "0.10", "0.05"},
			},
		},
	}
}

// Load reads the configuration file at path on top of the defaults.
// An empty path or a missing file yields the defaults.
// Denomination sets in the file replace the built-in set of the same
// currency and keep the others.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	// The decoder merges into a non-nil map, so file sets are decoded apart
	// and laid over the built-in ones once their keys are canonical.
	builtin := cfg.Change.Denominations
	cfg.Change.Denominations = nil
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	file, err := canonicalDenominations(cfg.Change.Denominations)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	for code, values := range file {
		builtin[code] = values
	}
	cfg.Change.Denominations = builtin
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be checked by decoding alone and
// normalizes the remainder policy and the currency codes of denominations.
func (c *Config) Validate() error {
	p, err := ParseRemainder(c.Allocation.Remainder)
	if err != nil {
		return err
	}
	c.Allocation.Remainder = p
	if c.Change.MaxUnits <= 0 {
		return fmt.Errorf("change.max_units must be positive, got %d", c.Change.MaxUnits)
	}
	denoms, err := canonicalDenominations(c.Change.Denominations)
	if err != nil {
		return err
	}
	for code, values := range denoms {
		if _, err := cash.ParseDenominations(values...); err != nil {
			return fmt.Errorf("change.denominations.%s: %w", code, err)
		}
	}
	c.Change.Denominations = denoms
	return nil
}

// canonicalDenominations rekeys m by alphabetic currency code.
// Two keys naming the same currency are an error.
func canonicalDenominations(m map[string][]string) (map[string][]string, error) {
	res := make(map[string][]string, len(m))
	for code, values := range m {
		var curr cash.Currency
		if err := curr.UnmarshalText([]byte(code)); err != nil {
			return nil, fmt.Errorf("change.denominations: %w", err)
		}
		if _, ok := res[curr.Code()]; ok {
			return nil, fmt.Errorf("change.denominations: %v is given more than once", curr)
		}
		res[curr.Code()] = values
	}
	return res, nil
}

// ParseRemainder normalizes a remainder policy name.
func ParseRemainder(s string) (string, error) {
	switch p := strings.ToLower(strings.TrimSpace(s)); p {
	case RemainderFirst, RemainderLast, RemainderRandom, RemainderNone:
		return p, nil
	default:
		return "", fmt.Errorf("unknown remainder policy %q, want one of first, last, random, none", s)
	}
}

// Denominations returns the configured denominations of the currency.
// The second result is false if no set is configured for it.
// Keys are expected in the form left by [Config.Validate].
func (c *Config) Denominations(curr cash.Currency) ([]cash.Denomination, bool, error) {
	values, ok := c.Change.Denominations[curr.Code()]
	if !ok {
		return nil, false, nil
	}
	ds, err := cash.ParseDenominations(values...)
	if err != nil {
		return nil, true, fmt.Errorf("denominations of %v: %w", curr, err)
	}
	return ds, true, nil
}

// Currencies returns the codes of the currencies with configured
// denominations, sorted.
func (c *Config) Currencies() []string {
	codes := make([]string, 0, len(c.Change.Denominations))
	for code := range c.Change.Denominations {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
