// Package config loads the transfer client's settings from a YAML file.
// Values missing from the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"mobile-transfer/internal/domain"
)

// Config is the full client configuration.
type Config struct {
	Owner     domain.User      `yaml:"owner"`
	PIN       PINConfig        `yaml:"pin"`
	Limits    LimitsConfig     `yaml:"limits"`
	Lookup    LookupConfig     `yaml:"lookup"`
	Mock      MockConfig       `yaml:"mock"`
	Directory []domain.Contact `yaml:"directory"`
}

// PINConfig configures the PIN challenge.
type PINConfig struct {
	Code        string `yaml:"code"`
	Length      int    `yaml:"length"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// LimitsConfig holds the amount rules.
type LimitsConfig struct {
	MinAmount      decimal.Decimal `yaml:"min_amount"`
	MaxPerTransfer decimal.Decimal `yaml:"max_per_transfer"`
	// ServiceCeiling is enforced by the transfer service, not by the client.
	ServiceCeiling decimal.Decimal `yaml:"service_ceiling"`
}

// LookupConfig tunes account number lookups.
type LookupConfig struct {
	MinLength int           `yaml:"min_length"`
	Debounce  time.Duration `yaml:"debounce"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
}

// MockConfig shapes the simulated backend and device.
type MockConfig struct {
	LookupLatency      time.Duration        `yaml:"lookup_latency"`
	TransferLatency    time.Duration        `yaml:"transfer_latency"`
	ContactsLatency    time.Duration        `yaml:"contacts_latency"`
	FailureRate        float64              `yaml:"failure_rate"`
	BiometricAvailable bool                 `yaml:"biometric_available"`
	BiometricType      domain.BiometricType `yaml:"biometric_type"`
}

// Default returns the demo configuration.
func Default() Config {
	return Config{
		Owner: domain.User{
			ID:            "1",
			Name:          "Abdullah Fitri",
			AccountNumber: "1234567890",
			Balance:       decimal.RequireFromString("15420.50"),
			Email:         "fitri@email.com",
			Phone:         "+60123456789",
		},
		PIN: PINConfig{Code: "123456", Length: 6, MaxAttempts: 3},
		Limits: LimitsConfig{
			MinAmount:      decimal.NewFromInt(1),
			MaxPerTransfer: decimal.NewFromInt(50000),
			ServiceCeiling: decimal.NewFromInt(10000),
		},
		Lookup: LookupConfig{MinLength: 10, Debounce: 300 * time.Millisecond, CacheTTL: 5 * time.Minute},
		Mock: MockConfig{
			LookupLatency:      time.Second,
			TransferLatency:    2 * time.Second,
			ContactsLatency:    300 * time.Millisecond,
			FailureRate:        0.1,
			BiometricAvailable: true,
			BiometricType:      domain.BiometricFingerprint,
		},
		Directory: []domain.Contact{
			{ID: "1", Name: "Sarah Lee", AccountNumber: "9876543210", Bank: "Maybank", IsFrequent: true},
			{ID: "2", Name: "Ali Hassan", AccountNumber: "5555666677", Bank: "CIMB Bank", IsFrequent: true},
			{ID: "3", Name: "Siti Aminah", AccountNumber: "1111222233", Bank: "Public Bank"},
			{ID: "4", Name: "David Tan", AccountNumber: "4444555566", Bank: "Hong Leong Bank"},
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the flow cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Owner.AccountNumber == "" {
		errs = append(errs, errors.New("owner.account_number is required"))
	}
	if c.PIN.Length <= 0 || len(c.PIN.Code) != c.PIN.Length {
		errs = append(errs, fmt.Errorf("pin.code must have pin.length (%d) digits", c.PIN.Length))
	}
	if c.PIN.MaxAttempts <= 0 {
		errs = append(errs, errors.New("pin.max_attempts must be positive"))
	}
	if !c.Limits.MinAmount.IsPositive() {
		errs = append(errs, errors.New("limits.min_amount must be positive"))
	}
	if !c.Limits.MaxPerTransfer.IsPositive() || c.Limits.MaxPerTransfer.LessThan(c.Limits.MinAmount) {
		errs = append(errs, errors.New("limits.max_per_transfer must be positive and at least limits.min_amount"))
	}
	if !c.Limits.ServiceCeiling.IsPositive() {
		errs = append(errs, errors.New("limits.service_ceiling must be positive"))
	}
	if c.Lookup.MinLength <= 0 {
		errs = append(errs, errors.New("lookup.min_length must be positive"))
	}
	if c.Mock.FailureRate < 0 || c.Mock.FailureRate > 1 {
		errs = append(errs, fmt.Errorf("mock.failure_rate %v is outside [0, 1]", c.Mock.FailureRate))
	}
	return errors.Join(errs...)
}
