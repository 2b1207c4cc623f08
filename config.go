package scorematch

import (
	"errors"
	"strings"
	"time"
)

// Config defines a public type used by ScoreMatch APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Directory  DirectoryConfig
	Challenge  ChallengeConfig
	Validation ValidationConfig
	Dashboard  DashboardConfig
	EmailCheck EmailCheckConfig
	Audit      AuditConfig
	Metrics    MetricsConfig
}

/*
====================================
DIRECTORY CONFIG
====================================
*/

// DirectoryConfig defines a public type used by ScoreMatch APIs.
//
// DirectoryConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type DirectoryConfig struct {
	RedisPrefix      string
	SeedDemoAccounts bool
}

/*
====================================
CHALLENGE CONFIG
====================================
*/

// ChallengeConfig defines a public type used by ScoreMatch APIs.
//
// ChallengeConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ChallengeConfig struct {
	OTPDigits int
}

/*
====================================
VALIDATION CONFIG
====================================
*/

// ValidationConfig defines a public type used by ScoreMatch APIs.
//
// ValidationConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ValidationConfig struct {
	AllowedDomain     string // suffix match, e.g. "@gmail.com"
	MinPasswordLength int
}

/*
====================================
DASHBOARD CONFIG
====================================
*/

// DashboardConfig defines a public type used by ScoreMatch APIs.
//
// DashboardConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type DashboardConfig struct {
	RefreshInterval time.Duration
	DailyWindow     time.Duration
}

/*
====================================
EMAIL CHECK CONFIG
====================================
*/

// EmailCheckConfig defines a public type used by ScoreMatch APIs.
//
// EmailCheckConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type EmailCheckConfig struct {
	DebounceWindow   time.Duration
	SimulatedLatency time.Duration
	MinLength        int
}

// AuditConfig defines a public type used by ScoreMatch APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by ScoreMatch APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		Directory: DirectoryConfig{
			RedisPrefix:      "sm",
			SeedDemoAccounts: true,
		},
		Challenge: ChallengeConfig{
			OTPDigits: 6,
		},
		Validation: ValidationConfig{
			AllowedDomain:     "@gmail.com",
			MinPasswordLength: 6,
		},
		Dashboard: DashboardConfig{
			RefreshInterval: 30 * time.Second,
			DailyWindow:     24 * time.Hour,
		},
		EmailCheck: EmailCheckConfig{
			DebounceWindow:   500 * time.Millisecond,
			SimulatedLatency: 300 * time.Millisecond,
			MinLength:        5,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig may return an error when input validation, dependency calls, or security checks fail.
// DefaultConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultConfig() Config {
	return defaultConfig()
}

func cloneConfig(cfg Config) Config {
	// All fields are value types today; the clone point stays so nested
	// reference fields added later cannot leak through the builder.
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// Directory
	if c.Directory.RedisPrefix == "" {
		return errors.New("Directory RedisPrefix must not be empty")
	}

	// Challenge
	if c.Challenge.OTPDigits < 4 || c.Challenge.OTPDigits > 10 {
		return errors.New("Challenge OTPDigits must be between 4 and 10")
	}

	// Validation
	if !strings.HasPrefix(c.Validation.AllowedDomain, "@") {
		return errors.New("Validation AllowedDomain must start with '@'")
	}
	if !strings.Contains(c.Validation.AllowedDomain, ".") {
		return errors.New("Validation AllowedDomain must contain a dot")
	}
	if c.Validation.MinPasswordLength <= 0 {
		return errors.New("Validation MinPasswordLength must be > 0")
	}

	// Dashboard
	if c.Dashboard.RefreshInterval <= 0 {
		return errors.New("Dashboard RefreshInterval must be > 0")
	}
	if c.Dashboard.DailyWindow <= 0 {
		return errors.New("Dashboard DailyWindow must be > 0")
	}

	// Email check
	if c.EmailCheck.DebounceWindow < 0 {
		return errors.New("EmailCheck DebounceWindow must be >= 0")
	}
	if c.EmailCheck.SimulatedLatency < 0 {
		return errors.New("EmailCheck SimulatedLatency must be >= 0")
	}
	if c.EmailCheck.MinLength <= 0 {
		return errors.New("EmailCheck MinLength must be > 0")
	}

	// Audit
	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	return nil
}
