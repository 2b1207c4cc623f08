package scorematch

import (
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty prefix", func(c *Config) { c.Directory.RedisPrefix = "" }, "RedisPrefix"},
		{"otp digits too low", func(c *Config) { c.Challenge.OTPDigits = 3 }, "OTPDigits"},
		{"otp digits too high", func(c *Config) { c.Challenge.OTPDigits = 11 }, "OTPDigits"},
		{"domain without at", func(c *Config) { c.Validation.AllowedDomain = "gmail.com" }, "AllowedDomain"},
		{"domain without dot", func(c *Config) { c.Validation.AllowedDomain = "@gmail" }, "AllowedDomain"},
		{"zero password length", func(c *Config) { c.Validation.MinPasswordLength = 0 }, "MinPasswordLength"},
		{"zero refresh interval", func(c *Config) { c.Dashboard.RefreshInterval = 0 }, "RefreshInterval"},
		{"zero daily window", func(c *Config) { c.Dashboard.DailyWindow = 0 }, "DailyWindow"},
		{"negative debounce", func(c *Config) { c.EmailCheck.DebounceWindow = -1 }, "DebounceWindow"},
		{"zero check min length", func(c *Config) { c.EmailCheck.MinLength = 0 }, "MinLength"},
		{"audit enabled without buffer", func(c *Config) { c.Audit.Enabled = true; c.Audit.BufferSize = 0 }, "BufferSize"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}
