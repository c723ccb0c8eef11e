package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordCost < 4 || c.Auth.PasswordCost > 31 {
		return fmt.Errorf("auth.password_cost must be between 4 and 31 (got %d)", c.Auth.PasswordCost)
	}

	if strings.TrimSpace(c.Mongo.Database) == "" {
		return fmt.Errorf("mongo.database must not be empty")
	}

	if c.Redis.Enabled() {
		if c.Redis.GeocodeTTL <= 0 || c.Redis.FilterOptsTTL <= 0 {
			return fmt.Errorf("redis ttls must be > 0")
		}
	}

	if c.Broker.Enabled() {
		if c.Broker.DialTimeout <= 0 || c.Broker.PublishTimeout <= 0 {
			return fmt.Errorf("broker timeouts must be > 0")
		}
		if c.Broker.BufferSize <= 0 {
			return fmt.Errorf("broker.buffer_size must be > 0 (got %d)", c.Broker.BufferSize)
		}
	}

	if err := c.Location.validate(); err != nil {
		return fmt.Errorf("location: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin)
	}

	return nil
}

func (l *LocationConfig) validate() error {
	if l.FallbackLatitude < -90 || l.FallbackLatitude > 90 {
		return fmt.Errorf("fallback_latitude out of range (got %v)", l.FallbackLatitude)
	}
	if l.FallbackLongitude < -180 || l.FallbackLongitude > 180 {
		return fmt.Errorf("fallback_longitude out of range (got %v)", l.FallbackLongitude)
	}
	return nil
}

// AllowedOriginList splits the comma-separated origin list.
func (c CORSConfig) AllowedOriginList() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
