package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed database.max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.SMTP.validate(); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}

	if err := c.App.validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if c.Sweep.Concurrency < 1 {
		return fmt.Errorf("sweep.concurrency must be >= 1 (got %d)", c.Sweep.Concurrency)
	}

	return nil
}

func (s *SMTPConfig) validate() error {
	if strings.TrimSpace(s.Host) == "" {
		return fmt.Errorf("host is required")
	}
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", s.Timeout)
	}
	return nil
}

func (a *AppConfig) validate() error {
	a.PublicBaseURL = strings.TrimRight(strings.TrimSpace(a.PublicBaseURL), "/")

	u, err := url.Parse(a.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("public_base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("public_base_url must be an http(s) URL (got %q)", a.PublicBaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("public_base_url must include a host (got %q)", a.PublicBaseURL)
	}
	return nil
}
