package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	defaultDriver         = "pgx"
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "everkeep"
	defaultTokenDuration  = 24 * time.Hour
	defaultMailTimeout    = 15 * time.Second
)

// applyDefaults fills fields no source provided with sane local-development
// values. Secrets never get defaults.
func (c *StructuredConfig) applyDefaults() {
	if c.Storage.DB.Driver == "" {
		c.Storage.DB.Driver = defaultDriver
	}
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.Mail.Timeout == 0 {
		c.Mail.Timeout = defaultMailTimeout
	}
}

// validate reports every problem with the merged configuration at once via
// errors.Join, so an operator fixes a broken deployment in one pass.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: storage database uri", ErrRequiredConfigMissing))
	}
	if c.Storage.DB.Driver != "pgx" && c.Storage.DB.Driver != "sqlite3" {
		errs = append(errs, fmt.Errorf("%w: driver %q (want pgx or sqlite3)", ErrUnsupportedDriver, c.Storage.DB.Driver))
	}
	if c.App.PasswordHashKey == "" {
		errs = append(errs, fmt.Errorf("%w: app password hash key", ErrRequiredConfigMissing))
	}
	if c.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: app token sign key", ErrRequiredConfigMissing))
	}
	if c.App.TokenDuration < 0 {
		errs = append(errs, fmt.Errorf("%w: token duration %s", ErrInvalidConfigValue, c.App.TokenDuration))
	}
	if c.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout %s", ErrInvalidConfigValue, c.Server.RequestTimeout))
	}
	if c.Workers.ScanInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: scan interval %s", ErrInvalidConfigValue, c.Workers.ScanInterval))
	}
	if c.Mail.FunctionURL != "" && c.Mail.ServiceKey == "" {
		errs = append(errs, fmt.Errorf("%w: mail service key (function url is set)", ErrRequiredConfigMissing))
	}

	return errors.Join(errs...)
}
