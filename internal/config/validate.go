package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Validation errors.
var (
	ErrInvalidBaseURL    = errors.New("base_url must be an absolute http(s) URL")
	ErrInvalidManageMode = errors.New("manage_mode must be 'link' or 'reload'")
	ErrInvalidTimeout    = errors.New("timeout must be a non-negative duration")
	ErrInvalidLogLevel   = errors.New("log_level must be debug, info, warn or error")
)

// validLogLevels is the list of accepted log_level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidationError wraps a validation error with context.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the config for values the client cannot work with.
// Only the shape of the config is checked; nothing is sent anywhere.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if err := ValidateBaseURL(c.API.BaseURL); err != nil {
		return err
	}
	if c.Dashboard.ManageMode != "" && c.Dashboard.ManageMode != ManageModeLink && c.Dashboard.ManageMode != ManageModeReload {
		return &ValidationError{
			Field:   "dashboard.manage_mode",
			Value:   c.Dashboard.ManageMode,
			Message: "must be 'link' or 'reload'",
			Err:     ErrInvalidManageMode,
		}
	}
	if c.API.Timeout != "" {
		d, err := time.ParseDuration(c.API.Timeout)
		if err != nil || d < 0 {
			return &ValidationError{
				Field:   "api.timeout",
				Value:   c.API.Timeout,
				Message: "must be a non-negative duration like \"10s\"",
				Err:     ErrInvalidTimeout,
			}
		}
	}
	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		return &ValidationError{
			Field:   "log_level",
			Value:   c.LogLevel,
			Message: "must be debug, info, warn or error",
			Err:     ErrInvalidLogLevel,
		}
	}
	return nil
}

// ValidateBaseURL accepts an empty value or an absolute http(s) URL.
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ValidationError{
			Field:   "api.base_url",
			Value:   raw,
			Message: "must be an absolute http(s) URL",
			Err:     ErrInvalidBaseURL,
		}
	}
	return nil
}
