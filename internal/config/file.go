package config

import (
	"fmt"
	"time"
)

// MarkerConfig overrides the structural marker classes.
type MarkerConfig struct {
	// Table is the class marking the records table.
	Table string `yaml:"table,omitempty"`

	// Pagination is the class marking the pagination container.
	Pagination string `yaml:"pagination,omitempty"`
}

// File represents the structure of the .rosterscan configuration file.
// Every field is optional; unset fields leave the current value untouched.
type File struct {
	// BaseURL overrides the listing endpoint.
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout is a Go duration string such as "15s".
	Timeout string `yaml:"timeout,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent,omitempty"`

	// MaxBodySize overrides the body size limit in bytes.
	MaxBodySize int64 `yaml:"max_body_size,omitempty"`

	// VerifyTLS enables certificate verification when true.
	VerifyTLS *bool `yaml:"verify_tls,omitempty"`

	// Proxy is a SOCKS5 proxy address.
	Proxy string `yaml:"proxy,omitempty"`

	// Listing overrides individual listing query parameters.
	Listing ListingParams `yaml:"listing,omitempty"`

	// Markers overrides the structural marker classes.
	Markers MarkerConfig `yaml:"markers,omitempty"`
}

// Apply copies every set field of f onto cfg.
func (f *File) Apply(cfg *Config) error {
	if f.BaseURL != "" {
		cfg.BaseURL = f.BaseURL
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in config file: %w", f.Timeout, err)
		}
		cfg.Timeout = d
	}
	if f.UserAgent != "" {
		cfg.UserAgent = f.UserAgent
	}
	if f.MaxBodySize != 0 {
		cfg.MaxBodySize = f.MaxBodySize
	}
	if f.VerifyTLS != nil {
		cfg.VerifyTLS = *f.VerifyTLS
	}
	if f.Proxy != "" {
		cfg.ProxyAddress = f.Proxy
	}

	cfg.Listing = mergeListing(cfg.Listing, f.Listing)

	if f.Markers.Table != "" {
		cfg.TableClass = f.Markers.Table
	}
	if f.Markers.Pagination != "" {
		cfg.PaginationClass = f.Markers.Pagination
	}

	return nil
}

// mergeListing overrides the non-empty fields of base with those of override.
func mergeListing(base, override ListingParams) ListingParams {
	if override.Mode != "" {
		base.Mode = override.Mode
	}
	if override.All != "" {
		base.All = override.All
	}
	if override.Featured != "" {
		base.Featured = override.Featured
	}
	if override.Sort != "" {
		base.Sort = override.Sort
	}
	return base
}
