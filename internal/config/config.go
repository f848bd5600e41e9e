package config

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/rosterscan/internal/extract"
	"github.com/nao1215/rosterscan/internal/fetch"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "rosterscan"

	// DefaultBaseURL is the roster listing endpoint.
	DefaultBaseURL = "https://pesdb.net/efootball/"

	// DefaultTimeout bounds one fetch, connection and transfer included.
	DefaultTimeout = fetch.DefaultTimeout

	// DefaultUserAgent is a generic browser identifier. The listing rejects
	// requests without one.
	DefaultUserAgent = fetch.DefaultUserAgent

	// DefaultMaxBodySize limits the maximum response body size to read.
	DefaultMaxBodySize = fetch.DefaultMaxBodySize

	// DefaultTableClass marks the records table.
	DefaultTableClass = extract.RecordsTableClass

	// DefaultPaginationClass marks the element holding the page links.
	DefaultPaginationClass = extract.PaginationClass
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// ListingParams are the fixed query parameters sent with every listing request.
type ListingParams struct {
	// Mode selects the roster variant.
	Mode string `yaml:"mode,omitempty"`

	// All includes every entry rather than a curated subset.
	All string `yaml:"all,omitempty"`

	// Featured includes featured entries.
	Featured string `yaml:"featured,omitempty"`

	// Sort is the sort key.
	Sort string `yaml:"sort,omitempty"`
}

// DefaultListingParams returns mode=authentic, all=1, featured=0, sort=id.
func DefaultListingParams() ListingParams {
	return ListingParams{
		Mode:     "authentic",
		All:      "1",
		Featured: "0",
		Sort:     "id",
	}
}

// Config holds all configuration options for rosterscan.
// This struct is populated from defaults, the config file, the environment
// and CLI flags, and passed through the application explicitly.
type Config struct {
	// BaseURL is the listing endpoint without query parameters.
	BaseURL string

	// Listing holds the fixed query parameters.
	Listing ListingParams

	// TableClass is the class marking the records table.
	TableClass string

	// PaginationClass is the class marking the pagination container.
	PaginationClass string

	// Timeout bounds the single fetch attempt.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with the request.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Set to 0 to use the default (5MB).
	MaxBodySize int64

	// VerifyTLS enables certificate verification. It is off by default
	// because the upstream endpoint has been reached that way.
	VerifyTLS bool

	// ProxyAddress routes the fetch through a SOCKS5 proxy when set.
	ProxyAddress string

	// Page is the 1-based page to fetch.
	Page int

	// SearchQuery filters the listing. Empty means no filter.
	SearchQuery string

	// Verbose enables detailed log output using slog.LevelDebug.
	Verbose bool

	// LogFormat selects text or JSON log lines on stderr.
	LogFormat string

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// RawJSON writes the bare PageResult instead of the wrapped report.
	// It implies JSONReport.
	RawJSON bool

	// HidePager omits the page selector from text output.
	HidePager bool

	// ReportFile is the output file path. Empty means stdout.
	ReportFile string

	// Tee also writes the result to stdout when ReportFile is set.
	Tee bool

	// MetricsFile receives Prometheus metrics in text format when set.
	MetricsFile string

	// FailOnError makes the CLI exit non-zero when the result carries an error.
	FailOnError bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:         DefaultBaseURL,
		Listing:         DefaultListingParams(),
		TableClass:      DefaultTableClass,
		PaginationClass: DefaultPaginationClass,
		Timeout:         DefaultTimeout,
		UserAgent:       DefaultUserAgent,
		MaxBodySize:     DefaultMaxBodySize,
		Page:            1,
		LogFormat:       LogFormatText,
	}
}

// XDGConfigDir returns the XDG config directory for rosterscan.
// On Linux: ~/.config/rosterscan
// On macOS: ~/Library/Application Support/rosterscan
// On Windows: %APPDATA%\rosterscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the config file path inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if !isHTTPURL(c.BaseURL) {
		return ErrInvalidBaseURL
	}

	if c.Page < 1 {
		return ErrInvalidPage
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.ProxyAddress != "" && !isValidProxyAddress(c.ProxyAddress) {
		return ErrInvalidProxyAddress
	}

	if !isValidMarker(c.TableClass) || !isValidMarker(c.PaginationClass) {
		return ErrInvalidMarker
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return ErrInvalidLogFormat
	}

	if c.Tee && c.ReportFile == "" {
		return ErrTeeWithoutOutput
	}

	return nil
}

// isHTTPURL reports whether raw is an absolute http(s) URL with a host.
func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// isValidProxyAddress checks address against the grammar the fetcher dials.
func isValidProxyAddress(address string) bool {
	_, _, err := fetch.ParseProxy(address)
	return err == nil
}

// isValidMarker reports whether class is a single class token.
func isValidMarker(class string) bool {
	return class != "" && !strings.ContainsAny(class, " \t\r\n\f")
}
