package fetch

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/net/proxy"
	"golang.org/x/text/transform"

	"github.com/nao1215/rosterscan/internal/metrics"
)

const (
	// DefaultTimeout bounds one fetch, connect and transfer included.
	DefaultTimeout = 15 * time.Second

	// DefaultUserAgent is a generic browser identifier.
	DefaultUserAgent = "Mozilla/5.0"

	// DefaultMaxBodySize caps how many body bytes are read.
	DefaultMaxBodySize int64 = 5 * 1024 * 1024

	// maxRedirects is the number of redirects followed before the last
	// response is returned as is.
	maxRedirects = 10
)

// Fetcher retrieves markup over HTTP(S).
type Fetcher struct {
	client *http.Client

	timeout            time.Duration
	userAgent          string
	maxBodySize        int64
	insecureSkipVerify bool
	proxyAddress       string

	logger  *slog.Logger
	metrics *metrics.Recorder

	// initErr is set when the transport could not be built.
	// It is reported by every Fetch call.
	initErr error
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the bound on a single fetch.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum number of body bytes read.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = size
	}
}

// WithInsecureSkipVerify toggles TLS certificate verification.
// The default is true (verification disabled).
func WithInsecureSkipVerify(skip bool) Option {
	return func(f *Fetcher) {
		f.insecureSkipVerify = skip
	}
}

// WithProxy routes connections through a SOCKS5 proxy.
func WithProxy(address string) Option {
	return func(f *Fetcher) {
		f.proxyAddress = address
	}
}

// WithHTTPClient replaces the HTTP client built from the other options.
// Timeout, proxy and TLS options are then the caller's responsibility,
// except the per-call timeout which still applies through the context.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(f *Fetcher) {
		f.metrics = m
	}
}

// New creates a Fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:            DefaultTimeout,
		userAgent:          DefaultUserAgent,
		maxBodySize:        DefaultMaxBodySize,
		insecureSkipVerify: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if f.timeout <= 0 {
		f.timeout = DefaultTimeout
	}
	if f.maxBodySize <= 0 {
		f.maxBodySize = DefaultMaxBodySize
	}
	if f.client == nil {
		f.client, f.initErr = f.newHTTPClient()
	}

	return f
}

// newHTTPClient builds the client used when none was supplied.
func (f *Fetcher) newHTTPClient() (*http.Client, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   f.timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: f.insecureSkipVerify, //nolint:gosec // opt-out is configurable
		},
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: f.timeout,
	}

	if f.proxyAddress != "" {
		hostport, auth, err := ParseProxy(f.proxyAddress)
		if err != nil {
			return nil, err
		}
		dialer, err := proxy.SOCKS5("tcp", hostport, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}
		contextDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, errors.New("SOCKS5 dialer does not support contexts")
		}
		transport.Proxy = nil
		transport.DialContext = contextDialer.DialContext
	}

	return &http.Client{
		Transport: transport,
		Timeout:   f.timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}, nil
}

// ParseProxy splits a proxy address into "host:port" and optional credentials.
// Accepted forms are "host:port" and "socks5://[user[:pass]@]host:port",
// with a port in 1-65535. Configuration validation uses the same grammar.
func ParseProxy(address string) (string, *proxy.Auth, error) {
	hostport := address
	var auth *proxy.Auth

	if strings.Contains(address, "://") {
		u, err := url.Parse(address)
		if err != nil {
			return "", nil, fmt.Errorf("invalid proxy address: %w", err)
		}
		if u.Scheme != "socks5" && u.Scheme != "socks5h" {
			return "", nil, fmt.Errorf("invalid proxy address: unsupported scheme %q", u.Scheme)
		}
		hostport = u.Host
		if u.User != nil {
			password, _ := u.User.Password()
			auth = &proxy.Auth{User: u.User.Username(), Password: password}
		}
	}

	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		return "", nil, fmt.Errorf("invalid proxy address: %w", err)
	}
	if host == "" || port == "" {
		return "", nil, errors.New("invalid proxy address: expected host:port")
	}
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return "", nil, fmt.Errorf("invalid proxy address: port %q out of range", port)
	}

	return hostport, auth, nil
}

// Fetch retrieves rawURL and returns the body decoded to UTF-8.
//
// Any non-empty body is returned, whatever the status code; a non-2xx
// status is only logged. Network failures, timeouts, invalid URLs and
// empty bodies are reported as *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	start := time.Now()

	if f.initErr != nil {
		f.metrics.ObserveFetch(metrics.OutcomeInvalid, time.Since(start), 0)
		return "", &FetchError{Reason: f.initErr.Error(), Err: f.initErr}
	}

	target, err := parseTarget(rawURL)
	if err != nil {
		f.metrics.ObserveFetch(metrics.OutcomeInvalid, time.Since(start), 0)
		return "", &FetchError{Reason: err.Error(), Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		f.metrics.ObserveFetch(metrics.OutcomeInvalid, time.Since(start), 0)
		return "", &FetchError{Reason: err.Error(), Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	f.logger.Debug("fetching listing", "url", target)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", f.transportError(ctx, err, start)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return "", f.transportError(ctx, err, start)
	}

	if len(raw) == 0 {
		f.metrics.ObserveFetch(metrics.OutcomeEmptyBody, time.Since(start), 0)
		return "", &FetchError{Reason: ErrEmptyBody.Error(), Err: ErrEmptyBody}
	}

	body := decode(raw, resp.Header.Get("Content-Type"))

	outcome := metrics.OutcomeSuccess
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = metrics.OutcomeHTTPError
		f.logger.Warn("listing responded with non-success status",
			"url", target,
			"status", resp.StatusCode,
		)
	}
	f.metrics.ObserveFetch(outcome, time.Since(start), len(body))

	f.logger.Debug("fetched listing",
		"url", target,
		"status", resp.StatusCode,
		"bytes", len(body),
		"elapsed", time.Since(start),
	)

	return body, nil
}

// transportError converts a client or body read failure into a FetchError.
func (f *Fetcher) transportError(ctx context.Context, err error, start time.Time) error {
	if isTimeout(ctx, err) {
		f.metrics.ObserveFetch(metrics.OutcomeTimeout, time.Since(start), 0)
		return &FetchError{
			Reason:  fmt.Sprintf("request timed out after %s", f.timeout),
			Err:     err,
			timeout: true,
		}
	}

	f.metrics.ObserveFetch(metrics.OutcomeNetwork, time.Since(start), 0)

	// url.Error prefixes the method and URL, which the caller already knows.
	reason := err.Error()
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		reason = urlErr.Err.Error()
	}
	return &FetchError{Reason: reason, Err: err}
}

// isTimeout reports whether err was caused by a deadline.
func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// parseTarget validates that rawURL is an absolute http(s) URL.
func parseTarget(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid URL %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid URL %q: missing host", rawURL)
	}
	return u.String(), nil
}

// decode converts raw to UTF-8 using the declared or sniffed charset.
// Undecodable input is returned unchanged. The sniffer only looks at the
// first 1024 bytes, so an uncertain guess never overrides a body that is
// valid UTF-8 as a whole.
func decode(raw []byte, contentType string) string {
	enc, name, certain := charset.DetermineEncoding(raw, contentType)
	if name == "utf-8" || (!certain && utf8.Valid(raw)) {
		return string(raw)
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}
