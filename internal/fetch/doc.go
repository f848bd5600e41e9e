// Package fetch retrieves listing markup from the remote endpoint.
//
// A Fetcher performs exactly one bounded GET per call. It follows redirects,
// sends a browser-like User-Agent, limits the body size and decodes the
// body to UTF-8 from the charset declared in the Content-Type header or
// sniffed from the markup. There is no retry.
//
// # TLS
//
// Certificate verification is disabled by default because the upstream
// listing has historically been reached that way. This is a security
// trade-off: a network attacker can serve arbitrary markup. Callers that
// can verify should pass WithInsecureSkipVerify(false).
//
// # Proxy
//
// WithProxy routes all connections through a SOCKS5 proxy, given either as
// "host:port" or as "socks5://[user:pass@]host:port".
package fetch
