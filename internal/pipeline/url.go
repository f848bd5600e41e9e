package pipeline

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/nao1215/rosterscan/internal/config"
	"github.com/nao1215/rosterscan/internal/model"
)

// BuildURL composes the listing URL for req.
//
// The fixed listing parameters and the page number are always sent; search
// is added only when the query is non-empty. Query parameters already
// present on baseURL are kept unless overridden.
func BuildURL(baseURL string, params config.ListingParams, req model.PageRequest) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: must be absolute", baseURL)
	}

	q := u.Query()
	setIfNotEmpty(q, "mode", params.Mode)
	setIfNotEmpty(q, "all", params.All)
	setIfNotEmpty(q, "featured", params.Featured)
	setIfNotEmpty(q, "sort", params.Sort)
	q.Set("page", strconv.Itoa(req.Page))
	if req.SearchQuery != "" {
		q.Set("search", req.SearchQuery)
	} else {
		q.Del("search")
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
