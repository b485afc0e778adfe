// Package registry looks up published package versions from an npm-style
// registry. Lookups are purely informational for the pipeline: every
// failure maps to VersionUnknown and is never retried.
package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aidanlsb/bifrost/internal/jsondoc"
)

// VersionUnknown is reported when a lookup fails or times out.
const VersionUnknown = "unknown"

// maxBodyBytes bounds how much of a registry response is read.
const maxBodyBytes = 1 << 20

// Client queries a package registry.
type Client struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
}

// New creates a client for the given registry endpoint. The timeout bounds
// each individual lookup.
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		timeout:  timeout,
		http:     &http.Client{Timeout: timeout},
	}
}

// LatestVersion returns the latest published version of pkg, or
// VersionUnknown on any failure. It never returns an error: a missing or
// unreachable registry must not abort the batch.
func (c *Client) LatestVersion(ctx context.Context, pkg string) string {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := fmt.Sprintf("%s/%s/latest", c.endpoint, url.PathEscape(pkg))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return VersionUnknown
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return VersionUnknown
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return VersionUnknown
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return VersionUnknown
	}
	version, err := jsondoc.GetString(body, "version")
	if err != nil || version == "" {
		return VersionUnknown
	}
	return version
}
