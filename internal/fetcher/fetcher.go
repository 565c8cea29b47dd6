// Package fetcher downloads remote data over HTTP with per-host rate
// limiting and retries.
package fetcher

import "context"

// Fetcher downloads remote resources.
type Fetcher interface {
	// Get fetches the URL and returns the response body. Extra headers are
	// applied on top of the default User-Agent.
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, error)

	// DownloadToFile fetches the URL and writes the body to path. Returns
	// bytes written.
	DownloadToFile(ctx context.Context, url string, path string, headers map[string]string) (int64, error)
}
