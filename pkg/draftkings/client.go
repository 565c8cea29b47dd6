// Package draftkings talks to the public DraftKings draftgroups API and the
// player-salary CSV export behind it.
package draftkings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const (
	defaultBaseURL = "https://api.draftkings.com/draftgroups/v1/"
	csvBaseURL     = "https://www.draftkings.com/lineup/getavailableplayerscsv"

	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

// ErrLocked means the CSV export returned placeholder rows because the
// session is not authenticated.
var ErrLocked = eris.New("draftkings: csv export is locked, authentication required")

// Client performs DraftKings API operations.
type Client interface {
	// DraftGroups fetches all current draft groups.
	DraftGroups(ctx context.Context) (*DraftGroupsResponse, error)

	// FetchCSV downloads the salary CSV for the given export URL. Returns
	// ErrLocked when the response carries locked placeholder data.
	FetchCSV(ctx context.Context, csvURL string) ([]byte, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the draftgroups API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a DraftKings API client. No API key is needed; the
// draftgroups endpoint is public.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CSVURL builds the salary export URL for a draft group.
func CSVURL(group *DraftGroup) string {
	return fmt.Sprintf("%s?contestTypeId=%d&draftGroupId=%d",
		csvBaseURL, group.ContestType.ContestTypeID, group.DraftGroupID)
}

func (c *httpClient) DraftGroups(ctx context.Context) (*DraftGroupsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "draftkings: create request")
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "draftkings: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "draftkings: read response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("draftkings: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var result DraftGroupsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "draftkings: unmarshal response")
	}
	return &result, nil
}

func (c *httpClient) FetchCSV(ctx context.Context, csvURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "draftkings: create csv request")
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "draftkings: download csv")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "draftkings: read csv")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("draftkings: csv download returned status %d", resp.StatusCode)
	}

	if strings.Contains(string(body), "(LOCKED)") {
		return nil, ErrLocked
	}
	return body, nil
}
