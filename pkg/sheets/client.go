// Package sheets is a minimal Google Sheets v4 client covering the
// operations the weekly upload needs: find or create a worksheet, clear
// it, and write values.
package sheets

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	"golang.org/x/oauth2/google"
)

const (
	defaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	scope          = "https://www.googleapis.com/auth/spreadsheets"

	newSheetRows = 1000
	newSheetCols = 26
)

// Client performs Google Sheets operations against one spreadsheet.
type Client interface {
	// SpreadsheetTitle returns the spreadsheet's display title.
	SpreadsheetTitle(ctx context.Context) (string, error)

	// EnsureWorksheet returns after the named tab exists, creating it if
	// needed.
	EnsureWorksheet(ctx context.Context, title string) error

	// ClearWorksheet removes all values from the named tab.
	ClearWorksheet(ctx context.Context, title string) error

	// UpdateValues writes rows starting at A1 with RAW input (no formula
	// or number coercion by the API).
	UpdateValues(ctx context.Context, title string, values [][]string) error
}

// Option configures the client.
type Option func(*restClient)

// WithBaseURL overrides the Sheets API base URL.
func WithBaseURL(u string) Option {
	return func(c *restClient) {
		c.baseURL = u
	}
}

// WithRestyClient replaces the authenticated client, bypassing
// service-account auth.
func WithRestyClient(rc *resty.Client) Option {
	return func(c *restClient) {
		c.http = rc
	}
}

type restClient struct {
	sheetID string
	baseURL string
	http    *resty.Client
}

// NewClient creates a Sheets client authenticated with the service-account
// JSON key at credentialsFile.
func NewClient(ctx context.Context, credentialsFile, sheetID string, opts ...Option) (Client, error) {
	c := &restClient{
		sheetID: sheetID,
		baseURL: defaultBaseURL,
	}
	for _, o := range opts {
		o(c)
	}

	if c.http == nil {
		key, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, eris.Wrap(err, "sheets: read credentials")
		}
		jwt, err := google.JWTConfigFromJSON(key, scope)
		if err != nil {
			return nil, eris.Wrap(err, "sheets: parse service account key")
		}
		c.http = resty.NewWithClient(jwt.Client(ctx))
	}

	return c, nil
}

type spreadsheet struct {
	Properties struct {
		Title string `json:"title"`
	} `json:"properties"`
	Sheets []struct {
		Properties struct {
			SheetID int64  `json:"sheetId"`
			Title   string `json:"title"`
		} `json:"properties"`
	} `json:"sheets"`
}

func (c *restClient) getSpreadsheet(ctx context.Context) (*spreadsheet, error) {
	var ss spreadsheet
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("fields", "properties.title,sheets.properties").
		SetResult(&ss).
		Get(c.baseURL + "/" + c.sheetID)
	if err != nil {
		return nil, eris.Wrap(err, "sheets: get spreadsheet")
	}
	if resp.IsError() {
		return nil, eris.Errorf("sheets: get spreadsheet: status %d: %s", resp.StatusCode(), resp.String())
	}
	return &ss, nil
}

func (c *restClient) SpreadsheetTitle(ctx context.Context) (string, error) {
	ss, err := c.getSpreadsheet(ctx)
	if err != nil {
		return "", err
	}
	return ss.Properties.Title, nil
}

func (c *restClient) EnsureWorksheet(ctx context.Context, title string) error {
	ss, err := c.getSpreadsheet(ctx)
	if err != nil {
		return err
	}
	for _, s := range ss.Sheets {
		if s.Properties.Title == title {
			return nil
		}
	}

	body := map[string]any{
		"requests": []any{
			map[string]any{
				"addSheet": map[string]any{
					"properties": map[string]any{
						"title": title,
						"gridProperties": map[string]int{
							"rowCount":    newSheetRows,
							"columnCount": newSheetCols,
						},
					},
				},
			},
		},
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.baseURL + "/" + c.sheetID + ":batchUpdate")
	if err != nil {
		return eris.Wrapf(err, "sheets: add worksheet %q", title)
	}
	if resp.IsError() {
		return eris.Errorf("sheets: add worksheet %q: status %d: %s", title, resp.StatusCode(), resp.String())
	}
	return nil
}

func (c *restClient) ClearWorksheet(ctx context.Context, title string) error {
	rng := url.PathEscape(fmt.Sprintf("'%s'", title))
	resp, err := c.http.R().
		SetContext(ctx).
		Post(c.baseURL + "/" + c.sheetID + "/values/" + rng + ":clear")
	if err != nil {
		return eris.Wrapf(err, "sheets: clear worksheet %q", title)
	}
	if resp.IsError() {
		return eris.Errorf("sheets: clear worksheet %q: status %d: %s", title, resp.StatusCode(), resp.String())
	}
	return nil
}

func (c *restClient) UpdateValues(ctx context.Context, title string, values [][]string) error {
	rng := fmt.Sprintf("'%s'!A1", title)
	rows := make([][]any, len(values))
	for i, row := range values {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		rows[i] = cells
	}

	body := map[string]any{
		"range":          rng,
		"majorDimension": "ROWS",
		"values":         rows,
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("valueInputOption", "RAW").
		SetBody(body).
		Put(c.baseURL + "/" + c.sheetID + "/values/" + url.PathEscape(rng))
	if err != nil {
		return eris.Wrapf(err, "sheets: update %q", title)
	}
	if resp.IsError() {
		return eris.Errorf("sheets: update %q: status %d: %s", title, resp.StatusCode(), resp.String())
	}
	return nil
}
