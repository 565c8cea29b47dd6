// Package rotowire reads DraftKings betting lines from Rotowire's
// games-by-market endpoint.
package rotowire

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rotisserie/eris"

	"github.com/gridiron-tools/dfs-cli/internal/fetcher"
)

const defaultBaseURL = "https://www.rotowire.com/betting/nfl/tables/nfl-games-by-market.php"

// requestHeaders mimic the site's own XHR call. The endpoint returns HTML
// without them.
var requestHeaders = map[string]string{
	"Accept":          "application/json, text/javascript, */*; q=0.01",
	"Accept-Language": "en-US,en;q=0.5",
	"Referer":         "https://www.rotowire.com/betting/nfl/odds",
}

// Client fetches betting markets.
type Client interface {
	// GamesByMarket returns one entry per team for the given week.
	GamesByMarket(ctx context.Context, week, season int) ([]Game, error)
}

// Game is one team's row in the games-by-market response.
type Game struct {
	Nickname      string     `json:"nickname"`
	GameDate      string     `json:"gameDate"`
	HomeAway      string     `json:"homeAway"`
	Abbr          string     `json:"abbr"`
	Moneyline     FlexString `json:"draftkings_moneyline"`
	Spread        FlexString `json:"draftkings_spread"`
	OverUnder     FlexString `json:"draftkings_ou"`
	TeamTotalOver FlexString `json:"draftkings_teamTotalOver"`
}

// FlexString absorbs fields the endpoint serves inconsistently as strings,
// numbers, or null.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	return eris.Errorf("rotowire: cannot decode %s as string or number", string(data))
}

// Option configures the client.
type Option func(*client)

// WithBaseURL overrides the default endpoint URL.
func WithBaseURL(u string) Option {
	return func(c *client) {
		c.baseURL = u
	}
}

type client struct {
	baseURL string
	fetch   fetcher.Fetcher
}

// NewClient creates a Rotowire client on top of the given fetcher.
func NewClient(f fetcher.Fetcher, opts ...Option) Client {
	c := &client{
		baseURL: defaultBaseURL,
		fetch:   f,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *client) GamesByMarket(ctx context.Context, week, season int) ([]Game, error) {
	q := url.Values{}
	q.Set("week", fmt.Sprint(week))
	q.Set("season", fmt.Sprint(season))

	body, err := c.fetch.Get(ctx, c.baseURL+"?"+q.Encode(), requestHeaders)
	if err != nil {
		return nil, eris.Wrapf(err, "rotowire: fetch week %d", week)
	}

	var games []Game
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, eris.Wrap(err, "rotowire: unmarshal response")
	}
	return games, nil
}
