package collect

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/gridiron-tools/dfs-cli/internal/browser"
	"github.com/gridiron-tools/dfs-cli/internal/season"
	"github.com/gridiron-tools/dfs-cli/pkg/draftkings"
	"github.com/gridiron-tools/dfs-cli/pkg/rotowire"
)

const (
	dkSalariesFilename = "DraftKings NFL Salaries.csv"

	projectionsURL = "https://www.thefantasyfootballers.com/2025-ultimate-dfs-pass/dfs-pass-lineup-optimizer/"
	sosBaseURL     = "https://www.thefantasyfootballers.com/footclan/strength-of-schedule/"
)

// sosPositions maps display names to the URL-encoded position parameter.
// Order matters: tabs open in this sequence.
var sosPositions = []struct {
	Name string
	Code string
}{
	{"QB", "QB"},
	{"RB", "RB"},
	{"WR", "WR"},
	{"TE", "TE"},
	{"D/ST", "D%2FST"},
}

// Deps carries everything the built-in sources need.
type Deps struct {
	DraftKings draftkings.Client
	Rotowire   rotowire.Client
	Launcher   browser.Launcher
	Confirmer  browser.Confirmer
	StagingDir string
	Season     season.Params
	Now        func() time.Time

	// PageWait overrides the pause after opening a browser page.
	PageWait time.Duration
}

func (d Deps) pageWait() time.Duration {
	if d.PageWait > 0 {
		return d.PageWait
	}
	return browser.PageLoadWait
}

// BuildSources maps registry names to Source implementations, preserving
// order. Unknown names are skipped with a warning.
func BuildSources(names []string, deps Deps) []Source {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	var sources []Source
	for _, name := range names {
		switch name {
		case "draftkings":
			sources = append(sources, &DraftKingsSource{deps: deps})
		case "nfl_odds":
			sources = append(sources, &OddsSource{deps: deps})
		case "projections":
			sources = append(sources, &ProjectionsSource{deps: deps})
		case "sos":
			sources = append(sources, &SOSSource{deps: deps})
		default:
			zap.L().Warn("unknown source in registry", zap.String("source", name))
		}
	}
	return sources
}

// uniquePath returns path, or a timestamp-suffixed variant when the file
// already exists.
func uniquePath(dir, filename string) string {
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err != nil {
		return path
	}
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	stamp := time.Now().Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, stamp, ext))
}

// DraftKingsSource downloads the main-slate salary CSV. The export needs an
// authenticated session, so a locked response falls back to opening the URL
// in the user's logged-in browser.
type DraftKingsSource struct {
	deps Deps
}

func (s *DraftKingsSource) Name() string        { return "draftkings" }
func (s *DraftKingsSource) Description() string { return "DraftKings salaries" }

func (s *DraftKingsSource) Collect(ctx context.Context) error {
	groups, err := s.deps.DraftKings.DraftGroups(ctx)
	if err != nil {
		return err
	}
	slate, err := draftkings.MainSlate(groups)
	if err != nil {
		return err
	}
	csvURL := draftkings.CSVURL(slate)
	zap.L().Info("main slate selected",
		zap.Int("draft_group", slate.DraftGroupID),
		zap.Int("games", len(slate.Games)),
	)

	body, err := s.deps.DraftKings.FetchCSV(ctx, csvURL)
	if err == nil {
		path := uniquePath(s.deps.StagingDir, dkSalariesFilename)
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return eris.Wrapf(err, "collect: write %s", path)
		}
		zap.L().Info("salary csv downloaded directly", zap.String("path", path))
		return nil
	}
	if !eris.Is(err, draftkings.ErrLocked) {
		return err
	}

	// Authenticated download through the user's own browser session.
	zap.L().Info("direct download locked, opening browser", zap.String("url", csvURL))
	if err := s.deps.Launcher.OpenURL(ctx, csvURL); err != nil {
		return err
	}
	select {
	case <-time.After(s.deps.pageWait()):
	case <-ctx.Done():
		return ctx.Err()
	}
	_ = s.deps.Launcher.CloseTab(ctx)

	s.deps.Confirmer.Confirm([]string{
		"Log into DraftKings if prompted",
		fmt.Sprintf("The CSV should download as %q", dkSalariesFilename),
	})
	return nil
}

// OddsSource fetches DraftKings lines from Rotowire and writes them as a
// CSV into staging, where the organizer picks them up like any other
// download.
type OddsSource struct {
	deps Deps
}

func (s *OddsSource) Name() string        { return "nfl_odds" }
func (s *OddsSource) Description() string { return "NFL odds data" }

func (s *OddsSource) Collect(ctx context.Context) error {
	week := season.WeekFor(s.deps.Now(), s.deps.Season)
	year := s.deps.Season.Start.Year()

	games, err := s.deps.Rotowire.GamesByMarket(ctx, week, year)
	if err != nil {
		return err
	}
	odds := rotowire.ParseOdds(games)
	if len(odds) == 0 {
		return eris.Errorf("collect: no DraftKings odds posted for week %d", week)
	}

	filename := fmt.Sprintf("NFL_Odds_Week_%d_%d_DraftKings.csv", week, year)
	path := uniquePath(s.deps.StagingDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "collect: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.WriteAll(rotowire.ToRecords(odds)); err != nil {
		return eris.Wrapf(err, "collect: write %s", path)
	}

	zap.L().Info("odds csv written",
		zap.String("path", path),
		zap.Int("teams", len(odds)),
		zap.Int("week", week),
	)
	return nil
}

// ProjectionsSource opens the projections export page. The download itself
// is a manual step behind a paywalled login.
type ProjectionsSource struct {
	deps Deps
}

func (s *ProjectionsSource) Name() string        { return "projections" }
func (s *ProjectionsSource) Description() string { return "Fantasy Footballers projections" }

func (s *ProjectionsSource) Collect(ctx context.Context) error {
	if err := s.deps.Launcher.OpenURL(ctx, projectionsURL); err != nil {
		return err
	}
	select {
	case <-time.After(s.deps.pageWait()):
	case <-ctx.Done():
		return ctx.Err()
	}

	confirmed := s.deps.Confirmer.Confirm([]string{
		"Log into the Fantasy Footballers site if prompted",
		"Open the lineup optimizer and export the projections CSV",
	})
	_ = s.deps.Launcher.CloseTab(ctx)
	if !confirmed {
		zap.L().Warn("projections download not confirmed, relying on staging scan")
	}
	return nil
}

// SOSSource walks the strength-of-schedule pages, one position at a time.
type SOSSource struct {
	deps Deps
}

func (s *SOSSource) Name() string        { return "sos" }
func (s *SOSSource) Description() string { return "Strength of schedule tables" }

func (s *SOSSource) Collect(ctx context.Context) error {
	var errs []error
	for _, pos := range sosPositions {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		url := fmt.Sprintf("%s?position=%s", sosBaseURL, pos.Code)
		if err := s.deps.Launcher.OpenURL(ctx, url); err != nil {
			errs = append(errs, err)
			continue
		}
		select {
		case <-time.After(s.deps.pageWait()):
		case <-ctx.Done():
			return ctx.Err()
		}

		s.deps.Confirmer.Confirm([]string{
			fmt.Sprintf("Select the current week on the %s page", pos.Name),
			"Download the CSV",
		})
		_ = s.deps.Launcher.CloseTab(ctx)
	}

	if len(errs) > 0 {
		return eris.Errorf("collect: %d of %d position pages failed to open", len(errs), len(sosPositions))
	}
	return nil
}
