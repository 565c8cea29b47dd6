package collect

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// SourceSpec is one entry in the source registry file.
type SourceSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Enabled     bool   `yaml:"enabled"`
	// QuickUpdate marks sources worth re-running mid-week. Salaries only
	// change once a week, odds and projections move daily.
	QuickUpdate bool `yaml:"quick_update"`
}

// Registry is the ordered set of configured sources.
type Registry struct {
	Sources []SourceSpec `yaml:"sources"`
}

// DefaultRegistry matches the stock sources.yaml shipped with the repo.
func DefaultRegistry() *Registry {
	return &Registry{Sources: []SourceSpec{
		{Name: "draftkings", Description: "DraftKings salaries", Enabled: true},
		{Name: "nfl_odds", Description: "NFL odds data", Enabled: true, QuickUpdate: true},
		{Name: "projections", Description: "Fantasy Footballers projections", Enabled: true, QuickUpdate: true},
		{Name: "sos", Description: "Strength of schedule tables", Enabled: false},
	}}
}

// LoadRegistry reads the registry file. A missing file yields the default
// registry rather than an error.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRegistry(), nil
		}
		return nil, eris.Wrapf(err, "collect: read registry %s", path)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, eris.Wrapf(err, "collect: parse registry %s", path)
	}
	if len(reg.Sources) == 0 {
		return nil, eris.Errorf("collect: registry %s lists no sources", path)
	}
	return &reg, nil
}

// Enabled returns the enabled source names in registry order.
func (r *Registry) Enabled() []string {
	var names []string
	for _, s := range r.Sources {
		if s.Enabled {
			names = append(names, s.Name)
		}
	}
	return names
}

// QuickUpdate returns the enabled sources flagged for mid-week refreshes.
func (r *Registry) QuickUpdate() []string {
	var names []string
	for _, s := range r.Sources {
		if s.Enabled && s.QuickUpdate {
			names = append(names, s.Name)
		}
	}
	return names
}
