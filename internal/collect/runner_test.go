package collect

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedSource struct {
	name string
	err  error
	fn   func(ctx context.Context) error
}

func (s scriptedSource) Name() string        { return s.name }
func (s scriptedSource) Description() string { return s.name + " data" }

func (s scriptedSource) Collect(ctx context.Context) error {
	if s.fn != nil {
		return s.fn(ctx)
	}
	return s.err
}

func TestRun_AllSucceed(t *testing.T) {
	results := NewRunner().Run(context.Background(), []Source{
		scriptedSource{name: "draftkings"},
		scriptedSource{name: "nfl_odds"},
	})

	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.OK, r.Name)
		assert.Empty(t, r.Error)
	}
}

func TestRun_FailureDoesNotStopLaterSources(t *testing.T) {
	results := NewRunner().Run(context.Background(), []Source{
		scriptedSource{name: "draftkings", err: eris.New("slate not found")},
		scriptedSource{name: "nfl_odds"},
	})

	require.Len(t, results, 2)
	assert.False(t, results[0].OK)
	assert.Contains(t, results[0].Error, "slate not found")
	assert.True(t, results[1].OK)
}

func TestRun_RecoversFromPanic(t *testing.T) {
	results := NewRunner().Run(context.Background(), []Source{
		scriptedSource{name: "projections", fn: func(context.Context) error {
			panic("nil map write")
		}},
		scriptedSource{name: "nfl_odds"},
	})

	require.Len(t, results, 2)
	assert.False(t, results[0].OK)
	assert.Contains(t, results[0].Error, "panicked")
	assert.True(t, results[1].OK)
}

func TestRun_PreservesOrder(t *testing.T) {
	results := NewRunner().Run(context.Background(), []Source{
		scriptedSource{name: "a"},
		scriptedSource{name: "b"},
		scriptedSource{name: "c"},
	})

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestRun_Empty(t *testing.T) {
	assert.Empty(t, NewRunner().Run(context.Background(), nil))
}
