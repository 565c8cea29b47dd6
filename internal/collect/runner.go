// Package collect runs the configured data sources and reports per-source
// outcomes. Sources run sequentially: two of them drive the same browser
// and must not interleave.
package collect

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/gridiron-tools/dfs-cli/internal/model"
)

// sourceTimeout bounds a single source, manual browser steps included.
const sourceTimeout = 5 * time.Minute

// Source collects one category of weekly data into the staging directory.
type Source interface {
	Name() string
	Description() string
	Collect(ctx context.Context) error
}

// Runner executes sources in order.
type Runner struct {
	timeout time.Duration
}

// NewRunner returns a Runner with the default per-source timeout.
func NewRunner() *Runner {
	return &Runner{timeout: sourceTimeout}
}

// Run executes each source, recovering from panics so one misbehaving
// source cannot take down the run.
func (r *Runner) Run(ctx context.Context, sources []Source) []model.SourceResult {
	results := make([]model.SourceResult, 0, len(sources))
	for _, src := range sources {
		zap.L().Info("collecting", zap.String("source", src.Name()))

		err := r.collectOne(ctx, src)
		result := model.SourceResult{
			Name:        src.Name(),
			Description: src.Description(),
			OK:          err == nil,
		}
		if err != nil {
			result.Error = err.Error()
			zap.L().Error("source failed",
				zap.String("source", src.Name()),
				zap.Error(err),
			)
		} else {
			zap.L().Info("source completed", zap.String("source", src.Name()))
		}
		results = append(results, result)
	}
	return results
}

func (r *Runner) collectOne(ctx context.Context, src Source) (err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			err = eris.Errorf("collect: source %s panicked: %v", src.Name(), rec)
		}
	}()

	return src.Collect(ctx)
}
