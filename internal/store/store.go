// Package store persists run history for the weekly workflows.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/gridiron-tools/dfs-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus
	Kind   model.RunKind
	Limit  int
	Offset int
}

// Store defines the run-history persistence interface.
type Store interface {
	// CreateRun records the start of a workflow run.
	CreateRun(ctx context.Context, kind model.RunKind) (*model.Run, error)

	// CompleteRun records a run's final state.
	CompleteRun(ctx context.Context, run *model.Run) error

	// GetRun returns one run by id.
	GetRun(ctx context.Context, runID string) (*model.Run, error)

	// ListRuns returns runs matching the filter, newest first.
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open creates a Store for the configured driver.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "sqlite", "":
		return NewSQLite(dsn)
	case "postgres":
		return NewPostgres(ctx, dsn)
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
}
