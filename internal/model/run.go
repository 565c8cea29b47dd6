package model

import "time"

// RunStatus represents the final state of a workflow run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusPartial   RunStatus = "partial"
	RunStatusFailed    RunStatus = "failed"
)

// RunKind identifies which workflow produced a run record.
type RunKind string

const (
	RunKindCollect  RunKind = "collect"
	RunKindUpdate   RunKind = "update"
	RunKindOrganize RunKind = "organize"
)

// SourceResult records the outcome of a single collection source.
type SourceResult struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OK          bool   `json:"ok"`
	Error       string `json:"error,omitempty"`
}

// Run is one recorded execution of a collect/update/organize workflow.
type Run struct {
	ID          string         `json:"id"`
	Kind        RunKind        `json:"kind"`
	Status      RunStatus      `json:"status"`
	Sources     []SourceResult `json:"sources,omitempty"`
	FilesMoved  int            `json:"files_moved"`
	Uploaded    bool           `json:"uploaded"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}
