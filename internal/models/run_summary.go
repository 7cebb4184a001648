package models

import "time"

// RunStatus represents the outcome of a check cycle.
type RunStatus string

const (
	RunStatusChanged   RunStatus = "CHANGED"
	RunStatusUnchanged RunStatus = "UNCHANGED"
	RunStatusFailed    RunStatus = "FAILED"
)

// RunSummary collects what one check cycle did, for logging.
type RunSummary struct {
	RunID              string
	PageURL            string
	StartTime          time.Time
	EndTime            time.Time
	Status             RunStatus
	FilesFound         int
	NewFiles           int
	ChangedFiles       int
	PartialProbes      int
	SnapshotWritten    bool
	NotificationErrors []string
}

// Duration returns the wall time of the cycle.
func (s RunSummary) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}
