package models

import "time"

// Snapshot is the persisted state of the last check.
type Snapshot struct {
	LastChecked string       `json:"lastChecked"`
	Files       []FileRecord `json:"files"`
}

// NewSnapshot builds a snapshot stamped with checkedAt in RFC 3339 UTC.
func NewSnapshot(files []FileRecord, checkedAt time.Time) Snapshot {
	if files == nil {
		files = []FileRecord{}
	}
	return Snapshot{
		LastChecked: checkedAt.UTC().Format(time.RFC3339),
		Files:       files,
	}
}

// IsEmpty reports whether the snapshot holds no files.
func (s Snapshot) IsEmpty() bool {
	return len(s.Files) == 0
}

// NewSnapshotFiles builds a snapshot with a preformatted lastChecked value.
func NewSnapshotFiles(files []FileRecord, lastChecked string) Snapshot {
	if files == nil {
		files = []FileRecord{}
	}
	return Snapshot{LastChecked: lastChecked, Files: files}
}
