package models

// ChangeKind classifies one current file against the previous snapshot.
type ChangeKind string

const (
	// ChangeNew marks a URL absent from the previous snapshot.
	ChangeNew ChangeKind = "new"
	// ChangeModified marks a URL whose Last-Modified moved strictly forward.
	ChangeModified ChangeKind = "changed"
	// ChangeNone marks a URL with no detected change.
	ChangeNone ChangeKind = "unchanged"
)

// FileChange pairs a current record with its classification.
type FileChange struct {
	Record FileRecord `json:"record"`
	Kind   ChangeKind `json:"kind"`
}

// ChangeSet holds the new and changed files of one run, in page order.
type ChangeSet struct {
	Changes []FileChange `json:"changes"`
}

// IsEmpty reports whether nothing changed.
func (cs ChangeSet) IsEmpty() bool {
	return len(cs.Changes) == 0
}

// Records returns the changed records in order.
func (cs ChangeSet) Records() []FileRecord {
	records := make([]FileRecord, 0, len(cs.Changes))
	for _, c := range cs.Changes {
		records = append(records, c.Record)
	}
	return records
}

// Count returns how many changes carry the given kind.
func (cs ChangeSet) Count(kind ChangeKind) int {
	n := 0
	for _, c := range cs.Changes {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
