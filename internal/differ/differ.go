package differ

import (
	"time"

	"github.com/aleister1102/pdfwatch/internal/common/timeutils"
	"github.com/aleister1102/pdfwatch/internal/models"
)

// Decision is the outcome of comparing one run against the stored snapshot.
type Decision struct {
	Changes models.ChangeSet
	// Next is the snapshot to persist.
	Next models.Snapshot
	// Changed reports whether Next replaces the stored file list.
	Changed bool
}

// Classify compares current against previous by URL and returns the new and
// changed records in current order. A record counts as changed only when
// both Last-Modified values parse and the previous one is strictly earlier.
func Classify(current, previous []models.FileRecord) models.ChangeSet {
	index := indexByURL(previous)
	changes := make([]models.FileChange, 0)

	for _, rec := range current {
		kind := classifyOne(rec, index)
		if kind == models.ChangeNone {
			continue
		}
		changes = append(changes, models.FileChange{Record: rec, Kind: kind})
	}

	return models.ChangeSet{Changes: changes}
}

// Decide classifies current against previous and picks the next snapshot.
// On change the whole current list replaces the stored one; otherwise the
// stored list is kept and only lastChecked moves to now.
func Decide(current []models.FileRecord, previous models.Snapshot, now time.Time) Decision {
	changes := Classify(current, previous.Files)
	if !changes.IsEmpty() {
		return Decision{
			Changes: changes,
			Next:    models.NewSnapshot(current, now),
			Changed: true,
		}
	}
	return Decision{
		Changes: changes,
		Next:    models.NewSnapshot(previous.Files, now),
	}
}

func classifyOne(rec models.FileRecord, index map[string]models.FileRecord) models.ChangeKind {
	prev, ok := index[rec.URL]
	if !ok {
		return models.ChangeNew
	}
	if isNewer(rec.LastModified, prev.LastModified) {
		return models.ChangeModified
	}
	return models.ChangeNone
}

// isNewer reports whether current is strictly after previous. Missing or
// unparseable values on either side are never newer.
func isNewer(current, previous string) bool {
	cur, ok := timeutils.ParseTimestampOK(current)
	if !ok {
		return false
	}
	prev, ok := timeutils.ParseTimestampOK(previous)
	if !ok {
		return false
	}
	return prev.Before(cur)
}

// indexByURL maps URL to record; the first occurrence wins.
func indexByURL(records []models.FileRecord) map[string]models.FileRecord {
	index := make(map[string]models.FileRecord, len(records))
	for _, r := range records {
		if _, exists := index[r.URL]; !exists {
			index[r.URL] = r
		}
	}
	return index
}
