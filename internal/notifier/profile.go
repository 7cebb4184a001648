package notifier

import (
	"time"

	"github.com/aleister1102/pdfwatch/internal/config"
	"github.com/aleister1102/pdfwatch/internal/format"
	"github.com/aleister1102/pdfwatch/internal/models"
)

// Column renders one embed field: a header and one cell per record.
type Column struct {
	Name string
	Cell func(rec models.FileRecord, loc *time.Location) string
}

// SinkProfile is the title and column layout one sink renders.
type SinkProfile struct {
	Title   string
	Columns []Column
}

// NameColumn renders the file as a markdown link.
func NameColumn() Column {
	return Column{Name: "Name", Cell: func(r models.FileRecord, _ *time.Location) string {
		return format.Label(r)
	}}
}

// ETagColumn renders the raw entity tag.
func ETagColumn() Column {
	return Column{Name: "eTag", Cell: func(r models.FileRecord, _ *time.Location) string {
		return r.ETag
	}}
}

// SizeColumn renders the human readable length.
func SizeColumn() Column {
	return Column{Name: "Size", Cell: func(r models.FileRecord, _ *time.Location) string {
		return format.Bytes(r.Length)
	}}
}

// LastModifiedColumn renders Last-Modified in the display zone.
func LastModifiedColumn() Column {
	return Column{Name: "Last Modified", Cell: func(r models.FileRecord, loc *time.Location) string {
		return format.Date(r.LastModified, loc)
	}}
}

// ChangeProfile lays out the alert for new and changed files.
func ChangeProfile(cfg config.NotificationConfig) SinkProfile {
	return SinkProfile{
		Title:   titleOr(cfg.ChangeTitle, config.DefaultChangeTitle),
		Columns: []Column{NameColumn(), SizeColumn(), LastModifiedColumn()},
	}
}

// LogProfile lays out the inventory sent after every run.
func LogProfile(cfg config.NotificationConfig) SinkProfile {
	return SinkProfile{
		Title:   titleOr(cfg.LogTitle, config.DefaultLogTitle),
		Columns: []Column{NameColumn(), ETagColumn(), SizeColumn(), LastModifiedColumn()},
	}
}

func titleOr(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}
