package notifier

import (
	"context"

	"github.com/aleister1102/pdfwatch/internal/models"
)

// NotificationSink reports a list of files somewhere.
type NotificationSink interface {
	Notify(ctx context.Context, files []models.FileRecord, pageURL string) error
}

// Nop is a sink that does nothing.
type Nop struct{}

// Notify implements NotificationSink.
func (Nop) Notify(context.Context, []models.FileRecord, string) error { return nil }
