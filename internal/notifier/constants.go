package notifier

// Cell placeholders
const (
	MissingCell = "—"
	EmptyColumn = "\u200B"
)

// NoFilesDescription is the body of the embed sent for an empty file list.
const NoFilesDescription = "No files were found on the page."
