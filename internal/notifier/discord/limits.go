package discord

// Webhook limits enforced by Discord. MaxTotalEmbedLength caps the summed
// embed text of one message.
const (
	MaxTitleLength       = 256
	MaxDescriptionLength = 4096
	MaxFields            = 25
	MaxFieldNameLength   = 256
	MaxFieldValueLength  = 1024
	MaxFooterTextLength  = 2048
	MaxEmbedsPerMessage  = 10
	MaxTotalEmbedLength  = 6000
)
