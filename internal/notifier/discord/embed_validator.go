package discord

import (
	"fmt"
	"unicode/utf8"

	"github.com/aleister1102/pdfwatch/internal/common/errorwrapper"
)

// DiscordEmbedValidator validates Discord embed objects
type DiscordEmbedValidator struct{}

// NewDiscordEmbedValidator creates a new embed validator
func NewDiscordEmbedValidator() *DiscordEmbedValidator {
	return &DiscordEmbedValidator{}
}

// ValidateEmbed validates a Discord embed. Lengths are counted in characters.
func (dev *DiscordEmbedValidator) ValidateEmbed(embed DiscordEmbed) error {
	if utf8.RuneCountInString(embed.Title) > MaxTitleLength {
		return errorwrapper.NewValidationError("title", embed.Title, fmt.Sprintf("title cannot exceed %d characters", MaxTitleLength))
	}

	if utf8.RuneCountInString(embed.Description) > MaxDescriptionLength {
		return errorwrapper.NewValidationError("description", embed.Description, fmt.Sprintf("description cannot exceed %d characters", MaxDescriptionLength))
	}

	if len(embed.Fields) > MaxFields {
		return errorwrapper.NewValidationError("fields", len(embed.Fields), fmt.Sprintf("cannot have more than %d fields", MaxFields))
	}

	for i, field := range embed.Fields {
		if field.Name == "" {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot be empty", i))
		}
		if field.Value == "" {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot be empty", i))
		}
		if utf8.RuneCountInString(field.Name) > MaxFieldNameLength {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot exceed %d characters", i, MaxFieldNameLength))
		}
		if utf8.RuneCountInString(field.Value) > MaxFieldValueLength {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot exceed %d characters", i, MaxFieldValueLength))
		}
	}

	if embed.Footer != nil && utf8.RuneCountInString(embed.Footer.Text) > MaxFooterTextLength {
		return errorwrapper.NewValidationError("footer_text", embed.Footer.Text, fmt.Sprintf("footer text cannot exceed %d characters", MaxFooterTextLength))
	}

	if embed.Length() > MaxTotalEmbedLength {
		return errorwrapper.NewValidationError("embed", embed.Length(), fmt.Sprintf("embed text cannot exceed %d characters", MaxTotalEmbedLength))
	}

	return nil
}
