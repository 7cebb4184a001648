package discord

// DiscordMessagePayload represents the JSON payload sent to a Discord webhook.
type DiscordMessagePayload struct {
	Username        string           `json:"username,omitempty"` // Override the default webhook username
	Embeds          []DiscordEmbed   `json:"embeds,omitempty"`   // Array of embed objects
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
}

// AllowedMentions restricts which mentions in a message ping anyone.
type AllowedMentions struct {
	Parse []string `json:"parse"`
}

// NoMentions suppresses every mention.
func NoMentions() *AllowedMentions {
	return &AllowedMentions{Parse: []string{}}
}
