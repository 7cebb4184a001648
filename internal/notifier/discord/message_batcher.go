package discord

// BatchEmbeds packs embeds, in order, into messages that hold at most
// MaxEmbedsPerMessage embeds and MaxTotalEmbedLength characters of embed text.
// An embed over the total on its own is sent alone.
func BatchEmbeds(embeds []DiscordEmbed) [][]DiscordEmbed {
	var batches [][]DiscordEmbed
	var current []DiscordEmbed
	total := 0

	for _, e := range embeds {
		n := e.Length()
		if len(current) > 0 && (len(current) >= MaxEmbedsPerMessage || total+n > MaxTotalEmbedLength) {
			batches = append(batches, current)
			current = nil
			total = 0
		}
		current = append(current, e)
		total += n
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches
}
