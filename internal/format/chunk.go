package format

// DefaultChunkSize is the row limit for one notification unit.
const DefaultChunkSize = 15

// ChunkRows splits rows into ordered batches of at most size elements.
// A non-positive size falls back to DefaultChunkSize.
func ChunkRows[T any](rows []T, size int) [][]T {
	if size <= 0 {
		size = DefaultChunkSize
	}

	chunks := make([][]T, 0, (len(rows)+size-1)/size)
	for i := 0; i < len(rows); i += size {
		end := min(i+size, len(rows))
		chunks = append(chunks, rows[i:end])
	}
	return chunks
}
