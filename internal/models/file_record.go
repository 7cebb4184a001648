package models

import "encoding/json"

// FileRecord is one downloadable file discovered on the watched page.
// URL is the identity key across runs; every other field is optional.
type FileRecord struct {
	URL          string `json:"url"`
	Label        string `json:"label,omitempty"`
	ETag         string `json:"etag,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
	Length       *int64 `json:"length,omitempty"`
}

// UnmarshalJSON accepts the older "text" key as an alias for label.
func (r *FileRecord) UnmarshalJSON(data []byte) error {
	type plain FileRecord
	aux := struct {
		*plain
		Text string `json:"text,omitempty"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.Label == "" && aux.Text != "" {
		r.Label = aux.Text
	}
	return nil
}

// WithMetadata returns a copy of r carrying the probed metadata.
func (r FileRecord) WithMetadata(meta FileMetadata) FileRecord {
	r.ETag = meta.ETag
	r.LastModified = meta.LastModified
	r.Length = meta.Length
	return r
}

// FileMetadata is the subset of a FileRecord a HEAD probe can fill in.
type FileMetadata struct {
	ETag         string
	LastModified string
	Length       *int64
}

// IsEmpty reports whether no header was captured.
func (m FileMetadata) IsEmpty() bool {
	return m.ETag == "" && m.LastModified == "" && m.Length == nil
}

// Int64Ptr returns a pointer to n.
func Int64Ptr(n int64) *int64 {
	return &n
}
