package config

// ExtractorConfig defines which links on the page count as files
type ExtractorConfig struct {
	FileExtension  string `json:"file_extension,omitempty" yaml:"file_extension,omitempty" validate:"required,startswith=."`
	LabelAttribute string `json:"label_attribute,omitempty" yaml:"label_attribute,omitempty"`
}

// NewDefaultExtractorConfig creates default extractor configuration
func NewDefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		FileExtension:  DefaultFileExtension,
		LabelAttribute: DefaultLabelAttribute,
	}
}
