package config

// StorageConfig defines where the snapshot lives
type StorageConfig struct {
	SnapshotFile string `json:"snapshot_file,omitempty" yaml:"snapshot_file,omitempty" validate:"required"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		SnapshotFile: DefaultSnapshotFile,
	}
}
