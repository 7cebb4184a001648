package datastore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/aleister1102/pdfwatch/internal/common/errorwrapper"
	"github.com/aleister1102/pdfwatch/internal/models"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// SnapshotStore reads and writes the snapshot JSON file.
type SnapshotStore struct {
	fs     afero.Fs
	path   string
	logger zerolog.Logger
}

// NewSnapshotStore creates a store for path on the given filesystem.
func NewSnapshotStore(filesystem afero.Fs, path string, logger zerolog.Logger) *SnapshotStore {
	if filesystem == nil {
		filesystem = afero.NewOsFs()
	}
	return &SnapshotStore{
		fs:     filesystem,
		path:   path,
		logger: logger.With().Str("module", "SnapshotStore").Str("path", path).Logger(),
	}
}

// Load returns the stored snapshot. A missing or blank file is an empty
// snapshot, and so is a "files" value that is not an array. Anything else
// that cannot be read or decoded is an error.
func (s *SnapshotStore) Load() (models.Snapshot, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info().Msg("No snapshot found, starting from empty state")
			return models.NewSnapshotFiles(nil, ""), nil
		}
		return models.Snapshot{}, errorwrapper.WrapError(err, "failed to read snapshot")
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Info().Msg("Snapshot file is empty, starting from empty state")
		return models.NewSnapshotFiles(nil, ""), nil
	}

	return decodeSnapshot(data)
}

func decodeSnapshot(data []byte) (models.Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", errorwrapper.ErrCorruptSnapshot, err)
	}

	var lastChecked string
	if v, ok := raw["lastChecked"]; ok {
		// a non string timestamp is informational only
		_ = json.Unmarshal(v, &lastChecked)
	}

	files := []models.FileRecord{}
	if v, ok := raw["files"]; ok && isJSONArray(v) {
		if err := json.Unmarshal(v, &files); err != nil {
			return models.Snapshot{}, fmt.Errorf("%w: files: %v", errorwrapper.ErrCorruptSnapshot, err)
		}
	}

	return models.NewSnapshotFiles(files, lastChecked), nil
}

func isJSONArray(v json.RawMessage) bool {
	trimmed := bytes.TrimSpace(v)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// Save writes snapshot as two space indented JSON. The parent directory is
// created when absent and the file is replaced through a rename.
func (s *SnapshotStore) Save(snapshot models.Snapshot) error {
	if snapshot.Files == nil {
		snapshot.Files = []models.FileRecord{}
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return errorwrapper.WrapError(err, "failed to encode snapshot")
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return errorwrapper.WrapError(err, "failed to create snapshot directory "+dir)
	}

	tmp, err := afero.TempFile(s.fs, dir, ".snapshot-*.tmp")
	if err != nil {
		return errorwrapper.WrapError(err, "failed to create temporary snapshot file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return errorwrapper.WrapError(err, "failed to write snapshot")
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return errorwrapper.WrapError(err, "failed to close snapshot")
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		_ = s.fs.Remove(tmpName)
		return errorwrapper.WrapError(err, "failed to replace snapshot")
	}

	s.logger.Debug().Int("files", len(snapshot.Files)).Msg("Snapshot written")
	return nil
}
