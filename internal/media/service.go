package media

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service provides media management on a Storage backend plus the
// on-disk upload directory.
type Service struct {
	storage Storage
	dir     string
	logger  *zap.Logger
}

// NewService creates a new Service writing files under dir.
func NewService(storage Storage, dir string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{storage: storage, dir: dir, logger: logger}
}

// Dir returns the upload directory.
func (s *Service) Dir() string {
	return s.dir
}

// StoredName builds the on-disk name for a new upload, keeping only the
// extension of the client-supplied file name.
func (s *Service) StoredName(originalName string) string {
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(originalName))
}

// List returns all media records, newest first.
func (s *Service) List() ([]*Media, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve media: %w", err)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all, nil
}

// Save records an already-written upload.
func (s *Service) Save(fileName, fileType string) (*Media, error) {
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}

	now := time.Now()
	m := &Media{
		ID:        uuid.NewString(),
		FileName:  fileName,
		FileType:  fileType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.Insert(m); err != nil {
		return nil, err
	}

	s.logger.Info("media saved", zap.String("media_id", m.ID), zap.String("file", m.FileName))
	return m, nil
}

// Remove deletes the record and the file on disk. A file that is
// already gone is not an error.
func (s *Service) Remove(id string) error {
	m, err := s.storage.Read(id)
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, m.FileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file %s: %w", path, err)
	}

	if err := s.storage.Delete(id); err != nil {
		return err
	}

	s.logger.Info("media deleted", zap.String("media_id", id), zap.String("file", m.FileName))
	return nil
}
