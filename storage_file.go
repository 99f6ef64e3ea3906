package sbits

import (
	"fmt"
	"os"
	"path/filepath"
)

// fileStorage is the default Storage backend: a plain os.File accessed
// with ReadAt/WriteAt, matching the teacher's env.go approach of mapping
// a single pre-sized backing file rather than growing it incrementally.
type fileStorage struct {
	f        *os.File
	pageSize int64
}

func openFileStorage(cfg Config, name string, size int64) (Storage, error) {
	path := filepath.Join(cfg.Dir, name)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, WrapError(ErrIO, err)
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, WrapError(ErrIO, err)
	}
	return &fileStorage{f: f, pageSize: int64(cfg.PageSize)}, nil
}

func (s *fileStorage) ReadPage(physical PhysicalPageId, buf []byte) error {
	off := int64(physical) * s.pageSize
	n, err := s.f.ReadAt(buf, off)
	if err != nil {
		return WrapError(ErrIO, err)
	}
	if n != len(buf) {
		return WrapError(ErrIO, fmt.Errorf("short read at page %d: got %d want %d", physical, n, len(buf)))
	}
	return nil
}

func (s *fileStorage) WritePage(physical PhysicalPageId, buf []byte) error {
	off := int64(physical) * s.pageSize
	n, err := s.f.WriteAt(buf, off)
	if err != nil {
		return WrapError(ErrIO, err)
	}
	if n != len(buf) {
		return WrapError(ErrIO, fmt.Errorf("short write at page %d: got %d want %d", physical, n, len(buf)))
	}
	return nil
}

func (s *fileStorage) Close() error {
	if err := s.f.Sync(); err != nil {
		s.f.Close()
		return WrapError(ErrIO, err)
	}
	if err := s.f.Close(); err != nil {
		return WrapError(ErrIO, err)
	}
	return nil
}
