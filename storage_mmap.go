package sbits

import (
	"os"
	"path/filepath"

	"github.com/ubco-db/sbits-go/mmap"
)

// mmapStorage maps the whole pre-sized region once and serves each page
// as a slice view into that mapping, the style the teacher's env.go uses
// for its data file (there via its own platform-specific mmap_*.go; here
// via the kept mmap subpackage).
type mmapStorage struct {
	f        *os.File
	m        *mmap.Map
	pageSize int
}

func openMmapStorage(cfg Config, name string, size int64) (Storage, error) {
	path := filepath.Join(cfg.Dir, name)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, WrapError(ErrIO, err)
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, WrapError(ErrIO, err)
	}
	m, err := mmap.MapFile(path, true)
	if err != nil {
		f.Close()
		return nil, WrapError(ErrIO, err)
	}
	return &mmapStorage{f: f, m: m, pageSize: cfg.PageSize}, nil
}

func (s *mmapStorage) ReadPage(physical PhysicalPageId, buf []byte) error {
	off := int(physical) * s.pageSize
	data := s.m.Data()
	if off+s.pageSize > len(data) {
		return NewError(ErrIO)
	}
	copy(buf, data[off:off+s.pageSize])
	return nil
}

func (s *mmapStorage) WritePage(physical PhysicalPageId, buf []byte) error {
	off := int(physical) * s.pageSize
	data := s.m.Data()
	if off+s.pageSize > len(data) {
		return NewError(ErrIO)
	}
	copy(data[off:off+s.pageSize], buf)
	return nil
}

func (s *mmapStorage) Close() error {
	if err := s.m.Sync(); err != nil {
		s.f.Close()
		return WrapError(ErrIO, err)
	}
	if err := s.m.Close(); err != nil {
		s.f.Close()
		return WrapError(ErrIO, err)
	}
	if err := s.f.Close(); err != nil {
		return WrapError(ErrIO, err)
	}
	return nil
}
