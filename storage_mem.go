package sbits

import (
	"fmt"

	"github.com/dsnet/golib/memfile"
)

// memStorage keeps the backing region entirely in memory, the backend the
// test suite defaults to so it never touches the filesystem.
type memStorage struct {
	f        *memfile.File
	pageSize int64
}

func openMemStorage(cfg Config, name string, size int64) (Storage, error) {
	f := new(memfile.File)
	if err := f.Truncate(size); err != nil {
		return nil, WrapError(ErrIO, err)
	}
	return &memStorage{f: f, pageSize: int64(cfg.PageSize)}, nil
}

func (s *memStorage) ReadPage(physical PhysicalPageId, buf []byte) error {
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

func (s *memStorage) WritePage(physical PhysicalPageId, buf []byte) error {
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

func (s *memStorage) Close() error {
	return nil
}
