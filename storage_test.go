package sbits

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorageReadWriteRoundTrip(t *testing.T) {
	cfg := Config{PageSize: 512, Dir: t.TempDir()}
	s, err := openFileStorage(cfg, "datafile.bin", 512*4)
	if err != nil {
		t.Fatalf("openFileStorage: %v", err)
	}
	defer s.Close()

	want := make([]byte, 512)
	for i := range want {
		want[i] = byte(i)
	}
	if err := s.WritePage(2, want); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	got := make([]byte, 512)
	if err := s.ReadPage(2, got); err != nil {
		t.Fatalf("ReadPage: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestMemStorageReadWriteRoundTrip(t *testing.T) {
	cfg := Config{PageSize: 512}
	s, err := openMemStorage(cfg, "datafile.bin", 512*4)
	if err != nil {
		t.Fatalf("openMemStorage: %v", err)
	}
	defer s.Close()

	want := []byte("hello sbits page contents padded to page size..")
	buf := make([]byte, 512)
	copy(buf, want)
	if err := s.WritePage(1, buf); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	got := make([]byte, 512)
	if err := s.ReadPage(1, got); err != nil {
		t.Fatalf("ReadPage: %v", err)
	}
	if string(got[:len(want)]) != string(want) {
		t.Fatalf("got %q, want %q", got[:len(want)], want)
	}
}

// TestEngineUsesFileStorageByDefault checks that StorageFile, the zero
// value of Config.Storage and so the default backend, creates the spec.md
// §6 default filenames on disk.
func TestEngineUsesFileStorageByDefault(t *testing.T) {
	cfg := baseConfig(100)
	cfg.Storage = StorageFile
	cfg.Dir = t.TempDir()
	e, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer e.Close()

	if err := e.Put(key4(1), data12(1)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	out := make([]byte, cfg.DataSize)
	if err := e.Get(key4(1), out); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.Dir, DataFileName)); err != nil {
		t.Fatalf("expected %s to exist: %v", DataFileName, err)
	}
}
