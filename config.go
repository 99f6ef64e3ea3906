package sbits

import (
	"fmt"

	"go.uber.org/zap"
)

// Config holds everything a caller must populate before Init, per
// spec.md §6. Nothing here is loaded from a file or flags — configuration
// *loading* remains a non-goal; this is a plain value the caller builds in
// code.
type Config struct {
	// RecordSize is keySize + dataSize.
	RecordSize int
	// KeySize is the fixed width in bytes of a key.
	KeySize int
	// DataSize is the fixed width in bytes of a value.
	DataSize int
	// PageSize is the device-aligned page size in bytes.
	PageSize int
	// BufferSizeInBlocks is the number of page frames the caller provides
	// for: at least 2 (write + read), or 4 when ParamIndex is set; Init
	// rejects smaller values. The engine's buffer pool always holds exactly
	// 2 frames, or 4 with ParamIndex, even when a larger value is given.
	BufferSizeInBlocks int

	// StartAddress and EndAddress bound the data region, in bytes,
	// [StartAddress, EndAddress).
	StartAddress int64
	EndAddress   int64
	// EraseSizeInPages is the erase-block granularity for the circular
	// allocator.
	EraseSizeInPages int

	// IndexStartAddress and IndexEndAddress bound the index region, in
	// bytes, when ParamIndex is set. If both are zero and ParamIndex is
	// set, the engine sizes the index region automatically to the same
	// page count as the data region.
	IndexStartAddress int64
	IndexEndAddress   int64

	// Parameters selects optional features (ParamIndex, ParamMaxMin,
	// ParamSum, ParamBmap).
	Parameters Parameters
	// BitmapSize is the width in bytes of the per-page bitmap summary (1,
	// 2, or 8). Required when Parameters has ParamBmap set.
	BitmapSize int

	// CompareKey orders two keys. Required.
	CompareKey CompareFunc
	// CompareData orders two data attributes. Required when ParamMaxMin is
	// set (needed to maintain per-page min/max data).
	CompareData CompareFunc
	// Bitmap is the caller-supplied bitmap codec. Required when ParamBmap
	// is set.
	Bitmap BitmapCodec

	// Storage selects the Storage backend (default StorageFile).
	Storage StorageKind
	// Dir is the working directory the data/index files are created in
	// when Storage is StorageFile, StorageDirect, or StorageMmap. Defaults
	// to "." when empty.
	Dir string

	// Logger receives the engine's internal diagnostics (ambient, see
	// SPEC_FULL.md §2). Defaults to a no-op logger.
	Logger *zap.SugaredLogger
}

// Option customizes an Engine at Init time beyond Config's fields.
type Option func(*Engine)

// WithLogger attaches a structured logger to the engine.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Engine) { e.log = l }
}

func (c Config) validate() error {
	if c.KeySize <= 0 || c.DataSize <= 0 || c.RecordSize != c.KeySize+c.DataSize {
		return WrapError(ErrConfigInvalid, fmt.Errorf("recordSize must equal keySize+dataSize"))
	}
	if c.PageSize <= 0 {
		return WrapError(ErrConfigInvalid, fmt.Errorf("pageSize must be positive"))
	}
	if c.EraseSizeInPages <= 0 {
		return WrapError(ErrConfigInvalid, fmt.Errorf("eraseSizeInPages must be positive"))
	}
	if c.BufferSizeInBlocks < 2 || (c.Parameters.has(ParamIndex) && c.BufferSizeInBlocks < 4) {
		return WrapError(ErrConfigInvalid, fmt.Errorf("bufferSizeInBlocks must be at least 2, or 4 when ParamIndex is set"))
	}
	if c.EndAddress <= c.StartAddress {
		return WrapError(ErrConfigInvalid, fmt.Errorf("endAddress must be greater than startAddress"))
	}
	if c.CompareKey == nil {
		return WrapError(ErrConfigInvalid, fmt.Errorf("compareKey is required"))
	}
	if c.Parameters.has(ParamMaxMin) && c.CompareData == nil {
		return WrapError(ErrConfigInvalid, fmt.Errorf("compareData is required when ParamMaxMin is set"))
	}
	if c.Parameters.has(ParamBmap) {
		if c.BitmapSize != 1 && c.BitmapSize != 2 && c.BitmapSize != 8 {
			return WrapError(ErrConfigInvalid, fmt.Errorf("bitmapSize must be 1, 2, or 8 when ParamBmap is set"))
		}
		if c.Bitmap == nil {
			return WrapError(ErrConfigInvalid, fmt.Errorf("bitmap codec is required when ParamBmap is set"))
		}
	}
	if c.Storage == StorageDirect && c.PageSize%directAlignSize() != 0 {
		return WrapError(ErrConfigInvalid, fmt.Errorf("pageSize must be a multiple of the direct I/O alignment (%d) for StorageDirect", directAlignSize()))
	}
	return nil
}

// bitmapSize resolves the effective bitmap width (0 when ParamBmap unset).
func (c Config) bitmapSize() int {
	if !c.Parameters.has(ParamBmap) {
		return 0
	}
	return c.BitmapSize
}
