package sbits

// Parameters is a bitset of optional features, matching spec.md §6.
type Parameters uint8

const (
	// ParamIndex enables the secondary bitmap index over the data
	// attribute (one index entry per flushed data page).
	ParamIndex Parameters = 1 << iota
	// ParamMaxMin enables per-page min/max key and min/max data summary
	// fields.
	ParamMaxMin
	// ParamSum is reserved for a future per-page data-sum summary; the
	// engine accepts the flag (so callers built against a future summary
	// feature don't fail validation) but computes no summary from it today.
	ParamSum
	// ParamBmap enables the per-page bitmap summary (requires BitmapSize
	// to be set and a BitmapCodec supplied).
	ParamBmap
)

func (p Parameters) has(flag Parameters) bool { return p&flag != 0 }

// StorageKind selects a Storage backend implementation (SPEC_FULL.md §4.8).
type StorageKind int

const (
	// StorageFile is the default: plain os.File ReadAt/WriteAt, matching
	// spec.md §6 (datafile.bin / idxfile.bin, truncate on open).
	StorageFile StorageKind = iota
	// StorageDirect opens the backing file with O_DIRECT via
	// github.com/ncw/directio, requiring PageSize to be a multiple of
	// directio.AlignSize.
	StorageDirect
	// StorageMmap memory-maps the whole pre-sized region via the mmap
	// subpackage.
	StorageMmap
	// StorageMemory backs the region with an in-memory
	// github.com/dsnet/golib/memfile.File. Used by this module's test
	// fixture (baseConfig), so tests built on it never touch disk.
	StorageMemory
)

// Default on-disk file names, matching spec.md §6.
const (
	DataFileName  = "datafile.bin"
	IndexFileName = "idxfile.bin"
)

// dataPageHeaderFixedSize is the portion of the data page header with a
// fixed, config-independent layout: logicalPageId(4) + recordCount(2).
const dataPageHeaderFixedSize = 6

// idxPageHeaderSize is the fixed 16-byte index page header from spec.md §3:
// logicalIdxId(4) | count(2) | pad(2) | minDataPageIdCovered(4) | reserved(4).
const idxPageHeaderSize = 16
