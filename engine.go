package sbits

import (
	"fmt"

	"go.uber.org/zap"
)

func errTooSmallRegion(got, want int) error {
	return fmt.Errorf("data region holds %d pages, need at least %d", got, want)
}

// Engine is a single open SBITS instance. It is not safe for concurrent
// use (spec.md §5 Non-goals: no internal locking), matching the teacher's
// own single-writer-at-a-time Env/Txn discipline but without a
// transaction layer on top of it.
type Engine struct {
	cfg Config
	log *zap.SugaredLogger

	dataLayout pageLayout
	idxLayout  idxPageLayout

	dataStorage Storage
	idxStorage  Storage

	alloc    circularAllocator
	idxAlloc circularAllocator
	indexed  bool
	usesBmap bool

	buf *bufferPool

	// readPhysical/idxReadPhysical cache which physical page is currently
	// resident in the read frames, so repeated lookups against the same
	// page are served from memory (buffer hits, spec.md §4.7).
	readPhysical    PhysicalPageId
	readValid       bool
	idxReadPhysical PhysicalPageId
	idxReadValid    bool

	// minKey and avgKeyDiff drive the self-correcting interpolated search
	// (spec.md §4.4): minKey is the engine's key floor, the first key
	// stored, advanced by an estimate each time an erase block is reclaimed
	// (write.go's bumpMinKeyOnReclaim); avgKeyDiff is the estimated average
	// key increment per record across all live pages, recomputed on every
	// flush when ParamMaxMin is set (spec.md §4.3 step c).
	haveMinKey bool
	minKey     []byte
	avgKeyDiff float64
	numPages   int

	stats Stats
}

// Init opens (creating if necessary) an SBITS instance over cfg's
// configured region and storage backend.
func Init(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}

	indexed := cfg.Parameters.has(ParamIndex)
	minPages := minRegionPages(cfg.EraseSizeInPages, indexed)
	dataPages := int((cfg.EndAddress - cfg.StartAddress) / int64(cfg.PageSize))
	if dataPages < minPages {
		return nil, WrapError(ErrConfigInvalid, errTooSmallRegion(dataPages, minPages))
	}

	e := &Engine{
		cfg:        cfg,
		log:        cfg.Logger,
		dataLayout: newPageLayout(cfg),
		indexed:    indexed,
		usesBmap:   cfg.Parameters.has(ParamBmap),
		alloc:      newCircularAllocator(cfg.StartAddress, cfg.EndAddress, cfg.PageSize, cfg.EraseSizeInPages),
	}

	dataStorage, err := openStorage(cfg, DataFileName, cfg.EndAddress-cfg.StartAddress)
	if err != nil {
		return nil, err
	}
	e.dataStorage = dataStorage

	if indexed {
		idxStart, idxEnd := cfg.IndexStartAddress, cfg.IndexEndAddress
		if idxStart == 0 && idxEnd == 0 {
			idxEnd = int64(dataPages * cfg.PageSize)
		}
		e.idxLayout = newIdxPageLayout(cfg)
		e.idxAlloc = newCircularAllocator(idxStart, idxEnd, cfg.PageSize, cfg.EraseSizeInPages)
		idxStorage, err := openStorage(cfg, IndexFileName, idxEnd-idxStart)
		if err != nil {
			dataStorage.Close()
			return nil, err
		}
		e.idxStorage = idxStorage
	}

	e.buf = newBufferPool(&e.dataLayout, &e.idxLayout, indexed)
	e.buf.writeBuf().init()
	if indexed {
		e.buf.idxWriteBuf().init()
	}

	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Close flushes any partially-filled write buffer and releases the
// underlying Storage handles.
func (e *Engine) Close() error {
	if err := e.Flush(); err != nil {
		return err
	}
	if e.indexed {
		if err := e.idxStorage.Close(); err != nil {
			return err
		}
	}
	return e.dataStorage.Close()
}
