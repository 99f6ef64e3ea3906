// Package sbits is an embedded, append-only key-value storage engine for
// time-series data on resource-constrained devices. Keys are monotonically
// non-decreasing; values are fixed-size records. Records are written into
// fixed-size pages in sequential physical order inside a circular,
// erase-block-aligned region, with an optional secondary bitmap index over
// a user-defined data attribute.
//
// The engine supports three query modes: point lookup by key (via a
// self-correcting interpolated search), range scan by key, and range scan
// by data attribute (accelerated by the secondary bitmap index).
//
// Basic usage:
//
//	cfg := sbits.Config{
//	    RecordSize: 16, KeySize: 4, DataSize: 12,
//	    PageSize: 512, BufferSizeInBlocks: 4,
//	    StartAddress: 0, EndAddress: 512 * 1000,
//	    EraseSizeInPages: 4,
//	    Parameters: sbits.ParamMaxMin,
//	    CompareKey: sbits.CompareUint32Key,
//	    CompareData: sbits.CompareUint32Key,
//	}
//	eng, err := sbits.Init(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close()
//
//	var data [12]byte
//	if err := eng.Put(key, data[:]); err != nil {
//	    log.Fatal(err)
//	}
//
//	out := make([]byte, cfg.DataSize)
//	if err := eng.Get(key, out); err != nil {
//	    log.Fatal(err)
//	}
package sbits
