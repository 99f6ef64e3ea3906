package sbits

// Query bounds a range scan. A nil field means unbounded on that side.
// MinKey/MaxKey alone select a key-range scan; MinData/MaxData additionally
// (or exclusively) select a data-range scan, pruned with the bitmap index
// when one is configured (spec.md §4.5). Records are checked against the
// data bounds with Config.CompareData; when CompareData is nil the data
// bounds are not checked per record.
type Query struct {
	MinKey, MaxKey   []byte
	MinData, MaxData []byte
}

// Iterator walks an engine in key order, filtering by Query. Open over an
// Engine that is still accepting Puts is allowed but the iterator snapshots
// nothing: records written after NewIterator may or may not be observed.
type Iterator struct {
	e *Engine
	q Query

	pending  []PhysicalPageId
	pendIdx  int
	curPage  *dataPage
	curPos   int
	pageOpen bool

	wbPos  int
	wbDone bool
}

// NewIterator prepares a scan. When the engine has a bitmap index and the
// query constrains data, the index is consulted up front to prune whole
// data pages before any of them are read.
func (e *Engine) NewIterator(q Query) *Iterator {
	it := &Iterator{e: e, q: q}

	useBitmap := e.indexed && e.usesBmap && (q.MinData != nil || q.MaxData != nil)
	if useBitmap {
		it.pending = e.bitmapPrunedPages(q)
	} else {
		it.pending = e.allDataPages()
	}
	return it
}

// allDataPages lists every flushed data page's physical id in logical
// (insertion) order.
func (e *Engine) allDataPages() []PhysicalPageId {
	var out []PhysicalPageId
	for id := e.alloc.firstLogicalId; id < e.alloc.nextLogicalId; id++ {
		out = append(out, e.alloc.physicalOf(id))
	}
	return out
}

// bitmapPrunedPages walks the index region, then the entries still held in
// the unflushed index write frame, keeping only data pages whose bitmap
// summary overlaps the query bitmap built from q.MinData/MaxData.
// Index pages are loaded into the engine's dedicated index-read frame
// (spec.md §5 frame 3), the same reuse discipline readPage applies to data
// pages in read.go.
func (e *Engine) bitmapPrunedPages(q Query) []PhysicalPageId {
	queryBM := buildQueryBitmap(e.cfg.Bitmap, q.MinData, q.MaxData)

	var out []PhysicalPageId
	ip := e.buf.idxReadBuf()
	for id := e.idxAlloc.firstLogicalId; id < e.idxAlloc.nextLogicalId; id++ {
		physical := e.idxAlloc.physicalOf(id)
		if e.idxReadValid && e.idxReadPhysical == physical {
			e.buf.recordHit()
		} else {
			if err := e.idxStorage.ReadPage(physical, ip.buf); err != nil {
				break
			}
			e.stats.IndexReads++
			e.buf.recordMiss()
			e.idxReadPhysical = physical
			e.idxReadValid = true
		}
		base := ip.minDataPageIdCovered()
		for i := 0; i < ip.count(); i++ {
			if bitmapOverlap(queryBM, ip.entryAt(i)) {
				out = append(out, e.alloc.physicalAfter(base, i))
			}
		}
	}
	ib := e.buf.idxWriteBuf()
	for i := 0; i < ib.count(); i++ {
		if bitmapOverlap(queryBM, ib.entryAt(i)) {
			out = append(out, e.alloc.physicalAfter(ib.minDataPageIdCovered(), i))
		}
	}
	return out
}

// Next fills key and data with the next matching record and returns true,
// or returns false once the scan is exhausted.
func (it *Iterator) Next(key, data []byte) bool {
	for {
		if it.pageOpen {
			e := it.e
			for it.curPos < it.curPage.count() {
				i := it.curPos
				it.curPos++
				k, d := it.curPage.keyAt(i), it.curPage.dataAt(i)
				if it.q.MaxKey != nil && e.cfg.CompareKey(k, it.q.MaxKey) > 0 {
					// Keys are non-decreasing: nothing after this record
					// can be in range.
					it.pendIdx, it.pageOpen, it.wbDone = len(it.pending), false, true
					return false
				}
				if !it.matches(k, d) {
					continue
				}
				copy(key, k)
				copy(data, d)
				return true
			}
			it.pageOpen = false
		}

		if it.pendIdx < len(it.pending) {
			physical := it.pending[it.pendIdx]
			it.pendIdx++
			if it.curPage == nil {
				it.curPage = newDataPage(&it.e.dataLayout)
			}
			if err := it.e.dataStorage.ReadPage(physical, it.curPage.buf); err != nil {
				return false
			}
			it.e.stats.Reads++
			it.curPos = 0
			it.pageOpen = true
			continue
		}

		if !it.wbDone {
			wb := it.e.buf.writeBuf()
			for it.wbPos < wb.count() {
				i := it.wbPos
				it.wbPos++
				k, d := wb.keyAt(i), wb.dataAt(i)
				if it.q.MaxKey != nil && it.e.cfg.CompareKey(k, it.q.MaxKey) > 0 {
					it.wbDone = true
					return false
				}
				if !it.matches(k, d) {
					continue
				}
				copy(key, k)
				copy(data, d)
				return true
			}
			it.wbDone = true
			continue
		}

		return false
	}
}

func (it *Iterator) matches(key, data []byte) bool {
	cmp := it.e.cfg.CompareKey
	if it.q.MinKey != nil && cmp(key, it.q.MinKey) < 0 {
		return false
	}
	if it.q.MaxKey != nil && cmp(key, it.q.MaxKey) > 0 {
		return false
	}
	if cmpD := it.e.cfg.CompareData; cmpD != nil {
		if it.q.MinData != nil && cmpD(data, it.q.MinData) < 0 {
			return false
		}
		if it.q.MaxData != nil && cmpD(data, it.q.MaxData) > 0 {
			return false
		}
	}
	return true
}
