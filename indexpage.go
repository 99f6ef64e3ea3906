package sbits

// idxPageLayout precomputes the index page's field offsets. An index page
// holds one entry per flushed data page, that page's bitmap summary, up to
// maxRecords entries (spec.md §3).
//
//	offset  field                  size
//	0       logicalIdxId           4
//	4       count                  2
//	6       pad                    2
//	8       minDataPageIdCovered   4
//	12      reserved               4
//	16      entries (bitmaps)      bitmapSize * count
type idxPageLayout struct {
	pageSize   int
	bitmapSize int
	maxRecords int
}

func newIdxPageLayout(c Config) idxPageLayout {
	l := idxPageLayout{pageSize: c.PageSize, bitmapSize: c.bitmapSize()}
	if l.bitmapSize > 0 {
		l.maxRecords = (l.pageSize - idxPageHeaderSize) / l.bitmapSize
	}
	return l
}

type idxPage struct {
	buf    []byte
	layout *idxPageLayout
}

func newIdxPage(layout *idxPageLayout) *idxPage {
	return &idxPage{buf: make([]byte, layout.pageSize), layout: layout}
}

func (p *idxPage) init() {
	for i := range p.buf {
		p.buf[i] = 0
	}
	setUint32(p.buf[0:4], uint32(InvalidLogicalPageId))
}

func (p *idxPage) logicalID() LogicalPageId { return LogicalPageId(getUint32(p.buf[0:4])) }
func (p *idxPage) setLogicalID(id LogicalPageId) { setUint32(p.buf[0:4], uint32(id)) }

func (p *idxPage) count() int      { return int(getUint16(p.buf[4:6])) }
func (p *idxPage) setCount(n int)  { setUint16(p.buf[4:6], uint16(n)) }
func (p *idxPage) incCount()       { p.setCount(p.count() + 1) }

func (p *idxPage) minDataPageIdCovered() PhysicalPageId {
	return PhysicalPageId(getUint32(p.buf[8:12]))
}

func (p *idxPage) setMinDataPageIdCovered(pg PhysicalPageId) {
	setUint32(p.buf[8:12], uint32(pg))
}

// entryAt returns the bitmap entry at index i, borrowed from the page.
func (p *idxPage) entryAt(i int) []byte {
	off := idxPageHeaderSize + i*p.layout.bitmapSize
	return p.buf[off : off+p.layout.bitmapSize]
}

// appendEntry appends a per-data-page bitmap to the index page.
func (p *idxPage) appendEntry(bm []byte) {
	i := p.count()
	copy(p.entryAt(i), bm)
	p.incCount()
}
