package sbits

// pageLayout precomputes the byte offsets of a data page's fields for a
// given Config. Unlike the teacher's fixed MDBX page header (whose field
// sizes are compile-time constants), SBITS pages have config-dependent
// field widths (bitmapSize, keySize, dataSize), so offsets are computed
// once at Init time instead of being declared as a Go struct literal.
//
// Layout (spec.md §3), all host-endian:
//
//	offset        field           size
//	0             logicalPageId   4
//	4             recordCount     2
//	6             bitmap          bitmapSize (0, 1, 2, or 8)
//	6+bm          minKey          keySize (if useMinMax)
//	+kS           maxKey          keySize
//	+kS           minData         dataSize
//	+dS           maxData         dataSize
//	headerSize    records         recordSize * count
type pageLayout struct {
	keySize, dataSize, recordSize int
	pageSize                      int
	bitmapSize                    int
	useMinMax                     bool

	bitmapOff  int
	minKeyOff  int
	maxKeyOff  int
	minDataOff int
	maxDataOff int
	headerSize int
	maxRecords int
}

func newPageLayout(c Config) pageLayout {
	l := pageLayout{
		keySize:    c.KeySize,
		dataSize:   c.DataSize,
		recordSize: c.RecordSize,
		pageSize:   c.PageSize,
		bitmapSize: c.bitmapSize(),
		useMinMax:  c.Parameters.has(ParamMaxMin),
	}
	l.bitmapOff = dataPageHeaderFixedSize
	off := l.bitmapOff + l.bitmapSize
	if l.useMinMax {
		l.minKeyOff = off
		off += l.keySize
		l.maxKeyOff = off
		off += l.keySize
		l.minDataOff = off
		off += l.dataSize
		l.maxDataOff = off
		off += l.dataSize
	}
	l.headerSize = off
	if l.recordSize > 0 {
		l.maxRecords = (l.pageSize - l.headerSize) / l.recordSize
	}
	return l
}

// dataPage is a single frame-sized byte buffer overlaid with the data page
// layout described above.
type dataPage struct {
	buf    []byte
	layout *pageLayout
}

func newDataPage(layout *pageLayout) *dataPage {
	return &dataPage{buf: make([]byte, layout.pageSize), layout: layout}
}

// init zero-fills the frame and sets min fields to an all-ones sentinel
// (spec.md §4.1), so the first inserted record's unconditional min-update
// establishes the true minimum.
func (p *dataPage) init() {
	for i := range p.buf {
		p.buf[i] = 0
	}
	setUint32(p.buf[0:4], uint32(InvalidLogicalPageId))
	if p.layout.useMinMax {
		fillOnes(p.minKey())
		fillOnes(p.minData())
	}
}

func fillOnes(b []byte) {
	for i := range b {
		b[i] = 0xFF
	}
}

func (p *dataPage) logicalID() LogicalPageId {
	return LogicalPageId(getUint32(p.buf[0:4]))
}

func (p *dataPage) setLogicalID(id LogicalPageId) {
	setUint32(p.buf[0:4], uint32(id))
}

func (p *dataPage) count() int {
	return int(getUint16(p.buf[4:6]))
}

func (p *dataPage) setCount(n int) {
	setUint16(p.buf[4:6], uint16(n))
}

func (p *dataPage) incCount() {
	p.setCount(p.count() + 1)
}

func (p *dataPage) bitmap() []byte {
	if p.layout.bitmapSize == 0 {
		return nil
	}
	return p.buf[p.layout.bitmapOff : p.layout.bitmapOff+p.layout.bitmapSize]
}

func (p *dataPage) minKey() []byte {
	return p.buf[p.layout.minKeyOff : p.layout.minKeyOff+p.layout.keySize]
}

func (p *dataPage) maxKey() []byte {
	return p.buf[p.layout.maxKeyOff : p.layout.maxKeyOff+p.layout.keySize]
}

func (p *dataPage) minData() []byte {
	return p.buf[p.layout.minDataOff : p.layout.minDataOff+p.layout.dataSize]
}

func (p *dataPage) maxData() []byte {
	return p.buf[p.layout.maxDataOff : p.layout.maxDataOff+p.layout.dataSize]
}

// recordAt returns the [key|data] slice for record i, borrowed from the
// page's backing buffer.
func (p *dataPage) recordAt(i int) []byte {
	off := p.layout.headerSize + i*p.layout.recordSize
	return p.buf[off : off+p.layout.recordSize]
}

func (p *dataPage) keyAt(i int) []byte {
	r := p.recordAt(i)
	return r[:p.layout.keySize]
}

func (p *dataPage) dataAt(i int) []byte {
	r := p.recordAt(i)
	return r[p.layout.keySize:]
}

// appendRecord copies key and data into the next free slot and increments
// count. The caller must have already checked count() < maxRecords.
func (p *dataPage) appendRecord(key, data []byte) {
	i := p.count()
	r := p.recordAt(i)
	copy(r[:p.layout.keySize], key)
	copy(r[p.layout.keySize:], data)
	p.incCount()
}

func setUint32(b []byte, v uint32) { putUint32Native(b, v) }
func getUint32(b []byte) uint32    { return getUint32Native(b) }
func setUint16(b []byte, v uint16) { putUint16Native(b, v) }
func getUint16(b []byte) uint16    { return getUint16Native(b) }
