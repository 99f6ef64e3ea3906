package sbits

import "testing"

func testLayout() pageLayout {
	cfg := Config{KeySize: 4, DataSize: 12, RecordSize: 16, PageSize: 512, Parameters: ParamMaxMin}
	return newPageLayout(cfg)
}

func TestPageLayoutHeaderSize(t *testing.T) {
	l := testLayout()
	// 6 (fixed) + 0 (bitmap) + 4 (minKey) + 4 (maxKey) + 12 (minData) + 12 (maxData) = 38
	if l.headerSize != 38 {
		t.Fatalf("headerSize = %d, want 38", l.headerSize)
	}
	wantMax := (512 - 38) / 16
	if l.maxRecords != wantMax {
		t.Fatalf("maxRecords = %d, want %d", l.maxRecords, wantMax)
	}
}

func TestPageLayoutNoMinMaxHasNoSummaryFields(t *testing.T) {
	cfg := Config{KeySize: 4, DataSize: 12, RecordSize: 16, PageSize: 512}
	l := newPageLayout(cfg)
	if l.headerSize != dataPageHeaderFixedSize {
		t.Fatalf("headerSize = %d, want %d (no bitmap, no min/max)", l.headerSize, dataPageHeaderFixedSize)
	}
}

func TestPageLayoutWithBitmap(t *testing.T) {
	cfg := Config{KeySize: 4, DataSize: 12, RecordSize: 16, PageSize: 512, Parameters: ParamBmap, BitmapSize: 8}
	l := newPageLayout(cfg)
	if l.bitmapSize != 8 {
		t.Fatalf("bitmapSize = %d, want 8", l.bitmapSize)
	}
	if l.headerSize != dataPageHeaderFixedSize+8 {
		t.Fatalf("headerSize = %d, want %d", l.headerSize, dataPageHeaderFixedSize+8)
	}
}

// TestDataPageInitSentinel is spec.md §4.1: init zero-fills the frame and
// sets min fields to an all-ones sentinel so the first insert's
// unconditional min-update establishes the true minimum.
func TestDataPageInitSentinel(t *testing.T) {
	l := testLayout()
	p := newDataPage(&l)
	p.init()

	for i, b := range p.minKey() {
		if b != 0xFF {
			t.Fatalf("minKey()[%d] = %#x, want 0xFF", i, b)
		}
	}
	for i, b := range p.minData() {
		if b != 0xFF {
			t.Fatalf("minData()[%d] = %#x, want 0xFF", i, b)
		}
	}
	if p.count() != 0 {
		t.Fatalf("count() = %d, want 0", p.count())
	}
	if p.logicalID() != InvalidLogicalPageId {
		t.Fatalf("logicalID() = %d, want InvalidLogicalPageId", p.logicalID())
	}
}

func TestDataPageAppendRecordAndAccessors(t *testing.T) {
	l := testLayout()
	p := newDataPage(&l)
	p.init()

	p.setLogicalID(7)
	p.appendRecord(key4(100), data12(9))
	p.appendRecord(key4(200), data12(19))

	if p.count() != 2 {
		t.Fatalf("count() = %d, want 2", p.count())
	}
	if p.logicalID() != 7 {
		t.Fatalf("logicalID() = %d, want 7", p.logicalID())
	}
	if got := binaryBEUint32(p.keyAt(0)); got != 100 {
		t.Fatalf("keyAt(0) = %d, want 100", got)
	}
	if got := binaryBEUint32(p.keyAt(1)); got != 200 {
		t.Fatalf("keyAt(1) = %d, want 200", got)
	}
	if got := dataVal(p.dataAt(1)); got != 19 {
		t.Fatalf("dataAt(1) = %d, want 19", got)
	}
}

func TestIdxPageLayoutAndEntries(t *testing.T) {
	cfg := Config{PageSize: 512, Parameters: ParamBmap, BitmapSize: 8}
	l := newIdxPageLayout(cfg)
	want := (512 - idxPageHeaderSize) / 8
	if l.maxRecords != want {
		t.Fatalf("maxRecords = %d, want %d", l.maxRecords, want)
	}

	ip := newIdxPage(&l)
	ip.init()
	if ip.count() != 0 {
		t.Fatalf("count() = %d, want 0", ip.count())
	}
	ip.setMinDataPageIdCovered(42)
	if ip.minDataPageIdCovered() != 42 {
		t.Fatalf("minDataPageIdCovered() = %d, want 42", ip.minDataPageIdCovered())
	}
	bm := make([]byte, 8)
	bm[0] = 0x01
	ip.appendEntry(bm)
	if ip.count() != 1 {
		t.Fatalf("count() = %d, want 1", ip.count())
	}
	if ip.entryAt(0)[0] != 0x01 {
		t.Fatalf("entryAt(0)[0] = %#x, want 0x01", ip.entryAt(0)[0])
	}
}
