package sbits

import "math/bits"

// Bucketized bitmap codecs. Each divides a bounded numeric data range into
// N equal-width buckets (N = 8 * Size()) and sets one bit per inserted
// value's bucket. This is the "typical bucketization of a bounded numeric
// range" spec.md §4.6 describes. The bit-manipulation style (scanning for
// the lowest/highest set bit with math/bits) echoes the teacher's deleted
// spill/bitmap.go slot-allocation bitmap.

// Bitmap64 is a 64-bit (8-byte), 64-bucket codec.
type Bitmap64 struct {
	// Min is the lower bound of the bucketized range.
	Min uint64
	// BucketWidth is the numeric width of each of the 64 buckets.
	BucketWidth uint64
}

func (b Bitmap64) Size() int { return 8 }

func (b Bitmap64) Update(value []byte, bm []byte) {
	setBit(bm, b.bucket(value))
}

func (b Bitmap64) In(value []byte, bm []byte) bool {
	return bitSet(bm, b.bucket(value))
}

func (b Bitmap64) bucket(value []byte) int {
	return clampBucket(valueAsUint64(value), b.Min, b.BucketWidth, 64)
}

// Bitmap16 is a 16-bit (2-byte), 16-bucket codec.
type Bitmap16 struct {
	Min         uint64
	BucketWidth uint64
}

func (b Bitmap16) Size() int { return 2 }

func (b Bitmap16) Update(value []byte, bm []byte) {
	setBit(bm, b.bucket(value))
}

func (b Bitmap16) In(value []byte, bm []byte) bool {
	return bitSet(bm, b.bucket(value))
}

func (b Bitmap16) bucket(value []byte) int {
	return clampBucket(valueAsUint64(value), b.Min, b.BucketWidth, 16)
}

// Bitmap8 is an 8-bit (1-byte), 8-bucket codec.
//
// spec.md §9 flags that the original source's 8-bucket variant
// (updateBitmapInt8Bucket) reads the data value as 16 bits from a field
// declared 32-bit — a suspected bug, not a contract. This implementation
// decodes the value the same way as Bitmap16 and Bitmap64 (valueAsUint64:
// the low-order 8 bytes, big-endian) instead of reproducing that bug
// (see DESIGN.md "Open Question decisions").
type Bitmap8 struct {
	Min         uint64
	BucketWidth uint64
}

func (b Bitmap8) Size() int { return 1 }

func (b Bitmap8) Update(value []byte, bm []byte) {
	setBit(bm, b.bucket(value))
}

func (b Bitmap8) In(value []byte, bm []byte) bool {
	return bitSet(bm, b.bucket(value))
}

func (b Bitmap8) bucket(value []byte) int {
	return clampBucket(valueAsUint64(value), b.Min, b.BucketWidth, 8)
}

func clampBucket(v, min, width uint64, numBuckets int) int {
	if width == 0 {
		return 0
	}
	if v < min {
		return 0
	}
	bucket := int((v - min) / width)
	if bucket >= numBuckets {
		bucket = numBuckets - 1
	}
	return bucket
}

// valueAsUint64 decodes a big-endian numeric view of a data attribute for
// bucketization, analogous to keyAsUint64 in record.go.
func valueAsUint64(value []byte) uint64 {
	var v uint64
	start := 0
	if len(value) > 8 {
		start = len(value) - 8
	}
	for i := start; i < len(value); i++ {
		v = (v << 8) | uint64(value[i])
	}
	return v
}

func setBit(bm []byte, bit int) {
	bm[bit/8] |= 1 << uint(bit%8)
}

func bitSet(bm []byte, bit int) bool {
	return bm[bit/8]&(1<<uint(bit%8)) != 0
}

// buildQueryBitmap constructs the iterator's query bitmap from an optional
// (minData, maxData) range, per spec.md §4.5: invoke Update on the
// endpoints, then fill all bits between the first set bit of the min and
// the last set bit of the max. A nil endpoint means "unbounded on that
// side", which fills from bit 0 or to the last bit respectively.
func buildQueryBitmap(codec BitmapCodec, minData, maxData []byte) []byte {
	size := codec.Size()
	bm := make([]byte, size)
	lastBit := size*8 - 1

	lo := 0
	if minData != nil {
		tmp := make([]byte, size)
		codec.Update(minData, tmp)
		if b, ok := firstSetBit(tmp); ok {
			lo = b
		}
	}
	hi := lastBit
	if maxData != nil {
		tmp := make([]byte, size)
		codec.Update(maxData, tmp)
		if b, ok := lastSetBitOf(tmp); ok {
			hi = b
		}
	}
	if lo > hi {
		return bm
	}
	setBitRange(bm, lo, hi)
	return bm
}

func firstSetBit(bm []byte) (int, bool) {
	for i, word := range bm {
		if word != 0 {
			return i*8 + bits.TrailingZeros8(word), true
		}
	}
	return 0, false
}

func lastSetBitOf(bm []byte) (int, bool) {
	for i := len(bm) - 1; i >= 0; i-- {
		if bm[i] != 0 {
			return i*8 + (7 - bits.LeadingZeros8(bm[i])), true
		}
	}
	return 0, false
}

func setBitRange(bm []byte, lo, hi int) {
	for b := lo; b <= hi; b++ {
		setBit(bm, b)
	}
}

// bitmapOverlap reports whether page and the query bitmap share any set bit
// (spec.md §4.5's page-level predicate: AND of query bitmap and page
// bitmap is non-zero).
func bitmapOverlap(query, page []byte) bool {
	for i := 0; i < len(query) && i < len(page); i++ {
		if query[i]&page[i] != 0 {
			return true
		}
	}
	return false
}
