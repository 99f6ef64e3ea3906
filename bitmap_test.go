package sbits

import "testing"

func TestBitmap64UpdateAndIn(t *testing.T) {
	codec := Bitmap64{Min: 0, BucketWidth: 10}
	bm := make([]byte, codec.Size())
	codec.Update(data12(305), bm)

	if !codec.In(data12(305), bm) {
		t.Fatal("In(305) should be true after Update(305)")
	}
	if !codec.In(data12(300), bm) {
		t.Fatal("In(300) should be true: same bucket as 305")
	}
	if codec.In(data12(400), bm) {
		t.Fatal("In(400) should be false: different bucket")
	}
}

func TestBitmap16And8(t *testing.T) {
	for _, codec := range []BitmapCodec{
		Bitmap16{Min: 0, BucketWidth: 5},
		Bitmap8{Min: 0, BucketWidth: 5},
	} {
		bm := make([]byte, codec.Size())
		codec.Update(data12(12), bm)
		if !codec.In(data12(12), bm) {
			t.Fatalf("%T: In(12) should be true after Update(12)", codec)
		}
	}
}

func TestBitmapMonotoneUnion(t *testing.T) {
	// spec.md §4.6: bits set for v must be a subset of the bits set after
	// Update is called for both v and some v'.
	codec := Bitmap64{Min: 0, BucketWidth: 10}
	bmV := make([]byte, codec.Size())
	codec.Update(data12(50), bmV)

	bmBoth := make([]byte, codec.Size())
	codec.Update(data12(50), bmBoth)
	codec.Update(data12(950), bmBoth)

	for i := range bmV {
		if bmV[i]&^bmBoth[i] != 0 {
			t.Fatalf("bit set for v=50 alone is not a subset of the union at byte %d", i)
		}
	}
}

func TestBuildQueryBitmapRange(t *testing.T) {
	codec := Bitmap64{Min: 0, BucketWidth: 10}
	qb := buildQueryBitmap(codec, data12(300), data12(630))

	inRange := make([]byte, codec.Size())
	codec.Update(data12(450), inRange)
	if !bitmapOverlap(qb, inRange) {
		t.Fatal("450 should overlap the [300,630] query bitmap")
	}

	outOfRange := make([]byte, codec.Size())
	codec.Update(data12(50), outOfRange)
	if bitmapOverlap(qb, outOfRange) {
		t.Fatal("50 should not overlap the [300,630] query bitmap")
	}
}

func TestBuildQueryBitmapUnboundedEndpoints(t *testing.T) {
	codec := Bitmap64{Min: 0, BucketWidth: 10}

	qb := buildQueryBitmap(codec, nil, nil)
	for i, b := range qb {
		if b != 0xFF {
			t.Fatalf("fully unbounded query bitmap byte %d = %#x, want 0xFF", i, b)
		}
	}
}

func TestBitmapOverlapDisjoint(t *testing.T) {
	a := []byte{0x0F, 0x00}
	b := []byte{0xF0, 0x00}
	if bitmapOverlap(a, b) {
		t.Fatal("disjoint bitmaps should not overlap")
	}
	b[0] = 0x01
	if !bitmapOverlap(a, b) {
		t.Fatal("bitmaps sharing a bit should overlap")
	}
}
