package sbits

import "encoding/binary"

// baseConfig returns a valid Config for the "sequential dense" fixture
// from spec.md §8's end-to-end scenarios (pageSize=512, keySize=4,
// dataSize=12, recordSize=16, bufferSizeInBlocks=4, eraseSizeInPages=4),
// backed by the in-memory Storage so tests built on it never touch disk.
func baseConfig(numPages int) Config {
	return Config{
		RecordSize:         16,
		KeySize:            4,
		DataSize:           12,
		PageSize:           512,
		BufferSizeInBlocks: 4,
		StartAddress:       0,
		EndAddress:         int64(512 * numPages),
		EraseSizeInPages:   4,
		Parameters:         ParamMaxMin,
		CompareKey:         CompareUint32Key,
		CompareData:        CompareUint32Key,
		Storage:            StorageMemory,
	}
}

func key4(k uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, k)
	return b
}

// data12 packs v as a big-endian number into the last 4 bytes of a 12-byte
// value, leaving the first 8 bytes zero, so the 12 bytes read as the number
// v both to the comparators (record.go's compareUintBytes) and to the
// bitmap codecs (bitmap.go's valueAsUint64, which decodes the low-order 8
// bytes).
func data12(v uint32) []byte {
	b := make([]byte, 12)
	binary.BigEndian.PutUint32(b[8:], v)
	return b
}

func dataVal(d []byte) uint32 {
	return binary.BigEndian.Uint32(d[8:12])
}
