package hashfunc

import (
	"hash/crc32"
	"hash/fnv"
)

// CRC32 - Ready to use hash function implemented using crc32.ChecksumIEEE to create a
// hash value over the pattern, clamped with modulo to a bucket number between 0 and
// tableSize - 1. It is deterministic over logically equal patterns and hence fulfills
// the hash strategy contract for any table size.
func CRC32(pattern string, tableSize uint64) uint64 {
	if tableSize == 0 {
		return 0
	}

	return uint64(crc32.ChecksumIEEE([]byte(pattern))) % tableSize
}

// FNV1a - Ready to use hash function implemented using the 64-bit FNV-1a algorithm,
// clamped with modulo to a bucket number between 0 and tableSize - 1. It spreads
// short textual keys somewhat better than CRC32 over small tables.
func FNV1a(pattern string, tableSize uint64) uint64 {
	if tableSize == 0 {
		return 0
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(pattern))

	return h.Sum64() % tableSize
}
