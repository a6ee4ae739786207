//go:build unit

package hashfunc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32(t *testing.T) {
	t.Run("creates valid bucket numbers", func(t *testing.T) {
		// Prepare
		patterns := []string{"", "cat", "dog", "bird", "a longer pattern with spaces"}
		tableSizes := []uint64{1, 2, 7, 10, 1024, 100000}

		// Execute / Check
		for _, tableSize := range tableSizes {
			for _, pattern := range patterns {
				bucketNo := CRC32(pattern, tableSize)
				assert.Lessf(t, bucketNo, tableSize, "bucket number for %q within table size %d", pattern, tableSize)
			}
		}
	})

	t.Run("is deterministic over equal patterns", func(t *testing.T) {
		// Prepare
		pattern := fmt.Sprintf("%s%s", "c", "at")

		// Execute
		first := CRC32("cat", 1024)
		second := CRC32(pattern, 1024)

		// Check
		assert.Equal(t, first, second, "equal patterns hash equally")
	})

	t.Run("guards against a zero table size", func(t *testing.T) {
		// Execute
		bucketNo := CRC32("cat", 0)

		// Check
		assert.Zero(t, bucketNo, "zero table size gives bucket zero")
	})
}

func TestFNV1a(t *testing.T) {
	t.Run("creates valid bucket numbers", func(t *testing.T) {
		// Prepare
		patterns := []string{"", "cat", "dog", "bird", "a longer pattern with spaces"}
		tableSizes := []uint64{1, 2, 7, 10, 1024, 100000}

		// Execute / Check
		for _, tableSize := range tableSizes {
			for _, pattern := range patterns {
				bucketNo := FNV1a(pattern, tableSize)
				assert.Lessf(t, bucketNo, tableSize, "bucket number for %q within table size %d", pattern, tableSize)
			}
		}
	})

	t.Run("is deterministic over equal patterns", func(t *testing.T) {
		// Execute
		first := FNV1a("cat", 1024)
		second := FNV1a("cat", 1024)

		// Check
		assert.Equal(t, first, second, "equal patterns hash equally")
	})

	t.Run("guards against a zero table size", func(t *testing.T) {
		// Execute
		bucketNo := FNV1a("cat", 0)

		// Check
		assert.Zero(t, bucketNo, "zero table size gives bucket zero")
	})
}
