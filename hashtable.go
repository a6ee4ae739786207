package hashtable

import (
	"fmt"

	"github.com/gostonefire/hashtable/internal/arena"
	"github.com/gostonefire/hashtable/internal/conf"
)

// HashFunc - Strategy that maps a pattern to a bucket number given the table size.
// It must return a value between 0 and tableSize - 1 and must be deterministic over
// logically equal patterns, otherwise lookups will silently miss. A returned value
// outside that range is caught downstream and reported as a BucketOutOfRange error.
type HashFunc func(pattern string, tableSize uint64) uint64

// CompareFunc - Strategy that defines a total order over object keys. It returns a
// negative number if a's key precedes b's key, 0 if the keys are equal (b is then a
// duplicate of a) and a positive number if a's key follows b's key. Objects with equal
// keys must hash to the same bucket.
type CompareFunc[T any] func(a, b T) int

// SearchFunc - Strategy that reports whether the candidate object's key equals the
// lookup pattern. It must agree with the hash and compare strategies for the same
// logical key.
type SearchFunc[T any] func(pattern string, candidate T) bool

// FreeFunc - Strategy invoked exactly once per stored object during Free, releasing
// whatever resources the object holds. It is optional, a nil FreeFunc means the table
// never touches stored objects during teardown.
type FreeFunc[T any] func(object T)

// bucket - Anchors one ordered chain of fill nodes, referencing both ends.
// An empty bucket has firstFill set to arena.None.
type bucket struct {
	firstFill int
	lastFill  int
}

// HashTableInfo - Information structure containing some information about the hash table created
//   - NumberOfBuckets is the fixed number of bucket slots in the table
//   - EmptySize is the estimated memory consumption in bytes of the table before any insert
type HashTableInfo struct {
	NumberOfBuckets uint64
	EmptySize       uint64
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of objects stored
//   - BucketsFilled is the number of buckets holding at least one object
//   - Collisions is the number of fill entries created beyond the first of their bucket
//   - Duplicates is the number of objects stored beneath a representative with an equal key
//   - BucketDistribution is the number of objects stored in each bucket
type HashTableStat struct {
	Records            uint64
	BucketsFilled      uint64
	Collisions         uint64
	Duplicates         uint64
	BucketDistribution []uint64
}

// HashTable - A generic string-keyed hash table with separate chaining for collisions
// and an explicit secondary chain for exact-duplicate keys. The bucket count is fixed
// at construction, there is no removal of individual records and no internal locking.
type HashTable[T any] struct {
	buckets         []bucket
	numberOfBuckets uint64
	bucketsFilled   uint64
	collisions      uint64
	duplicates      uint64
	hashFunc        HashFunc
	compareFunc     CompareFunc[T]
	searchFunc      SearchFunc[T]
	freeFunc        FreeFunc[T]
	nodes           *arena.Arena[T]
}

// NewHashTable - Returns a new hash table with a fixed number of empty buckets and the
// given strategies wired in. The number of buckets cannot be changed afterwards, so it
// should be chosen against the expected number of distinct keys to keep chains short.
//   - numberOfBuckets is the fixed size of the bucket array
//   - hashFn maps a pattern to a bucket number, see HashFunc (the hashfunc package provides ready to use implementations)
//   - compareFn orders object keys and detects duplicates, see CompareFunc
//   - searchFn matches a lookup pattern against an object, see SearchFunc
//   - freeFn is optional (may be nil) and is invoked per stored object during Free, see FreeFunc
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - hashTableInfo is a HashTableInfo struct containing some data regarding the hash table created
//   - err is a normal Go error which should be nil if everything went ok
func NewHashTable[T any](
	numberOfBuckets uint64,
	hashFn HashFunc,
	compareFn CompareFunc[T],
	searchFn SearchFunc[T],
	freeFn FreeFunc[T],
) (
	hashTable *HashTable[T],
	hashTableInfo HashTableInfo,
	err error,
) {

	// Check if numberOfBuckets is valid
	if numberOfBuckets == 0 {
		err = fmt.Errorf("numberOfBuckets must be a positive value higher than 0 (zero)")
		return
	}

	// Check that the mandatory strategies are present
	if hashFn == nil {
		err = fmt.Errorf("hashFn must not be nil")
		return
	}
	if compareFn == nil {
		err = fmt.Errorf("compareFn must not be nil")
		return
	}
	if searchFn == nil {
		err = fmt.Errorf("searchFn must not be nil")
		return
	}

	buckets := make([]bucket, numberOfBuckets)
	for i := range buckets {
		buckets[i] = bucket{firstFill: arena.None, lastFill: arena.None}
	}

	hashTable = &HashTable[T]{
		buckets:         buckets,
		numberOfBuckets: numberOfBuckets,
		hashFunc:        hashFn,
		compareFunc:     compareFn,
		searchFunc:      searchFn,
		freeFunc:        freeFn,
		nodes:           arena.NewArena[T](),
	}

	hashTableInfo = HashTableInfo{
		NumberOfBuckets: numberOfBuckets,
		EmptySize:       hashTable.Size(),
	}

	return
}

// Stat - Produces a HashTableStat struct with counters and, on request, the record
// distribution over buckets. With a very large bucket array the distribution slice can
// be memory heavy (there will be one entry per bucket) and producing it requires a walk
// over every chain in the table.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashTableStat.BucketDistribution to nil.
func (H *HashTable[T]) Stat(includeDistribution bool) (hashTableStat *HashTableStat) {
	hts := HashTableStat{
		Records:       H.bucketsFilled + H.collisions + H.duplicates,
		BucketsFilled: H.bucketsFilled,
		Collisions:    H.collisions,
		Duplicates:    H.duplicates,
	}

	if includeDistribution {
		hts.BucketDistribution = make([]uint64, H.numberOfBuckets)

		// Iterate over every available bucket and walk its chains
		for i := range H.buckets {
			currentFill := H.buckets[i].firstFill
			for currentFill != arena.None {
				fill := H.nodes.Fill(currentFill)
				hts.BucketDistribution[i]++

				currentDup := fill.FirstDuplicate
				for currentDup != arena.None {
					hts.BucketDistribution[i]++
					currentDup = H.nodes.Duplicate(currentDup).NextDuplicate
				}

				currentFill = fill.NextFill
			}
		}
	}

	hashTableStat = &hts
	return
}

// Size - Returns an estimate of the number of bytes the hash table currently occupies:
// the table record, the bucket array, one bucket anchor per filled bucket, one fill
// node per distinct key and one duplicate node per duplicate. Stored objects and any
// allocator or alignment overhead are deliberately excluded, so the figure is a
// diagnostic estimate rather than an exact measure. Since records cannot be removed
// the estimate never decreases over a sequence of inserts.
func (H *HashTable[T]) Size() (byteCount uint64) {
	tableSize := conf.TableHeaderUnit + H.numberOfBuckets*conf.BucketRefUnit
	bucketSize := H.bucketsFilled * conf.BucketUnit
	fillSize := (H.bucketsFilled + H.collisions) * conf.FillUnit
	duplicateSize := H.duplicates * conf.DuplicateUnit

	byteCount = tableSize + bucketSize + fillSize + duplicateSize
	return
}
