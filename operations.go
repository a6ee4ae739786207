package hashtable

import (
	"github.com/gostonefire/hashtable/internal/arena"
)

// Insert - Inserts a new object into the hash table under the key represented by pattern.
// If the hashed bucket already holds objects the bucket's chain is kept ordered by the
// compare strategy, and an object whose key compares equal to an already present
// representative is appended to that representative's duplicate chain in insertion order.
//   - object is the object to store, it is referenced and not copied
//   - pattern is the textual key that will be hashed for bucket selection
//
// It returns:
//   - err is of type BucketOutOfRange if the hash strategy misbehaves, otherwise nil
func (H *HashTable[T]) Insert(object T, pattern string) (err error) {
	bucketNo, err := H.bucketNo(pattern)
	if err != nil {
		return
	}

	b := &H.buckets[bucketNo]

	// No fill in bucket yet, place object as its sole chain
	if b.firstFill == arena.None {
		ref := H.nodes.NewFill(object)
		b.firstFill = ref
		b.lastFill = ref
		H.bucketsFilled++
		return
	}

	// Collision found - walk the ordered chain and check for duplicates on the way
	prevFill := arena.None
	currentFill := b.firstFill
	for currentFill != arena.None {
		fill := H.nodes.Fill(currentFill)
		compareVal := H.compareFunc(fill.Object, object)

		if compareVal == 0 {
			// Duplicate - append to the tail of the duplicate chain
			ref := H.nodes.NewDuplicate(object)
			if fill.LastDuplicate != arena.None {
				H.nodes.Duplicate(fill.LastDuplicate).NextDuplicate = ref
			} else {
				fill.FirstDuplicate = ref
			}
			fill.LastDuplicate = ref
			H.duplicates++
			return
		}

		if compareVal > 0 {
			// New object goes before the current fill, stop walking
			break
		}

		prevFill = currentFill
		currentFill = fill.NextFill
	}

	// Not a duplicate - splice a new fill at the current chain position
	ref := H.nodes.NewFill(object)
	if currentFill != arena.None {
		H.nodes.Fill(ref).NextFill = currentFill
	} else {
		b.lastFill = ref
	}
	if prevFill != arena.None {
		H.nodes.Fill(prevFill).NextFill = ref
	} else {
		b.firstFill = ref
	}
	H.collisions++

	return
}

// InsertNoDuplicate - Inserts a new object only if no object with an equal key is
// already in the table, otherwise the table is left untouched.
//   - object is the object to store, it is referenced and not copied
//   - pattern is the textual key that will be hashed for bucket selection, it should be unique per object
//
// It returns:
//   - existing is the first already stored object matching pattern, only valid together with an error of type RecordExists
//   - err is of type RecordExists if an object with an equal key was found, of type BucketOutOfRange if the hash strategy misbehaves, otherwise nil
func (H *HashTable[T]) InsertNoDuplicate(object T, pattern string) (existing T, err error) {
	// Check if already in table, one record is enough to know
	found, err := H.Match(pattern, 1)
	if err != nil {
		return
	}

	if len(found) > 0 {
		existing = found[0]
		err = RecordExists{}
		return
	}

	err = H.Insert(object, pattern)
	return
}

// Match - Finds objects in the table given a pattern. Only the bucket the pattern
// hashes to is examined, hence the search strategy must agree with the hash strategy
// for the same logical key. On the first fill whose representative matches, the
// representative and up to maxRecords - 1 objects from its duplicate chain are
// collected in chain order.
//   - pattern is the textual key that will be hashed for bucket selection
//   - maxRecords caps the number of objects returned, the result may hold fewer
//
// It returns:
//   - found is the collected objects, nil if nothing matched (a miss is not an error)
//   - err is of type BucketOutOfRange if the hash strategy misbehaves, otherwise nil
func (H *HashTable[T]) Match(pattern string, maxRecords uint64) (found []T, err error) {
	bucketNo, err := H.bucketNo(pattern)
	if err != nil {
		return
	}
	if maxRecords == 0 {
		return
	}

	currentFill := H.buckets[bucketNo].firstFill
	for currentFill != arena.None {
		fill := H.nodes.Fill(currentFill)

		if H.searchFunc(pattern, fill.Object) {
			// Found match, collect it and duplicates up to the cap
			found = append(found, fill.Object)

			currentDup := fill.FirstDuplicate
			for currentDup != arena.None && uint64(len(found)) < maxRecords {
				dup := H.nodes.Duplicate(currentDup)
				found = append(found, dup.Object)
				currentDup = dup.NextDuplicate
			}

			return
		}

		currentFill = fill.NextFill
	}

	return
}

// FirstMatch - Finds the first object in the table matching the given pattern.
//   - pattern is the textual key that will be hashed for bucket selection
//
// It returns:
//   - object is the matching object if found, if not found an error of type NoRecordFound is also returned
//   - err is either of type NoRecordFound, of type BucketOutOfRange, or nil
func (H *HashTable[T]) FirstMatch(pattern string) (object T, err error) {
	found, err := H.Match(pattern, 1)
	if err != nil {
		return
	}

	if len(found) == 0 {
		err = NoRecordFound{}
		return
	}

	object = found[0]
	return
}

// Free - Tears the whole table down. For every bucket, fill and duplicate, innermost
// first, the free strategy (if one was supplied) is invoked exactly once per stored
// object, then all internal node storage and the bucket array are released. There is
// no partial or selective teardown, and the table must not be used after this call -
// any further operation sees an empty zero-bucket table.
func (H *HashTable[T]) Free() {
	if H.freeFunc != nil {
		for i := range H.buckets {
			currentFill := H.buckets[i].firstFill
			for currentFill != arena.None {
				fill := H.nodes.Fill(currentFill)

				currentDup := fill.FirstDuplicate
				for currentDup != arena.None {
					dup := H.nodes.Duplicate(currentDup)
					H.freeFunc(dup.Object)
					currentDup = dup.NextDuplicate
				}

				H.freeFunc(fill.Object)
				currentFill = fill.NextFill
			}
		}
	}

	H.nodes.Drop()
	H.buckets = nil
	H.numberOfBuckets = 0
}

// bucketNo - Returns which bucket number the given pattern hashes to, guarding
// against hash strategies that return a number outside the bucket array.
func (H *HashTable[T]) bucketNo(pattern string) (bucketNo uint64, err error) {
	bucketNo = H.hashFunc(pattern, H.numberOfBuckets)
	if bucketNo >= H.numberOfBuckets {
		err = BucketOutOfRange{}
		bucketNo = 0
		return
	}

	return
}
