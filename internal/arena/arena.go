package arena

// None - Reference value denoting the absence of a node
const None int = -1

// FillNode - Holds one distinct key's representative object within a bucket chain.
// NextFill references the next fill node in the same bucket, FirstDuplicate and
// LastDuplicate anchor the chain of objects whose keys compare equal to Object.
type FillNode[T any] struct {
	Object         T
	NextFill       int
	FirstDuplicate int
	LastDuplicate  int
}

// DuplicateNode - Holds one object whose key compares equal to the representative
// of the fill node owning the chain. NextDuplicate references the next node in
// insertion order.
type DuplicateNode[T any] struct {
	Object        T
	NextDuplicate int
}

// Arena - Slab allocated node storage. Fill and duplicate nodes live in two growable
// slabs and are addressed by integer references rather than pointers, hence node
// identity is stable over the lifetime of the arena and there are no owning pointers
// to manually unlink. Nodes are never released individually, only all at once in Drop.
type Arena[T any] struct {
	fills      []FillNode[T]
	duplicates []DuplicateNode[T]
}

// NewArena - Returns a pointer to a new empty Arena instance
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// NewFill - Creates a new fill node holding the given object with all chain
// references set to None, and returns its reference.
func (A *Arena[T]) NewFill(object T) int {
	A.fills = append(A.fills, FillNode[T]{
		Object:         object,
		NextFill:       None,
		FirstDuplicate: None,
		LastDuplicate:  None,
	})

	return len(A.fills) - 1
}

// NewDuplicate - Creates a new duplicate node holding the given object with the next
// reference set to None, and returns its reference.
func (A *Arena[T]) NewDuplicate(object T) int {
	A.duplicates = append(A.duplicates, DuplicateNode[T]{
		Object:        object,
		NextDuplicate: None,
	})

	return len(A.duplicates) - 1
}

// Fill - Returns the fill node behind the given reference.
// The returned pointer is invalidated by the next call to NewFill.
func (A *Arena[T]) Fill(ref int) *FillNode[T] {
	return &A.fills[ref]
}

// Duplicate - Returns the duplicate node behind the given reference.
// The returned pointer is invalidated by the next call to NewDuplicate.
func (A *Arena[T]) Duplicate(ref int) *DuplicateNode[T] {
	return &A.duplicates[ref]
}

// Fills - Returns the number of fill nodes created
func (A *Arena[T]) Fills() int {
	return len(A.fills)
}

// Duplicates - Returns the number of duplicate nodes created
func (A *Arena[T]) Duplicates() int {
	return len(A.duplicates)
}

// Drop - Releases both slabs, leaving held objects to the garbage collector.
// Any outstanding reference is invalid after this call.
func (A *Arena[T]) Drop() {
	A.fills = nil
	A.duplicates = nil
}
