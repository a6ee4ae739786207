package conf

// TableHeaderUnit - Number of bytes accounted for the table record itself in memory size
// estimates: the bucket slice header, four strategy references and three counters as
// laid out on a 64-bit machine
const TableHeaderUnit uint64 = 80

// BucketRefUnit - Number of bytes accounted per bucket slot in the bucket array
const BucketRefUnit uint64 = 8

// BucketUnit - Number of bytes accounted per filled bucket, i.e. the first/last
// references anchoring a fill chain
const BucketUnit uint64 = 16

// FillUnit - Number of bytes accounted per fill node: the object reference, the next
// fill reference and the first/last duplicate references
const FillUnit uint64 = 32

// DuplicateUnit - Number of bytes accounted per duplicate node: the object reference
// and the next duplicate reference
const DuplicateUnit uint64 = 16
