package hashtable

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// RecordExists - Custom error to inform that a record with an equal key is already in the table
type RecordExists struct {
	msg string
}

// Error - Used to notify that a record already exists
func (E RecordExists) Error() string {
	if E.msg == "" {
		return "record already exists"
	}
	return E.msg
}

// BucketOutOfRange - Custom error to inform that the hash function returned a bucket number
// outside the permitted range
type BucketOutOfRange struct {
	msg string
}

// Error - Used to notify that a bucket number is out of range
func (E BucketOutOfRange) Error() string {
	if E.msg == "" {
		return "received bucket number from hash function is outside permitted range"
	}
	return E.msg
}
