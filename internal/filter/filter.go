package filter

// Filter answers approximate membership questions for integer keys.
// A negative answer is definitive, a positive answer may be wrong.
type Filter interface {
	Add(key int64)
	MayContain(key int64) bool
	Reset()
	KeyCount() int
}
