package rng

// ByteSource produces uniformly distributed random bytes on demand.  Implementations
// are not required to be safe for concurrent use.
type ByteSource interface {
	Byte() (byte, error)
}
