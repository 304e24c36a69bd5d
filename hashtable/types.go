package hashtable

const (
	// DefaultCapacity is the bucket count of a Table built without WithCapacity.
	DefaultCapacity = 16

	// MaxLoadFactor is the size/capacity ratio the table never exceeds after an insertion.
	MaxLoadFactor = 0.75

	// djb2Seed is the initial DJB2 hash value.
	djb2Seed uint64 = 5381
)

// entry is one (key, value) pair stored in a bucket.
type entry struct {
	key   string
	value int
}

// Option configures a Table before creation.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity sets the initial bucket count.
// Values below 1 fall back to DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.capacity = n
		}
	}
}

// Hash returns the DJB2 hash of key over its bytes.
// Arithmetic wraps at 64 bits.
func Hash(key string) uint64 {
	h := djb2Seed
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i]) // same as (h << 5) + h + b
	}

	return h
}
