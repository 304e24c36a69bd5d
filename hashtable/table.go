// File: table.go
// Role: Table lifecycle, upsert/lookup/remove and growth.
//
// Determinism:
//   - Bucket order is insertion order; growth re-buckets pairs in the order
//     the old buckets are scanned, so Range output is reproducible for a
//     given sequence of operations.
package hashtable

// Table is a separate-chaining hash table from string keys to int values.
//
// The zero value is not usable; build one with New.
type Table struct {
	buckets [][]entry // bucket index → pairs in chain order
	size    int       // live pairs
}

// New creates an empty Table with DefaultCapacity buckets unless
// WithCapacity says otherwise.
// Complexity: O(capacity).
func New(opts ...Option) *Table {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return &Table{buckets: make([][]entry, o.capacity)}
}

// Insert stores value under key (upsert).
//
// An existing key is overwritten in place and Len is unchanged. A new key
// is appended to the end of its bucket; the growth check runs first.
// Complexity: O(1) expected, O(n) on a growth step.
func (t *Table) Insert(key string, value int) {
	// 1. Overwrite in place when the key is already present.
	if p := t.find(key); p != nil {
		*p = value
		return
	}
	// 2. Grow before appending so the new pair lands in its final bucket.
	t.growIfNeeded()
	i := t.index(key)
	t.buckets[i] = append(t.buckets[i], entry{key: key, value: value})
	t.size++
}

// Lookup returns the value stored under key.
// A miss returns (0, false); it is not an error.
func (t *Table) Lookup(key string) (int, bool) {
	if p := t.find(key); p != nil {
		return *p, true
	}

	return 0, false
}

// Contains reports whether key is present.
func (t *Table) Contains(key string) bool {
	_, ok := t.Lookup(key)

	return ok
}

// Ref returns a pointer to the value stored under key, creating the pair with
// value 0 when it is missing (Len grows by one in that case).
//
// The pointer refers to bucket storage. It is valid until the next call that
// may append or move pairs: Insert or Ref of a new key, or Remove.
func (t *Table) Ref(key string) *int {
	if p := t.find(key); p != nil {
		return p
	}
	t.growIfNeeded()
	i := t.index(key)
	t.buckets[i] = append(t.buckets[i], entry{key: key})
	t.size++

	return &t.buckets[i][len(t.buckets[i])-1].value
}

// Remove deletes key and reports whether a pair was removed.
// Capacity is never reduced.
func (t *Table) Remove(key string) bool {
	i := t.index(key)
	chain := t.buckets[i]
	for j := range chain {
		if chain[j].key != key {
			continue
		}
		// Keep the remaining pairs in chain order.
		copy(chain[j:], chain[j+1:])
		chain[len(chain)-1] = entry{}
		t.buckets[i] = chain[:len(chain)-1]
		t.size--

		return true
	}

	return false
}

// Len returns the number of live pairs.
func (t *Table) Len() int { return t.size }

// Cap returns the current bucket count.
func (t *Table) Cap() int { return len(t.buckets) }

// IsEmpty reports whether the table holds no pairs.
func (t *Table) IsEmpty() bool { return t.size == 0 }

// LoadFactor returns Len()/Cap().
func (t *Table) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// Range calls fn for every pair in bucket order, then chain order.
// Iteration stops early when fn returns false. fn must not mutate the table.
func (t *Table) Range(fn func(key string, value int) bool) {
	for _, chain := range t.buckets {
		for _, e := range chain {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// index maps key to its bucket under the current capacity.
func (t *Table) index(key string) int {
	return int(Hash(key) % uint64(len(t.buckets)))
}

// find scans key's bucket and returns a pointer to the first matching value.
func (t *Table) find(key string) *int {
	chain := t.buckets[t.index(key)]
	for j := range chain {
		if chain[j].key == key {
			return &chain[j].value
		}
	}

	return nil
}

// growIfNeeded doubles the bucket count while one more pair would push the
// load factor above MaxLoadFactor.
func (t *Table) growIfNeeded() {
	for float64(t.size+1)/float64(len(t.buckets)) > MaxLoadFactor {
		t.rehash(len(t.buckets) * 2)
	}
}

// rehash moves every pair into a fresh bucket array of size capacity.
func (t *Table) rehash(capacity int) {
	next := make([][]entry, capacity)
	for _, chain := range t.buckets {
		for _, e := range chain {
			i := Hash(e.key) % uint64(capacity)
			next[i] = append(next[i], e)
		}
	}
	t.buckets = next
}
