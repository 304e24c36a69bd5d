// Package hashtable implements a string-keyed associative store with
// separate chaining and automatic growth.
//
// What:
//
//   - Table maps string keys to int values.
//   - Buckets are owned slices of (key, value) pairs kept in insertion order;
//     no pair repeats a key within a bucket.
//   - Keys are hashed with DJB2 (seed 5381, h = h*33 + b, wrapping uint64);
//     the bucket index is Hash(key) % Cap().
//   - Before a new key is appended, the table doubles its bucket count if the
//     insertion would push the load factor above 0.75, then re-buckets every
//     pair (hash % new capacity).
//
// Why:
//
//   - Label → dense-id resolution for core.Graph.
//   - Predictable, inspectable growth (Len, Cap, LoadFactor) for tests and
//     diagnostics.
//
// Complexity:
//
//   - Insert, Lookup, Contains, Ref, Remove: O(1) expected, O(n) worst case
//     when every key collides.
//   - Growth: O(n), amortized O(1) per insertion.
//
// The table never shrinks: Remove decrements Len but keeps Cap.
// A Table is not safe for concurrent use.
package hashtable
