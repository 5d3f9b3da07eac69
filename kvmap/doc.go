// SPDX-License-Identifier: MIT

// Package kvmap provides the associative containers the shortest-path finder
// uses for its distance and parent bookkeeping.
//
//   - ArrayMap: unordered entries in a slice, linear lookups. Good for a
//     handful of keys and as the chain type inside ChainedHashMap.
//   - ChainedHashMap: separate chaining over ArrayMap buckets. The bucket
//     array doubles (full rehash) whenever the load factor reaches the
//     configured threshold before an insert.
//
// Neither map guarantees iteration order, and neither is safe for concurrent
// use.
//
// Errors:
//
//	ErrIllegalConfiguration – a non-positive capacity, chain count or
//	                          load-factor threshold passed to a constructor.
package kvmap
