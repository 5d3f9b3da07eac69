// SPDX-License-Identifier: MIT

// Package disjointset provides union-find structures over arbitrary
// comparable items.
//
// UnionBySize keeps a dense slice of slots, one per registered item, plus a
// map item → slot. Each slot stores its parent slot and, for roots, the size
// of its set. FindSet compresses the walked path so every visited slot points
// straight at the root; Union attaches the smaller tree under the larger one.
// Together they give an amortized cost per operation of O(α(n)).
//
// QuickFind is a reference implementation with O(1) FindSet and O(n) Union,
// used to cross-check UnionBySize in tests.
//
// Errors:
//
//	ErrUnknownItem – FindSet/Union/SetSize on an item never passed to MakeSet.
package disjointset
