// SPDX-License-Identifier: MIT

package disjointset

import "fmt"

// slot is one registered item. A slot is a root iff parent equals its own
// index; size is only meaningful on roots.
type slot struct {
	parent int
	size   int
}

// UnionBySize is a quick-union structure with union by size and full path
// compression.
type UnionBySize[T comparable] struct {
	slots []slot
	index map[T]int
	sets  int
}

// NewUnionBySize returns an empty structure.
func NewUnionBySize[T comparable]() *UnionBySize[T] {
	return &UnionBySize[T]{index: make(map[T]int)}
}

// UnionBySizeFactory returns a Factory producing UnionBySize instances.
func UnionBySizeFactory[T comparable]() Factory[T] {
	return func() DisjointSets[T] { return NewUnionBySize[T]() }
}

// MakeSet allocates a root slot of size 1 for item. Slots are never reused.
func (d *UnionBySize[T]) MakeSet(item T) {
	if _, ok := d.index[item]; ok {
		return
	}
	id := len(d.slots)
	d.index[item] = id
	d.slots = append(d.slots, slot{parent: id, size: 1})
	d.sets++
}

// FindSet returns the root slot of item's set, compressing the path.
func (d *UnionBySize[T]) FindSet(item T) (int, error) {
	id, ok := d.index[item]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownItem, item)
	}
	return d.root(id), nil
}

// root walks to the root of id, then repoints every slot on the walked path
// directly at it.
func (d *UnionBySize[T]) root(id int) int {
	r := id
	for d.slots[r].parent != r {
		r = d.slots[r].parent
	}
	for id != r {
		next := d.slots[id].parent
		d.slots[id].parent = r
		id = next
	}
	return r
}

// Union merges the sets of a and b. The root of the larger set absorbs the
// other; on a tie the root of b's set goes under the root of a's set.
func (d *UnionBySize[T]) Union(a, b T) (bool, error) {
	ra, err := d.FindSet(a)
	if err != nil {
		return false, err
	}
	rb, err := d.FindSet(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}
	if d.slots[ra].size < d.slots[rb].size {
		ra, rb = rb, ra
	}
	d.slots[rb].parent = ra
	d.slots[ra].size += d.slots[rb].size
	d.sets--

	return true, nil
}

// SetSize returns the number of items in item's set.
func (d *UnionBySize[T]) SetSize(item T) (int, error) {
	r, err := d.FindSet(item)
	if err != nil {
		return 0, err
	}
	return d.slots[r].size, nil
}

// Len returns the number of registered items.
func (d *UnionBySize[T]) Len() int { return len(d.slots) }

// Count returns the number of disjoint sets.
func (d *UnionBySize[T]) Count() int { return d.sets }
