// SPDX-License-Identifier: MIT

package disjointset

import "fmt"

// QuickFind labels every item with its set id directly. FindSet is O(1),
// Union relabels one whole set in O(n).
type QuickFind[T comparable] struct {
	ids   []int
	index map[T]int
}

// NewQuickFind returns an empty structure.
func NewQuickFind[T comparable]() *QuickFind[T] {
	return &QuickFind[T]{index: make(map[T]int)}
}

// QuickFindFactory returns a Factory producing QuickFind instances.
func QuickFindFactory[T comparable]() Factory[T] {
	return func() DisjointSets[T] { return NewQuickFind[T]() }
}

func (d *QuickFind[T]) MakeSet(item T) {
	if _, ok := d.index[item]; ok {
		return
	}
	id := len(d.ids)
	d.index[item] = id
	d.ids = append(d.ids, id)
}

func (d *QuickFind[T]) FindSet(item T) (int, error) {
	id, ok := d.index[item]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownItem, item)
	}
	return d.ids[id], nil
}

func (d *QuickFind[T]) Union(a, b T) (bool, error) {
	sa, err := d.FindSet(a)
	if err != nil {
		return false, err
	}
	sb, err := d.FindSet(b)
	if err != nil {
		return false, err
	}
	if sa == sb {
		return false, nil
	}
	for i, s := range d.ids {
		if s == sb {
			d.ids[i] = sa
		}
	}
	return true, nil
}
