// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package cdt

import "sort"

// pooled is an entity owned by a pool. The slot is its position in the
// pool's item slice, or -1 once it has been removed.
type pooled interface {
	comparable
	slot() int
	setSlot(int)
	id() int
}

// pool is an arena of live entities. Removal swaps the last item into the
// hole.
type pool[T pooled] struct {
	items  []T
	nextID int
}

func (p *pool[T]) add(x T) {
	x.setSlot(len(p.items))
	p.items = append(p.items, x)
}

func (p *pool[T]) remove(x T) {
	i := x.slot()
	if i < 0 || i >= len(p.items) || p.items[i] != x {
		return
	}
	last := len(p.items) - 1
	p.items[i] = p.items[last]
	p.items[i].setSlot(i)
	var zero T
	p.items[last] = zero
	p.items = p.items[:last]
	x.setSlot(-1)
}

// newID returns a fresh identity. Zero is reserved for the sentinels.
func (p *pool[T]) newID() int {
	p.nextID++
	return p.nextID
}

func (p *pool[T]) len() int {
	return len(p.items)
}

func (p *pool[T]) at(i int) T {
	return p.items[i]
}

// sorted returns a copy of the live items ordered by identity.
func (p *pool[T]) sorted() []T {
	r := make([]T, len(p.items))
	copy(r, p.items)
	sort.Slice(r, func(i, j int) bool {
		return r[i].id() < r[j].id()
	})
	return r
}
