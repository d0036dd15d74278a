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

import (
	"container/heap"
)

type badTri struct {
	BadTriangle
	seq int
}

type pq []badTri

func (p pq) Len() int {
	return len(p)
}

func (p pq) Less(i, j int) bool {
	if p[i].Key != p[j].Key {
		return p[i].Key > p[j].Key
	}
	return p[i].seq < p[j].seq
}

func (p pq) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

func (p *pq) Push(x interface{}) {
	*p = append(*p, x.(badTri))
}

func (p *pq) Pop() interface{} {
	old := *p
	x := old[len(old)-1]
	*p = old[:len(old)-1]
	return x
}

// FlawQueue is a FlawSink that keeps bad triangles in a priority queue,
// worst first, and encroached subsegments in arrival order.
type FlawQueue struct {
	tris pq
	segs []BadSubseg
	seq  int
}

// NewFlawQueue returns an empty queue.
func NewFlawQueue() *FlawQueue {
	q := &FlawQueue{}
	heap.Init(&q.tris)
	return q
}

// AddBadTriangle implements FlawSink.
func (q *FlawQueue) AddBadTriangle(t BadTriangle) {
	heap.Push(&q.tris, badTri{BadTriangle: t, seq: q.seq})
	q.seq++
}

// AddBadSubseg implements FlawSink.
func (q *FlawQueue) AddBadSubseg(s BadSubseg) {
	q.segs = append(q.segs, s)
}

// PopBadTriangle removes and returns the worst bad triangle. Triangles
// with equal keys come out in the order they were added.
func (q *FlawQueue) PopBadTriangle() (BadTriangle, bool) {
	if len(q.tris) == 0 {
		return BadTriangle{}, false
	}
	return heap.Pop(&q.tris).(badTri).BadTriangle, true
}

// PeekBadTriangle returns the worst bad triangle without removing it.
func (q *FlawQueue) PeekBadTriangle() (BadTriangle, bool) {
	if len(q.tris) == 0 {
		return BadTriangle{}, false
	}
	return q.tris[0].BadTriangle, true
}

// PopBadSubseg removes and returns the oldest encroached subsegment.
func (q *FlawQueue) PopBadSubseg() (BadSubseg, bool) {
	if len(q.segs) == 0 {
		return BadSubseg{}, false
	}
	s := q.segs[0]
	q.segs[0] = BadSubseg{}
	q.segs = q.segs[1:]
	return s, true
}

// BadTriangles returns the number of queued bad triangles.
func (q *FlawQueue) BadTriangles() int {
	return len(q.tris)
}

// BadSubsegs returns the number of queued encroached subsegments.
func (q *FlawQueue) BadSubsegs() int {
	return len(q.segs)
}

// Reset empties the queue.
func (q *FlawQueue) Reset() {
	q.tris = q.tris[:0]
	q.segs = nil
	q.seq = 0
}
