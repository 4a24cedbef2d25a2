// Package queue provides a value-based binary heap keyed by distance.
package queue

// Item represents an item in the priority queue.
type Item[V any] struct {
	Value    V       // Value is the payload of the item, which can be arbitrary.
	Distance float64 // Distance is the priority of the item in the queue.
}

// PriorityQueue is a binary heap holding Items.
// Items are stored by value for cache locality; it does NOT implement
// container/heap to avoid interface overhead.
type PriorityQueue[V any] struct {
	isMaxHeap bool      // true = max heap, false = min heap
	items     []Item[V] // Value-based storage
}

// NewMin initializes a new priority queue that pops the smallest distance first.
func NewMin[V any](capacity int) *PriorityQueue[V] {
	return &PriorityQueue[V]{
		isMaxHeap: false,
		items:     make([]Item[V], 0, capacity),
	}
}

// NewMax initializes a new priority queue that pops the largest distance first.
func NewMax[V any](capacity int) *PriorityQueue[V] {
	return &PriorityQueue[V]{
		isMaxHeap: true,
		items:     make([]Item[V], 0, capacity),
	}
}

// Len returns the number of elements in the heap.
func (pq *PriorityQueue[V]) Len() int { return len(pq.items) }

// Reset clears the priority queue for reuse.
func (pq *PriorityQueue[V]) Reset() {
	clear(pq.items)
	pq.items = pq.items[:0]
}

// Items returns the backing slice in heap order. The slice is only valid
// until the next mutation.
func (pq *PriorityQueue[V]) Items() []Item[V] { return pq.items }

// TopItem returns the top element of the heap.
func (pq *PriorityQueue[V]) TopItem() (Item[V], bool) {
	if len(pq.items) == 0 {
		return Item[V]{}, false
	}
	return pq.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue[V]) PushItem(item Item[V]) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// PushItemBounded inserts an item into a heap holding at most capacity items.
// A max-heap keeps the capacity smallest distances, a min-heap the largest.
// When full, the item replaces the top if it is better, otherwise it is dropped.
func (pq *PriorityQueue[V]) PushItemBounded(item Item[V], capacity int) {
	if capacity <= 0 {
		return
	}
	if len(pq.items) < capacity {
		pq.PushItem(item)
		return
	}

	top := pq.items[0]
	if pq.isMaxHeap {
		// Top is the worst (largest) of the kept items.
		if item.Distance < top.Distance {
			pq.items[0] = item
			pq.siftDown(0)
		}
		return
	}
	if item.Distance > top.Distance {
		pq.items[0] = item
		pq.siftDown(0)
	}
}

// PopItem removes and returns the top element while maintaining the heap invariant.
func (pq *PriorityQueue[V]) PopItem() (Item[V], bool) {
	n := len(pq.items)
	if n == 0 {
		return Item[V]{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = Item[V]{}
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

func (pq *PriorityQueue[V]) less(i, j int) bool {
	if pq.isMaxHeap {
		return pq.items[i].Distance > pq.items[j].Distance
	}
	return pq.items[i].Distance < pq.items[j].Distance
}

func (pq *PriorityQueue[V]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue[V]) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
