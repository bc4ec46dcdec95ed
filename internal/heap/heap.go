package heap

// Heap is a binary heap ordered by the less function: the element for which
// less returns true against every other element is on top. Not safe to use concurrently.
type Heap[T any] struct {
	less  func(a, b T) bool
	items []T
}

// New creates an empty heap with the given ordering and initial capacity.
func New[T any](less func(a, b T) bool, capacity int) *Heap[T] {
	return &Heap[T]{
		items: make([]T, 0, capacity),
		less:  less,
	}
}

// Len returns current number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Push adds a new element to the heap in O(log n) time.
func (h *Heap[T]) Push(val T) {
	h.items = append(h.items, val)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the top element. It panics if the heap is empty.
func (h *Heap[T]) Pop() T {
	last := len(h.items) - 1
	if last < 0 {
		panic("no elements in the heap")
	}

	top := h.items[0]
	h.items[0] = h.items[last]
	h.items = h.items[:last]

	h.siftDown(0)

	return top
}

// Peek returns the top element without removing it. It panics if the heap is empty.
func (h *Heap[T]) Peek() T {
	if len(h.items) == 0 {
		panic("no elements in the heap")
	}

	return h.items[0]
}

// ReplaceTop replaces the top element with val, which is cheaper than Pop followed by Push.
func (h *Heap[T]) ReplaceTop(val T) {
	if len(h.items) == 0 {
		panic("no elements in the heap")
	}

	h.items[0] = val
	h.siftDown(0)
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			break
		}

		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)

	for {
		top := i

		if left := 2*i + 1; left < n && h.less(h.items[left], h.items[top]) {
			top = left
		}

		if right := 2*i + 2; right < n && h.less(h.items[right], h.items[top]) {
			top = right
		}

		if top == i {
			return
		}

		h.items[i], h.items[top] = h.items[top], h.items[i]
		i = top
	}
}
