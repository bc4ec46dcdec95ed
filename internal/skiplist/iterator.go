package skiplist

// Iterator walks a Skiplist in key order.
// Keys inserted behind the iterator position while it is in use are not visited.
type Iterator[K any, V any] struct {
	list *Skiplist[K, V]
	next *node[K, V]
}

// HasNext returns true if there are more items in the iterator.
func (it *Iterator[K, V]) HasNext() bool {
	return it.next != nil
}

// Next returns the next key-value pair. It panics if there are no more items,
// so HasNext should always be called before calling Next.
func (it *Iterator[K, V]) Next() (key K, value V) {
	if it.next == nil {
		panic("no more items in the iterator")
	}

	it.list.mu.RLock()
	defer it.list.mu.RUnlock()

	n := it.next
	it.next = n.next[0]

	return n.key, n.value
}
