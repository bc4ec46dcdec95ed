package skiplist

import (
	"math/rand"
	"sync"
)

const (
	maxHeight    = 12
	branchFactor = 4
)

// Comparator is a function that compares two keys.
// It returns a negative number if a < b, 0 if a == b, and a positive number if a > b.
type Comparator[K any] func(a, b K) int

type node[K any, V any] struct {
	key   K
	value V
	next  [maxHeight]*node[K, V]
}

// Skiplist is an ordered map. Keys are considered equal when the comparator
// returns 0 for them. It is safe for concurrent use: readers run in parallel,
// writers are serialized.
type Skiplist[K any, V any] struct {
	mu      sync.RWMutex
	head    *node[K, V]
	compare Comparator[K]
	height  int
	size    int
}

// New returns an empty Skiplist ordered by the given comparator.
func New[K any, V any](comparator Comparator[K]) *Skiplist[K, V] {
	return &Skiplist[K, V]{
		head:    &node[K, V]{},
		compare: comparator,
		height:  1,
	}
}

// Size returns the number of keys in the list.
func (l *Skiplist[K, V]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.size
}

// findPath returns the last node before key on each level. The caller must hold the lock.
func (l *Skiplist[K, V]) findPath(key K) (path [maxHeight]*node[K, V]) {
	n := l.head

	for level := l.height - 1; level >= 0; level-- {
		for n.next[level] != nil && l.compare(n.next[level].key, key) < 0 {
			n = n.next[level]
		}

		path[level] = n
	}

	return path
}

// find returns the node with the given key, or nil. The caller must hold the lock.
func (l *Skiplist[K, V]) find(key K) *node[K, V] {
	path := l.findPath(key)

	if n := path[0].next[0]; n != nil && l.compare(n.key, key) == 0 {
		return n
	}

	return nil
}

// Insert adds a key-value pair to the list. If an equal key is already present,
// only its value is replaced and the stored key is kept.
func (l *Skiplist[K, V]) Insert(key K, value V) {
	l.Upsert(key, func(V, bool) V { return value })
}

// Upsert sets the value for key to the result of fn, which receives the current
// value and whether the key was present. The whole operation runs under the write lock.
func (l *Skiplist[K, V]) Upsert(key K, fn func(old V, found bool) V) {
	l.mu.Lock()
	defer l.mu.Unlock()

	path := l.findPath(key)

	if n := path[0].next[0]; n != nil && l.compare(n.key, key) == 0 {
		n.value = fn(n.value, true)
		return
	}

	var zero V

	newnode := &node[K, V]{key: key, value: fn(zero, false)}
	height := randomHeight()

	for level := l.height; level < height; level++ {
		path[level] = l.head
	}

	if height > l.height {
		l.height = height
	}

	for level := 0; level < height; level++ {
		newnode.next[level] = path[level].next[level]
		path[level].next[level] = newnode
	}

	l.size++
}

// Get returns the value stored for key.
func (l *Skiplist[K, V]) Get(key K) (ret V, found bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n := l.find(key); n != nil {
		return n.value, true
	}

	return ret, false
}

// Contains returns true if the list contains the given key.
func (l *Skiplist[K, V]) Contains(key K) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.find(key) != nil
}

// Remove deletes the key from the list. It returns false if the key was not found.
func (l *Skiplist[K, V]) Remove(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	path := l.findPath(key)

	n := path[0].next[0]
	if n == nil || l.compare(n.key, key) != 0 {
		return false
	}

	for level := 0; level < l.height; level++ {
		// The node is not linked on this level or any level above.
		if path[level].next[level] != n {
			break
		}

		path[level].next[level] = n.next[level]
	}

	for l.height > 1 && l.head.next[l.height-1] == nil {
		l.height--
	}

	l.size--

	return true
}

// Scan returns an iterator over all key-value pairs in key order.
func (l *Skiplist[K, V]) Scan() *Iterator[K, V] {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &Iterator[K, V]{list: l, next: l.head.next[0]}
}

func randomHeight() int {
	height := 1

	for height < maxHeight && rand.Intn(branchFactor) == 0 {
		height++
	}

	return height
}
