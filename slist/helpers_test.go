package slist

// linkLastTo closes a cycle by linking the last node to the node at index.
// Every node stays reachable, so Len is unchanged.
func (l *List[V]) linkLastTo(index int) {
	l.tail.next = l.nodeAt(index)
}

// traverse counts nodes from the front until the end, giving up after limit
// links. It returns -1 if the end was not reached.
func (l *List[V]) traverse(limit int) int {
	n := 0

	for e := l.head; e != nil; e = e.next {
		if n == limit {
			return -1
		}

		n++
	}

	return n
}
