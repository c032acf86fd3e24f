package slist

func (l *List[V]) checkSwap(i, j int) error {
	const op = "swap"

	if l.head == nil {
		return emptyError(op)
	}

	for _, index := range [...]int{i, j} {
		if index < 0 {
			return indexError(op, index, l.n)
		}
	}

	for _, index := range [...]int{i, j} {
		if index >= l.n {
			return indexError(op, index, l.n)
		}
	}

	return nil
}

// SwapAt exchanges the nodes at indexes i and j by relinking them; values are
// not copied. Equal indexes and a single node list are a no-op. The list must
// not contain a cycle.
func (l *List[V]) SwapAt(i, j int) error {
	if i == j || (l.head != nil && l.head.next == nil) {
		return nil
	}

	if err := l.checkSwap(i, j); err != nil {
		return err
	}

	if i > j {
		i, j = j, i
	}

	// One walk up to j collects both predecessors; prev1 stays nil when i is 0.
	var prev1, prev2 *Node[V]

	e := l.head

	for k := range j {
		if k == i-1 {
			prev1 = e
		}

		if k == j-1 {
			prev2 = e
		}

		e = e.next
	}

	node2 := e
	node1 := l.head

	if prev1 != nil {
		node1 = prev1.next
		prev1.next = node2
	} else {
		l.head = node2
	}

	// With j == i+1 prev2 is node1, so node1 briefly links to itself until
	// the exchange below.
	prev2.next = node1
	node1.next, node2.next = node2.next, node1.next

	if node2 == l.tail {
		l.tail = node1
	}

	return nil
}
