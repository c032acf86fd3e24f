package slist

// meetingNode returns the node where a one-step and a two-step cursor meet,
// or nil if the chain ends.
func (l *List[V]) meetingNode() *Node[V] {
	if l.head == nil || l.head.next == nil {
		return nil
	}

	slow, fast := l.head, l.head

	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next

		if slow == fast {
			return slow
		}
	}

	return nil
}

// MeetingNode runs Floyd's cycle detection and returns the node where the
// slow and the fast cursor meet. It returns nil if list has no cycle.
func (l *List[V]) MeetingNode() (*Node[V], error) {
	if l.head == nil {
		return nil, emptyError("find cycle")
	}

	return l.meetingNode(), nil
}

// HasCycle reports whether following the links from the front never reaches
// the end. An empty list has no cycle.
func (l *List[V]) HasCycle() bool {
	return l.meetingNode() != nil
}

// RemoveCycle cuts the link that closes the cycle, keeping every node in
// its order. It is a no-op if list has no cycle.
func (l *List[V]) RemoveCycle() {
	meet := l.meetingNode()
	if meet == nil {
		return
	}

	var last *Node[V]

	if meet == l.head {
		// The whole list is a circle: the last node links to the head.
		last = l.head
		for last.next != l.head {
			last = last.next
		}
	} else {
		// Cursors from the head and from the meeting node converge on the
		// cycle entry; last trails the second one.
		for e := l.head; e != meet; e = e.next {
			last = meet
			meet = meet.next
		}
	}

	last.next = nil
}
