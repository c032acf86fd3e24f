/*
Package slist implements a singly linked list.

Nodes are addressed by a 0-based index in link order. Besides insertion and
deletion at the head, at the end and at an index, the list can detect and
remove a cycle with Floyd's tortoise and hare algorithm, and swap two nodes
by relinking them.

The list is not safe for concurrent use. When a list is shared between
goroutines, every call must hold an exclusive lock.

# Example Usage

## Basic

	func basicExample() {
		l := slist.New[string]()

		l.InsertEnd("B")
		l.InsertEnd("C")
		l.InsertHead("A")

		fmt.Println(l.Values()) // [A B C]

		// Insert at index 1.
		if _, err := l.InsertAt("X", 1); err != nil {
			// Handle error.
		}

		fmt.Println(l.Values()) // [A X B C]

		// Swap the first and the last node.
		if err := l.SwapAt(0, 3); err != nil {
			// Handle error.
		}

		for v := range l.All() {
			fmt.Println(v) // C, X, B, A
		}

		// Removing from an empty list or at a bad index returns an error.
		_, err := l.DeleteAt(10) // errors.Is(err, slist.ErrIndex)
	}

## Shared list

	type Names struct {
		mu   sync.Mutex
		list slist.List[string]
	}

	func (n *Names) Add(name string) {
		n.mu.Lock()
		defer n.mu.Unlock()

		n.list.InsertHead(name)
	}
*/
package slist
