package slist

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// zeroValue returns the zero value of the type.
func zeroValue[T any]() (zero T) { //nolint:ireturn
	return
}

// Node represents a list node.
type Node[V any] struct {
	Value V
	next  *Node[V]
}

// Next returns the next node or nil if it is the last node.
func (e *Node[V]) Next() *Node[V] {
	return e.next
}

// List represents a singly linked list. The zero value is an empty list.
//
// A List is not safe for concurrent use: callers sharing one between
// goroutines must hold an exclusive lock around every call.
type List[V any] struct {
	n    int
	head *Node[V]
	tail *Node[V]
}

// New returns a new singly linked list.
func New[V any]() *List[V] {
	return new(List[V])
}

// Len returns the number of nodes of list.
func (l *List[V]) Len() int { return l.n }

// Front returns the first node of list or nil if the list is empty.
func (l *List[V]) Front() *Node[V] {
	return l.head
}

// nodeAt walks index links from the head. The caller guarantees 0 <= index < l.n.
func (l *List[V]) nodeAt(index int) *Node[V] {
	e := l.head

	for range index {
		e = e.next
	}

	return e
}

// checkNode reports whether index addresses an existing node.
func (l *List[V]) checkNode(op string, index int) error {
	if l.head == nil {
		return emptyError(op)
	}

	if index < 0 || index >= l.n {
		return indexError(op, index, l.n)
	}

	return nil
}

func (l *List[V]) insertAfter(e, at *Node[V]) *Node[V] {
	e.next = at.next
	at.next = e
	l.n++

	if at == l.tail {
		l.tail = e
	}

	return e
}

// InsertHead inserts v at the front.
func (l *List[V]) InsertHead(v V) *Node[V] {
	l.head = &Node[V]{Value: v, next: l.head}
	l.n++

	if l.tail == nil {
		l.tail = l.head
	}

	return l.head
}

// InsertEnd inserts v at the back.
func (l *List[V]) InsertEnd(v V) *Node[V] {
	if l.head == nil {
		return l.InsertHead(v)
	}

	return l.insertAfter(&Node[V]{Value: v}, l.tail)
}

// InsertAt inserts v so that it becomes the node at index.
// Valid indexes are 0 through Len, where Len appends.
func (l *List[V]) InsertAt(v V, index int) (*Node[V], error) {
	if index < 0 || index > l.n {
		return nil, indexError("insert", index, l.n)
	}

	if index == 0 {
		return l.InsertHead(v), nil
	}

	return l.insertAfter(&Node[V]{Value: v}, l.nodeAt(index-1)), nil
}

// detach drops the link from the last node back to e, if e closes a cycle.
func (l *List[V]) detach(e *Node[V]) {
	if l.tail.next == e {
		l.tail.next = nil
	}
}

func (l *List[V]) removeHead() V { //nolint:ireturn
	e := l.head
	l.detach(e)
	l.head = e.next
	e.next = nil
	l.n--

	if l.n == 0 {
		l.head, l.tail = nil, nil
	}

	return e.Value
}

// removeAfter unlinks the successor of prev.
func (l *List[V]) removeAfter(prev *Node[V]) V { //nolint:ireturn
	e := prev.next
	l.detach(e)
	prev.next = e.next
	e.next = nil
	l.n--

	if e == l.tail {
		l.tail = prev
	}

	return e.Value
}

// DeleteHead removes the first node and returns its value.
func (l *List[V]) DeleteHead() (V, error) { //nolint:ireturn
	if l.head == nil {
		return zeroValue[V](), emptyError("delete head")
	}

	return l.removeHead(), nil
}

// DeleteEnd removes the last node and returns its value.
func (l *List[V]) DeleteEnd() (V, error) { //nolint:ireturn
	if l.head == nil {
		return zeroValue[V](), emptyError("delete end")
	}

	if l.n == 1 {
		return l.removeHead(), nil
	}

	prev := l.nodeAt(l.n - 2)
	v := l.tail.Value

	// The last node may link back into the chain, so cut it off explicitly.
	l.tail.next = nil
	prev.next = nil
	l.tail = prev
	l.n--

	return v, nil
}

// DeleteAt removes the node at index and returns its value.
func (l *List[V]) DeleteAt(index int) (V, error) { //nolint:ireturn
	if err := l.checkNode("delete", index); err != nil {
		return zeroValue[V](), err
	}

	switch index {
	case 0:
		return l.DeleteHead()
	case l.n - 1:
		return l.DeleteEnd()
	}

	return l.removeAfter(l.nodeAt(index - 1)), nil
}

// NodeAt returns the node at index. The node is not a copy: changing its
// Value changes the list.
func (l *List[V]) NodeAt(index int) (*Node[V], error) {
	if err := l.checkNode("get node", index); err != nil {
		return nil, err
	}

	return l.nodeAt(index), nil
}

// All returns an iterator over the values of list, front to back.
// It yields at most Len values.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		e := l.head

		for i := 0; i < l.n && e != nil; i++ {
			if !yield(e.Value) {
				return
			}

			e = e.next
		}
	}
}

// Values returns the values of list, front to back.
func (l *List[V]) Values() []V {
	return slices.Collect(l.All())
}

// WriteTo writes an empty line followed by one value per line, or
// "The list is empty!" if there are no nodes.
func (l *List[V]) WriteTo(w io.Writer) (int64, error) {
	var total int64

	writeln := func(a ...any) error {
		n, err := fmt.Fprintln(w, a...)
		total += int64(n)

		return err //nolint:wrapcheck
	}

	if err := writeln(); err != nil {
		return total, err
	}

	if l.head == nil {
		err := writeln("The list is empty!")

		return total, err
	}

	for v := range l.All() {
		if err := writeln(v); err != nil {
			return total, err
		}
	}

	return total, nil
}
