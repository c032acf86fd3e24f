package slist

import (
	"slices"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList[V any](values ...V) *List[V] {
	l := New[V]()

	for _, v := range values {
		l.InsertEnd(v)
	}

	return l
}

func TestListMeetingNode(t *testing.T) {
	t.Parallel()

	l := New[string]()

	_, err := l.MeetingNode()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.EqualError(t, err, "find cycle: empty list")

	l.InsertEnd("A")

	e, err := l.MeetingNode()
	require.NoError(t, err)
	assert.Nil(t, e)

	l.InsertEnd("B")

	e, err = l.MeetingNode()
	require.NoError(t, err)
	assert.Nil(t, e)

	l.linkLastTo(0)

	e, err = l.MeetingNode()
	require.NoError(t, err)
	assert.Same(t, l.Front(), e)
}

func TestListHasCycle(t *testing.T) {
	t.Parallel()

	assert.False(t, New[string]().HasCycle())
	assert.False(t, newList("A").HasCycle())

	l := newList("A", "B", "C")
	assert.False(t, l.HasCycle())

	l.linkLastTo(1)
	assert.True(t, l.HasCycle())
}

func TestListRemoveCycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		entry  int
	}{
		{name: "circular", values: []string{"A", "B", "C"}, entry: 0},
		{name: "two nodes circular", values: []string{"A", "B"}, entry: 0},
		{name: "middle", values: []string{"A", "B", "C"}, entry: 1},
		{name: "self loop", values: []string{"A", "B", "C"}, entry: 2},
		{
			name:   "long tail",
			values: []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"},
			entry:  4,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			l := newList(test.values...)
			l.linkLastTo(test.entry)

			require.True(t, l.HasCycle())
			require.Equal(t, -1, l.traverse(2*len(test.values)))

			l.RemoveCycle()

			assert.False(t, l.HasCycle())
			assertList(t, test.values, l)
		})
	}
}

func TestListRemoveCycleNoCycle(t *testing.T) {
	t.Parallel()

	l := New[string]()
	l.RemoveCycle()
	assertList(t, nil, l)

	l = newList("A", "B")
	l.RemoveCycle()
	assertList(t, []string{"A", "B"}, l)
}

func TestListCycleScenario(t *testing.T) {
	t.Parallel()

	l := newList("A", "B", "C")
	assert.Equal(t, 3, l.Len())

	// C links back to B.
	l.linkLastTo(1)
	assert.True(t, l.HasCycle())

	// Iteration stays finite in a cycle state.
	assert.Equal(t, []string{"A", "B", "C"}, l.Values())

	l.RemoveCycle()
	assertList(t, []string{"A", "B", "C"}, l)

	c, err := l.NodeAt(2)
	require.NoError(t, err)
	assert.Nil(t, c.Next())
}

func TestListRemoveCycleQuick(t *testing.T) {
	t.Parallel()

	err := quick.Check(func(values []int, entry uint8) bool {
		if len(values) < 2 {
			return true
		}

		l := newList(values...)
		l.linkLastTo(int(entry) % len(values))

		if !l.HasCycle() {
			return false
		}

		l.RemoveCycle()

		return !l.HasCycle() &&
			l.traverse(len(values)+1) == len(values) &&
			slices.Equal(values, l.Values())
	}, nil)

	assert.NoError(t, err)
}

func TestListDeleteInCycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		entry  int
		delete func(l *List[string]) (string, error)
		want   []string
		cycle  bool
		value  string
	}{
		{
			name:   "head of self loop",
			values: []string{"A"},
			entry:  0,
			delete: (*List[string]).DeleteHead,
			value:  "A",
		},
		{
			name:   "head of circle",
			values: []string{"A", "B", "C"},
			entry:  0,
			delete: (*List[string]).DeleteHead,
			want:   []string{"B", "C"},
			value:  "A",
		},
		{
			name:   "index 0 of circle",
			values: []string{"A", "B", "C"},
			entry:  0,
			delete: func(l *List[string]) (string, error) { return l.DeleteAt(0) },
			want:   []string{"B", "C"},
			value:  "A",
		},
		{
			name:   "cycle entry",
			values: []string{"A", "B", "C", "D"},
			entry:  1,
			delete: func(l *List[string]) (string, error) { return l.DeleteAt(1) },
			want:   []string{"A", "C", "D"},
			value:  "B",
		},
		{
			name:   "inside cycle",
			values: []string{"A", "B", "C", "D"},
			entry:  1,
			delete: func(l *List[string]) (string, error) { return l.DeleteAt(2) },
			want:   []string{"A", "B", "D"},
			cycle:  true,
			value:  "C",
		},
		{
			name:   "end of circle",
			values: []string{"A", "B", "C"},
			entry:  0,
			delete: (*List[string]).DeleteEnd,
			want:   []string{"A", "B"},
			value:  "C",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			l := newList(test.values...)
			l.linkLastTo(test.entry)

			v, err := test.delete(l)
			require.NoError(t, err)
			assert.Equal(t, test.value, v)
			assert.Equal(t, test.cycle, l.HasCycle())

			l.RemoveCycle()
			assertList(t, test.want, l)

			// the list keeps working at both ends
			l.InsertEnd("Z")
			l.InsertHead("Y")
			assertList(t, append(append([]string{"Y"}, test.want...), "Z"), l)
		})
	}
}
