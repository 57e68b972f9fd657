package tsp

import (
	"testing"

	"github.com/katalvlaran/lvltsp/matrix"
	"github.com/stretchr/testify/require"
)

func stubState(bound int64, depth int) *State {
	route := make([]int, depth)
	for i := range route {
		route[i] = i
	}

	return &State{bound: matrix.Cost(bound), route: route}
}

// TestQueueOrder checks priority order and both tie-breaks.
func TestQueueOrder(t *testing.T) {
	var (
		q = &stateQueue{}
		a = stubState(8, 2)  // prio 2
		b = stubState(4, 1)  // prio 2
		c = stubState(12, 3) // prio 2
		d = stubState(2, 1)  // prio 1
		e = stubState(20, 2) // prio 5
		f = stubState(20, 2) // prio 5, pushed after e
	)
	for _, s := range []*State{f, a, b, e, c, d} {
		q.push(s)
	}
	require.Equal(t, 6, q.len())

	var got []*State
	for q.len() > 0 {
		got = append(got, q.pop())
	}
	require.Equal(t, []*State{d, c, a, b, f, e}, got)
}
