package tsp

import "container/heap"

// queueItem wraps a state with its cached priority and creation order.
type queueItem struct {
	st   *State
	prio float64 // st.Priority(), cached
	seq  uint64  // push order, unique per queue
}

// statePQ is a min-heap of *queueItem.
//
// Order: ascending priority; on equal priority the deeper state first;
// then the earlier push (FIFO). The result is deterministic for a fixed
// input.
type statePQ []*queueItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less implements the documented order.
func (pq statePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	if da, db := a.st.Depth(), b.st.Depth(); da != db {
		return da > db
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *queueItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*queueItem)) }

// Pop is called by heap.Pop.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // drop the reference so the state's matrix can be collected
	*pq = old[:n-1]

	return item
}

// stateQueue is the best-first frontier of a single search.
type stateQueue struct {
	pq  statePQ
	seq uint64
}

// push adds s to the frontier.
func (q *stateQueue) push(s *State) {
	q.seq++
	heap.Push(&q.pq, &queueItem{st: s, prio: s.Priority(), seq: q.seq})
}

// pop removes the best state. The queue must not be empty.
func (q *stateQueue) pop() *State { return heap.Pop(&q.pq).(*queueItem).st }

// len returns the frontier size.
func (q *stateQueue) len() int { return q.pq.Len() }
