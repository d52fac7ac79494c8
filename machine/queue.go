package machine

// Queue is an unbounded first-in-first-out queue of machine values.
type Queue struct {
	Data []int64
}

func (q *Queue) Push(value int64) {
	q.Data = append(q.Data, value)
}

func (q *Queue) Pop() (value int64, ok bool) {
	value, ok = q.Peek()
	if ok {
		q.Data = q.Data[1:]
	}
	return
}

func (q *Queue) Peek() (value int64, ok bool) {
	if q.Empty() {
		return
	}

	return q.Data[0], true
}

func (q *Queue) Empty() bool {
	return len(q.Data) == 0
}

func (q *Queue) Len() int {
	return len(q.Data)
}

// Drain moves every queued value into another queue, preserving order, and
// returns the number of values moved.
func (q *Queue) Drain(into *Queue) (moved int) {
	for {
		value, ok := q.Pop()
		if !ok {
			return
		}
		into.Push(value)
		moved++
	}
}

func (q *Queue) Reset() {
	if len(q.Data) > 0 {
		q.Data = q.Data[:0]
	}
}
