package components

import "gonum.org/v1/gonum/spatial/r2"

// Trail is a ring buffer of recent ground-plane positions (forward, left).
type Trail struct {
	Points []r2.Vec
	head   int
	count  int
}

// NewTrail returns a trail holding at most n points.
func NewTrail(n int) Trail {
	return Trail{Points: make([]r2.Vec, n)}
}

// Push records p, overwriting the oldest point once the trail is full.
func (t *Trail) Push(p r2.Vec) {
	if len(t.Points) == 0 {
		return
	}
	t.Points[t.head] = p
	t.head = (t.head + 1) % len(t.Points)
	if t.count < len(t.Points) {
		t.count++
	}
}

// Len returns the number of recorded points.
func (t *Trail) Len() int {
	return t.count
}

// At returns the i-th recorded point, oldest first.
func (t *Trail) At(i int) r2.Vec {
	start := t.head - t.count
	if start < 0 {
		start += len(t.Points)
	}
	return t.Points[(start+i)%len(t.Points)]
}

// Reset forgets all points.
func (t *Trail) Reset() {
	t.head, t.count = 0, 0
}
