package random

// MockRandom is a deterministic Random for tests.
// Queued results are returned in order, wrapped into [0, n); once the
// queue is drained Intn returns 0.
type MockRandom struct {
	IntnResults []int
	intnIndex   int
}

var _ Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom preloaded with values.
func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{IntnResults: values}
}

// Intn returns the next queued result.
func (r *MockRandom) Intn(n int) int {
	if n <= 0 || r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	v := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return ((v % n) + n) % n
}

// QueueIntn adds values to the result queue.
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}
