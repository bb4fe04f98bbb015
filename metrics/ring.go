package metrics

// ring is a fixed-size buffer that overwrites its oldest entry when full.
// It is not safe for concurrent use; Store guards it.
type ring[T any] struct {
	data []T
	head int // next write index
	size int
}

func newRing[T any](capacity int) *ring[T] {
	if capacity < 1 {
		panic("metrics: ring capacity must be at least 1")
	}
	return &ring[T]{data: make([]T, capacity)}
}

func (r *ring[T]) push(item T) {
	r.data[r.head] = item
	r.head = (r.head + 1) % len(r.data)
	if r.size < len(r.data) {
		r.size++
	}
}

// last returns up to n of the newest entries, oldest first.
func (r *ring[T]) last(n int) []T {
	if n <= 0 || r.size == 0 {
		return []T{}
	}
	if n > r.size {
		n = r.size
	}
	capacity := len(r.data)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = r.data[(r.head-n+i+capacity)%capacity]
	}
	return out
}

func (r *ring[T]) len() int { return r.size }

func (r *ring[T]) capacity() int { return len(r.data) }

func (r *ring[T]) clear() {
	var zero T
	for i := range r.data {
		r.data[i] = zero
	}
	r.head = 0
	r.size = 0
}
