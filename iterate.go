package staticvec

import "iter"

// All returns an index/element sequence over the live elements in order.
// The sequence reads the container directly; it must not be advanced across
// an operation that changes the length of v or relocates elements.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an index/element sequence over the live elements from the
// last to the first. The same invalidation rule as All applies.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns an element sequence over the live elements in order. The
// same invalidation rule as All applies.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}
