package staticvec

import "log"

// Vec is an ordered collection with a capacity fixed at construction time.
// The zero Vec has capacity zero; use a Builder or one of the package-level
// constructors to create a usable instance.
//
// Storage is a single backing array of exactly the capacity. Slots at or past
// Len() always hold the zero value of T, so removed elements do not keep
// referenced memory alive.
type Vec[T any] struct {
	buf      []T // len(buf) == capacity, allocated once
	size     int
	failFast bool
}

// Builder builds Vec instances.
type Builder[T any] struct {
	capacity int
	failFast bool
}

// MakeBuilder creates a default builder for a Vec of element type T.
func MakeBuilder[T any]() Builder[T] {
	return Builder[T]{}
}

// WithCapacity sets the fixed capacity of the Vec to build.
func (b Builder[T]) WithCapacity(capacity int) Builder[T] {
	b.capacity = capacity
	return b
}

// WithFailFast makes the built Vec panic on capacity and index violations
// instead of returning errors. Use it where a capacity violation is a
// programming error that must not be silently handled.
func (b Builder[T]) WithFailFast() Builder[T] {
	b.failFast = true
	return b
}

// Build builds an empty Vec. It panics if the configured capacity is
// negative.
func (b Builder[T]) Build() *Vec[T] {
	if b.capacity < 0 {
		log.Panic("staticvec: capacity must not be negative")
	}

	return &Vec[T]{
		buf:      make([]T, b.capacity),
		failFast: b.failFast,
	}
}

// New creates an empty Vec with the given capacity.
func New[T any](capacity int) *Vec[T] {
	return MakeBuilder[T]().WithCapacity(capacity).Build()
}

// Repeat creates a Vec holding count copies of value. It fails with
// ErrCapacityExceeded if count is negative or greater than capacity.
func Repeat[T any](capacity, count int, value T) (*Vec[T], error) {
	v := New[T](capacity)
	if err := v.Assign(count, value); err != nil {
		return nil, err
	}

	return v, nil
}

// WithLen creates a Vec holding count zero values of T. It fails with
// ErrCapacityExceeded if count is negative or greater than capacity.
func WithLen[T any](capacity, count int) (*Vec[T], error) {
	var zero T
	return Repeat(capacity, count, zero)
}

// FromSlice creates a Vec holding a copy of the elements of src, in order. It
// fails with ErrCapacityExceeded if src has more than capacity elements.
func FromSlice[T any](capacity int, src []T) (*Vec[T], error) {
	v := New[T](capacity)
	if err := v.AssignSlice(src); err != nil {
		return nil, err
	}

	return v, nil
}

// Of creates a Vec holding the listed elements, in order. It fails with
// ErrCapacityExceeded if more than capacity elements are listed.
func Of[T any](capacity int, elems ...T) (*Vec[T], error) {
	return FromSlice(capacity, elems)
}

// Take creates a Vec that adopts the storage of src. The transfer is O(1):
// no elements are copied. Afterwards src is empty with a fresh backing array
// of the same capacity.
func Take[T any](src *Vec[T]) *Vec[T] {
	v := &Vec[T]{
		buf:      src.buf,
		size:     src.size,
		failFast: src.failFast,
	}

	src.buf = make([]T, len(src.buf))
	src.size = 0

	return v
}

// Clone returns a deep copy of v with the same capacity and error policy.
// Mutating the clone never affects v.
func (v *Vec[T]) Clone() *Vec[T] {
	c := &Vec[T]{
		buf:      make([]T, len(v.buf)),
		size:     v.size,
		failFast: v.failFast,
	}
	copy(c.buf, v.buf[:v.size])

	return c
}

// CopyFrom replaces the contents of v with a copy of the contents of other.
// It fails with ErrCapacityExceeded, leaving v unmodified, if other holds
// more elements than v has capacity for. Assigning a Vec to itself is a
// no-op.
func (v *Vec[T]) CopyFrom(other *Vec[T]) error {
	if v == other {
		return nil
	}

	if other.size > len(v.buf) {
		return v.fail(ErrCapacityExceeded)
	}

	clear(v.buf[:v.size])
	copy(v.buf, other.buf[:other.size])
	v.size = other.size

	return nil
}

// MoveFrom replaces the contents of v with the contents of other, leaving
// other empty. When the capacities match the storage is exchanged without
// copying elements. It fails with ErrCapacityExceeded, leaving both
// containers unmodified, if other holds more elements than v has capacity
// for. Moving a Vec into itself is a no-op.
func (v *Vec[T]) MoveFrom(other *Vec[T]) error {
	if v == other {
		return nil
	}

	if other.size > len(v.buf) {
		return v.fail(ErrCapacityExceeded)
	}

	if len(v.buf) == len(other.buf) {
		oldSize := v.size
		v.buf, other.buf = other.buf, v.buf
		v.size, other.size = other.size, 0
		clear(other.buf[:oldSize])

		return nil
	}

	clear(v.buf[:v.size])
	copy(v.buf, other.buf[:other.size])
	v.size = other.size

	clear(other.buf[:other.size])
	other.size = 0

	return nil
}

// Assign replaces the contents of v with count copies of value. It fails
// with ErrCapacityExceeded, leaving v unmodified, if count is negative or
// greater than the capacity.
func (v *Vec[T]) Assign(count int, value T) error {
	if count < 0 || count > len(v.buf) {
		return v.fail(ErrCapacityExceeded)
	}

	clear(v.buf[:v.size])
	for i := range count {
		v.buf[i] = value
	}
	v.size = count

	return nil
}

// AssignSlice replaces the contents of v with a copy of the elements of src.
// It fails with ErrCapacityExceeded, leaving v unmodified, if src has more
// elements than the capacity. src must not alias the live region of v.
func (v *Vec[T]) AssignSlice(src []T) error {
	if len(src) > len(v.buf) {
		return v.fail(ErrCapacityExceeded)
	}

	clear(v.buf[:v.size])
	copy(v.buf, src)
	v.size = len(src)

	return nil
}

// At returns the element at position i. It fails with ErrIndexOutOfRange if
// i is not a valid position.
func (v *Vec[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, v.fail(ErrIndexOutOfRange)
	}

	return v.buf[i], nil
}

// SetAt replaces the element at position i with value. It fails with
// ErrIndexOutOfRange if i is not a valid position.
func (v *Vec[T]) SetAt(i int, value T) error {
	if i < 0 || i >= v.size {
		return v.fail(ErrIndexOutOfRange)
	}

	v.buf[i] = value

	return nil
}

// Get returns the element at position i without an error check. It panics if
// i is not a valid position.
func (v *Vec[T]) Get(i int) T {
	return v.buf[:v.size][i]
}

// Set replaces the element at position i without an error check. It panics
// if i is not a valid position.
func (v *Vec[T]) Set(i int, value T) {
	v.buf[:v.size][i] = value
}

// Front returns the first element. It panics if v is empty.
func (v *Vec[T]) Front() T {
	return v.buf[:v.size][0]
}

// Back returns the last element. It panics if v is empty.
func (v *Vec[T]) Back() T {
	return v.buf[:v.size][v.size-1]
}

// Data returns a view over exactly the live elements. The view aliases the
// container's storage: element writes through it are visible to v, but it
// cannot be appended to. The view must not be used across an operation that
// changes the length of v.
func (v *Vec[T]) Data() []T {
	return v.buf[:v.size:v.size]
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.size
}

// Empty reports whether v holds no elements.
func (v *Vec[T]) Empty() bool {
	return v.size == 0
}

// Capacity returns the maximum number of elements v can ever hold.
func (v *Vec[T]) Capacity() int {
	return len(v.buf)
}

// Reserve is a compatibility no-op for capacities up to the fixed capacity.
// It fails with ErrCapacityExceeded if capacity is larger, since the storage
// can never grow.
func (v *Vec[T]) Reserve(capacity int) error {
	if capacity > len(v.buf) {
		return v.fail(ErrCapacityExceeded)
	}

	return nil
}

// ShrinkToFit is a no-op. The storage is fixed and cannot shrink.
func (v *Vec[T]) ShrinkToFit() {}

// Clear removes all elements. The capacity is unchanged.
func (v *Vec[T]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}

// Insert inserts the listed elements before position i, which may equal
// Len(). It fails with ErrCapacityExceeded, leaving v unmodified, if the
// elements do not fit. It panics if i is not in [0, Len()].
func (v *Vec[T]) Insert(i int, elems ...T) error {
	if err := v.openGap(i, len(elems)); err != nil {
		return err
	}

	copy(v.buf[i:], elems)

	return nil
}

// InsertSlice inserts a copy of the elements of src before position i, which
// may equal Len(). It fails with ErrCapacityExceeded, leaving v unmodified,
// if the elements do not fit. It panics if i is not in [0, Len()]. src must
// not alias the live region of v.
func (v *Vec[T]) InsertSlice(i int, src []T) error {
	if err := v.openGap(i, len(src)); err != nil {
		return err
	}

	copy(v.buf[i:], src)

	return nil
}

// InsertRepeat inserts count copies of value before position i, which may
// equal Len(). It fails with ErrCapacityExceeded, leaving v unmodified, if
// count is negative or the copies do not fit. It panics if i is not in
// [0, Len()].
func (v *Vec[T]) InsertRepeat(i, count int, value T) error {
	if count < 0 {
		return v.fail(ErrCapacityExceeded)
	}

	if err := v.openGap(i, count); err != nil {
		return err
	}

	for j := range count {
		v.buf[i+j] = value
	}

	return nil
}

// openGap shifts the tail [i, size) right by k slots after checking the
// position and the capacity. The vacated slots [i, i+k) still hold the old
// element values and must be overwritten by the caller.
func (v *Vec[T]) openGap(i, k int) error {
	if i < 0 || i > v.size {
		log.Panic("staticvec: insert position out of range")
	}

	if v.size+k > len(v.buf) {
		return v.fail(ErrCapacityExceeded)
	}

	copy(v.buf[i+k:v.size+k], v.buf[i:v.size])
	v.size += k

	return nil
}

// Erase removes the element at position i, shifting the following elements
// left by one. It panics if i is not a valid position.
func (v *Vec[T]) Erase(i int) {
	if i < 0 || i >= v.size {
		log.Panic("staticvec: erase position out of range")
	}

	copy(v.buf[i:], v.buf[i+1:v.size])
	v.size--

	var zero T
	v.buf[v.size] = zero
}

// EraseRange removes the elements in [first, last), shifting the following
// elements left. An empty or inverted range is a no-op. It panics if a
// non-empty range does not lie within [0, Len()].
func (v *Vec[T]) EraseRange(first, last int) {
	if first >= last {
		return
	}

	if first < 0 || last > v.size {
		log.Panic("staticvec: erase range out of range")
	}

	n := last - first
	copy(v.buf[first:], v.buf[last:v.size])
	clear(v.buf[v.size-n : v.size])
	v.size -= n
}

// PushBack appends value. It fails with ErrCapacityExceeded, leaving v
// unmodified, if v is full.
func (v *Vec[T]) PushBack(value T) error {
	if v.size == len(v.buf) {
		return v.fail(ErrCapacityExceeded)
	}

	v.buf[v.size] = value
	v.size++

	return nil
}

// PopBack removes and returns the last element. It panics if v is empty.
func (v *Vec[T]) PopBack() T {
	last := v.buf[:v.size][v.size-1]

	v.size--
	var zero T
	v.buf[v.size] = zero

	return last
}

// Resize changes the length to count. Surplus trailing elements are removed;
// missing elements are appended as zero values. It fails with
// ErrCapacityExceeded, leaving v unmodified, if count is negative or greater
// than the capacity.
func (v *Vec[T]) Resize(count int) error {
	var zero T
	return v.ResizeWith(count, zero)
}

// ResizeWith changes the length to count. Surplus trailing elements are
// removed; missing elements are appended as copies of value. It fails with
// ErrCapacityExceeded, leaving v unmodified, if count is negative or greater
// than the capacity.
func (v *Vec[T]) ResizeWith(count int, value T) error {
	switch {
	case count < 0 || count > len(v.buf):
		return v.fail(ErrCapacityExceeded)
	case count < v.size:
		clear(v.buf[count:v.size])
	default:
		for i := v.size; i < count; i++ {
			v.buf[i] = value
		}
	}

	v.size = count

	return nil
}

// SwapWith exchanges the contents of v and other in O(1) by swapping their
// storage. Views and Data slices obtained from either container now observe
// the other's elements. It panics if the capacities differ, since the
// capacity of each instance is fixed. Each instance keeps its own error
// policy.
func (v *Vec[T]) SwapWith(other *Vec[T]) {
	if len(v.buf) != len(other.buf) {
		log.Panic("staticvec: swap requires equal capacities")
	}

	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
}

func (v *Vec[T]) fail(err error) error {
	if v.failFast {
		log.Panic(err)
	}

	return err
}
