package staticvec

import "cmp"

// Equal reports whether a and b hold the same number of elements and each
// pair of elements at the same position compares equal.
func Equal[T comparable](a, b *Vec[T]) bool {
	if a.size != b.size {
		return false
	}

	for i := 0; i < a.size; i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}

	return true
}

// EqualFunc is like Equal but compares element pairs with eq. It allows
// element types that are not comparable, and element types that differ
// between the two containers.
func EqualFunc[T1, T2 any](a *Vec[T1], b *Vec[T2], eq func(T1, T2) bool) bool {
	if a.size != b.size {
		return false
	}

	for i := 0; i < a.size; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}

	return true
}

// Compare compares a and b lexicographically: the first unequal element pair
// decides the order, and if one container is a prefix of the other, the
// shorter one is less. The result is -1, 0, or +1 in the manner of
// cmp.Compare.
func Compare[T cmp.Ordered](a, b *Vec[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but orders element pairs with compare, which
// must return a negative number, zero, or a positive number in the manner of
// cmp.Compare.
func CompareFunc[T1, T2 any](a *Vec[T1], b *Vec[T2], compare func(T1, T2) int) int {
	for i := 0; i < a.size && i < b.size; i++ {
		if c := compare(a.buf[i], b.buf[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(a.size, b.size)
}

// Swap exchanges the contents of a and b. It delegates to Vec.SwapWith and
// carries the same equal-capacity requirement.
func Swap[T any](a, b *Vec[T]) {
	a.SwapWith(b)
}

// Delete removes every element equal to value, preserving the relative order
// of the surviving elements. It returns the number of elements removed.
func Delete[T comparable](v *Vec[T], value T) int {
	return DeleteFunc(v, func(e T) bool { return e == value })
}

// DeleteFunc removes every element for which pred returns true, preserving
// the relative order of the surviving elements. It returns the number of
// elements removed.
func DeleteFunc[T any](v *Vec[T], pred func(T) bool) int {
	kept := 0
	for i := 0; i < v.size; i++ {
		if !pred(v.buf[i]) {
			v.buf[kept] = v.buf[i]
			kept++
		}
	}

	removed := v.size - kept
	clear(v.buf[kept:v.size])
	v.size = kept

	return removed
}
