// Package staticvec provides a fixed-capacity sequence container.
//
// A Vec holds up to a fixed number of elements in storage that is allocated
// once at construction time and never grows. It offers the full surface of a
// general-purpose vector (ordered access, insertion and removal at arbitrary
// positions, bidirectional iteration, value-style copy and move) while
// guaranteeing that no operation allocates after construction.
//
// Operations that would push the element count past the capacity fail with
// ErrCapacityExceeded before any state is modified. A Vec built with
// WithFailFast treats the same conditions as fatal and panics instead, for
// programs that consider a capacity violation unrecoverable.
//
// A Vec is not safe for concurrent use. Callers that share a Vec across
// goroutines must provide their own synchronization.
package staticvec
