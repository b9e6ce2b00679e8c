package staticvec

import "errors"

// ErrCapacityExceeded is returned when an operation would raise the number of
// live elements above the capacity fixed at construction time. The container
// is left unmodified when this error is returned.
var ErrCapacityExceeded = errors.New("staticvec: operation would exceed fixed capacity")

// ErrIndexOutOfRange is returned by the checked accessors when the requested
// position is not less than the current length.
var ErrIndexOutOfRange = errors.New("staticvec: index out of range")
