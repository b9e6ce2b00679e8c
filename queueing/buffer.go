// Package queueing provides a bounded FIFO buffer built on the
// fixed-capacity vector.
package queueing

import (
	"github.com/sarchlab/staticvec"
	"github.com/sarchlab/staticvec/hooking"
	"github.com/sarchlab/staticvec/naming"
)

// HookPosBufPush marks when an element is pushed into the buffer.
var HookPosBufPush = &hooking.HookPos{Name: "Buffer Push"}

// HookPosBufPop marks when an element is popped from the buffer.
var HookPosBufPop = &hooking.HookPos{Name: "Buffer Pop"}

// A Buffer is a FIFO queue with a fixed capacity.
type Buffer[T any] interface {
	naming.Named
	hooking.Hookable

	// CanPush checks if the buffer can accept a new element.
	CanPush() bool

	// Push adds an element to the buffer. It panics if the buffer is full.
	Push(e T)

	// Pop removes and returns the first element. The second return value is
	// false if the buffer is empty.
	Pop() (T, bool)

	// Peek returns the first element without removing it. The second return
	// value is false if the buffer is empty.
	Peek() (T, bool)

	// Capacity returns the maximum capacity of the buffer.
	Capacity() int

	// Size returns the current number of elements in the buffer.
	Size() int

	// Clear removes all elements in the buffer.
	Clear()
}

// BufferBuilder is a builder for Buffer.
type BufferBuilder[T any] struct {
	capacity int
}

// WithCapacity defines the capacity of the buffer.
func (b BufferBuilder[T]) WithCapacity(capacity int) BufferBuilder[T] {
	b.capacity = capacity
	return b
}

// Build builds a new Buffer.
func (b BufferBuilder[T]) Build(name string) Buffer[T] {
	naming.NameMustBeValid(name)

	return &bufferImpl[T]{
		name: name,
		elements: staticvec.MakeBuilder[T]().
			WithCapacity(b.capacity).
			WithFailFast().
			Build(),
	}
}

type bufferImpl[T any] struct {
	hooking.HookableBase

	name     string
	elements *staticvec.Vec[T]
}

// Name returns the name of the buffer.
func (b *bufferImpl[T]) Name() string {
	return b.name
}

func (b *bufferImpl[T]) CanPush() bool {
	return b.elements.Len() < b.elements.Capacity()
}

func (b *bufferImpl[T]) Push(e T) {
	// The fail-fast vector panics if the buffer is full.
	_ = b.elements.PushBack(e)

	if b.NumHooks() > 0 {
		b.InvokeHook(hooking.HookCtx{
			Domain: b,
			Pos:    HookPosBufPush,
			Item:   e,
			Detail: nil,
		})
	}
}

func (b *bufferImpl[T]) Pop() (T, bool) {
	if b.elements.Empty() {
		var zero T
		return zero, false
	}

	e := b.elements.Front()
	b.elements.Erase(0)

	if b.NumHooks() > 0 {
		b.InvokeHook(hooking.HookCtx{
			Domain: b,
			Pos:    HookPosBufPop,
			Item:   e,
			Detail: nil,
		})
	}

	return e, true
}

func (b *bufferImpl[T]) Peek() (T, bool) {
	if b.elements.Empty() {
		var zero T
		return zero, false
	}

	return b.elements.Front(), true
}

func (b *bufferImpl[T]) Capacity() int {
	return b.elements.Capacity()
}

func (b *bufferImpl[T]) Size() int {
	return b.elements.Len()
}

func (b *bufferImpl[T]) Clear() {
	b.elements.Clear()
}
