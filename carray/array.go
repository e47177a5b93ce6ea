// Package carray provides Array, a non-owning pointer and length view over
// contiguous elements that live in memory owned by someone else.
package carray

import "unsafe"

// Array is a view of size elements starting at data. Copying an Array copies
// the view, never the elements.
type Array[T any] struct {
	data *T
	size int
}

// New returns a view of size elements starting at data.
func New[T any](data *T, size int) Array[T] {
	if size < 0 {
		panic("carray: negative size")
	}
	return Array[T]{data: data, size: size}
}

// FromSlice returns a view aliasing the elements of s.
func FromSlice[T any](s []T) Array[T] {
	return Array[T]{data: unsafe.SliceData(s), size: len(s)}
}

// ShallowCopy makes dst view the same elements as src.
func ShallowCopy[T any](dst *Array[T], src Array[T]) {
	dst.data = src.data
	dst.size = src.size
}

// Data returns the address of the first element.
func (a Array[T]) Data() *T { return a.data }

// Len returns the number of elements.
func (a Array[T]) Len() int { return a.size }

// At returns the address of element i. It panics if i is out of range.
func (a Array[T]) At(i int) *T {
	if uint(i) >= uint(a.size) {
		panic("carray: index out of range")
	}
	return (*T)(unsafe.Add(unsafe.Pointer(a.data), uintptr(i)*unsafe.Sizeof(*a.data)))
}

// Slice returns the viewed elements as a Go slice. It returns nil for a view
// without storage.
func (a Array[T]) Slice() []T {
	if a.data == nil {
		return nil
	}
	return unsafe.Slice(a.data, a.size)
}
