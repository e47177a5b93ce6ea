package region

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/modern-go/reflect2"
)

// pointerFree caches, per type, whether T's layout holds no pointers.
var pointerFree sync.Map

// isPointerFree reports whether values of T contain no pointers, so they may
// sit at any offset in the buffer.
func isPointerFree[T any]() bool {
	key := typeKey[T]()
	if v, ok := pointerFree.Load(key); ok {
		return v.(bool)
	}
	free := !hasPointers(reflect2.TypeOfPtr((*T)(nil)).Elem().Type1())
	pointerFree.Store(key, free)
	return free
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	}
	return true
}

// alignOf returns the alignment a request for T is placed at. Packing only
// applies to pointer-free types.
func alignOf[T any](packed bool) int {
	if packed && isPointerFree[T]() {
		return 1
	}
	var zero T
	return int(unsafe.Alignof(zero))
}
