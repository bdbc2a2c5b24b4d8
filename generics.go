package automap

import "reflect"

// Generic helpers as top-level functions (methods cannot have type parameters yet)

// MapTo default-constructs a T, maps src onto it, and returns the pointer.
func MapTo[T any](m *Mapper, src any, opts ...MapOption) (*T, error) {
	out, err := m.MapNew(src, reflect.TypeOf((*T)(nil)).Elem(), opts...)
	if err != nil {
		return nil, err
	}
	return out.(*T), nil
}

// Make is MapTo returning the value instead of a pointer.
func Make[T any](m *Mapper, src any, opts ...MapOption) (T, error) {
	out, err := MapTo[T](m, src, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return *out, nil
}
