package rawconv

import (
	"fmt"
	"reflect"
)

// Cast narrows the raw value v to T. Identical dynamic types pass through,
// numeric kinds convert when no precision is lost, and values whose kind
// matches the kind of T convert to T (e.g. string to a named string type).
// On failure the error is recorded on d and the zero value is returned.
func Cast[T any](d *Decoder, v any) T {
	out, err := convert[T](v)
	if err != nil {
		d.Fail(err)
	}

	return out
}

func convert[T any](v any) (T, error) {
	var zero T

	if t, ok := v.(T); ok {
		return t, nil
	}

	target := reflect.TypeFor[T]()

	if v == nil {
		if nilable(target.Kind()) {
			return zero, nil
		}

		return zero, fmt.Errorf("%w: expected %s", ErrMissing, target)
	}

	rv := reflect.ValueOf(v)

	switch {
	case isNumber(rv.Kind()) && isNumber(target.Kind()):
		out := rv.Convert(target)
		if negative(rv) && isUnsigned(target.Kind()) || !out.Convert(rv.Type()).Equal(rv) {
			return zero, fmt.Errorf("%w: %v does not fit in %s", ErrType, v, target)
		}

		return out.Interface().(T), nil

	case rv.Kind() == target.Kind() && rv.Type().ConvertibleTo(target):
		return rv.Convert(target).Interface().(T), nil
	}

	return zero, fmt.Errorf("%w: cannot use %T as %s", ErrType, v, target)
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func negative(v reflect.Value) bool {
	switch {
	case v.CanInt():
		return v.Int() < 0
	case v.CanFloat():
		return v.Float() < 0
	default:
		return false
	}
}

// Nullable converts v with fn unless v is nil, in which case it returns nil
// without attempting a conversion.
func Nullable[T any](v any, fn func(any) T) *T {
	if v == nil {
		return nil
	}

	out := fn(v)

	return &out
}

// Guard converts v with fn unless v is nil, in which case it returns the zero
// value of T without attempting a conversion.
func Guard[T any](v any, fn func(any) T) T {
	if v == nil {
		var zero T
		return zero
	}

	return fn(v)
}

// Fallback returns def when v is nil and v otherwise.
func Fallback(v, def any) any {
	if v == nil {
		return def
	}

	return v
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// Value dereferences p, returning the zero value for nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}

	return *p
}

// Deref dereferences p into an untyped raw value, returning nil for nil.
func Deref[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}
