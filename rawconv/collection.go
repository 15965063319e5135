package rawconv

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Slice converts a raw sequence into []E, converting each element with fn.
func Slice[E any](d *Decoder, v any, fn func(any) E) []E {
	items, ok := elements(d, v, reflect.TypeFor[[]E]())
	if !ok {
		return nil
	}

	out := make([]E, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}

// Set converts a raw sequence into a set keyed by the converted elements.
func Set[E comparable](d *Decoder, v any, fn func(any) E) map[E]struct{} {
	items, ok := elements(d, v, reflect.TypeFor[map[E]struct{}]())
	if !ok {
		return nil
	}

	out := make(map[E]struct{}, len(items))
	for _, item := range items {
		out[fn(item)] = struct{}{}
	}

	return out
}

// elements unpacks a raw sequence. []any is used as is; other slices and
// arrays are unpacked through reflection.
func elements(d *Decoder, v any, target reflect.Type) ([]any, bool) {
	if v == nil {
		d.Fail(fmt.Errorf("%w: expected %s", ErrMissing, target))
		return nil, false
	}

	if items, ok := v.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		d.Fail(fmt.Errorf("%w: cannot use %T as %s", ErrType, v, target))
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}

// List converts a typed slice into a raw sequence, converting each element
// with fn. A nil slice yields nil.
func List[E any](in []E, fn func(E) any) []any {
	if in == nil {
		return nil
	}

	out := make([]any, 0, len(in))
	for _, item := range in {
		out = append(out, fn(item))
	}

	return out
}

// SetList converts a set into a raw sequence, converting each element with
// fn. Elements are ordered by their printed form so output is stable.
func SetList[E comparable](in map[E]struct{}, fn func(E) any) []any {
	if in == nil {
		return nil
	}

	keys := make([]E, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b E) int {
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})

	return List(keys, fn)
}
