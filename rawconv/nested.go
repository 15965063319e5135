package rawconv

import (
	"context"
	"fmt"
)

// Decode delegates the raw mapping v to the companion decode function fn of
// a nested type.
func Decode[T, P, R any](
	d *Decoder,
	v any,
	fn func(context.Context, map[string]any, P, R) (*T, error),
	provider P,
	repository R,
) *T {
	if v == nil {
		d.Fail(fmt.Errorf("%w: expected map[string]any", ErrMissing))
		return nil
	}

	data, ok := v.(map[string]any)
	if !ok {
		d.Fail(fmt.Errorf("%w: cannot use %T as map[string]any", ErrType, v))
		return nil
	}

	out, err := fn(d.ctx, data, provider, repository)
	if err != nil {
		d.Fail(err)
	}

	return out
}

// Encode delegates in to the companion encode function fn of a nested type.
// A nil instance encodes to nil.
func Encode[T, P, R any](
	e *Encoder,
	in *T,
	fn func(context.Context, *T, P, R) (map[string]any, error),
	provider P,
	repository R,
) map[string]any {
	if in == nil {
		return nil
	}

	out, err := fn(e.ctx, in, provider, repository)
	if err != nil {
		e.Fail(err)
	}

	return out
}
