package rawconv

import (
	"fmt"
	"time"
)

// Time narrows v to a time.Time. Strings are parsed with layout.
func Time(d *Decoder, v any, layout string) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	case string:
		out, err := time.Parse(layout, t)
		if err != nil {
			d.Fail(fmt.Errorf("%w: %w", ErrType, err))
		}

		return out
	case nil:
	default:
		d.Fail(fmt.Errorf("%w: cannot use %T as time.Time", ErrType, v))
		return time.Time{}
	}

	d.Fail(fmt.Errorf("%w: expected time.Time", ErrMissing))

	return time.Time{}
}
