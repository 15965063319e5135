package rawconv

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrMissing reports an absent or null raw value where one was required.
	ErrMissing = errors.New("rawconv: missing value")
	// ErrType reports a raw value that cannot be narrowed to the requested type.
	ErrType = errors.New("rawconv: type mismatch")
)

// errorLimit bounds the number of errors a Decoder or Encoder retains.
const errorLimit = 10

type tracker struct {
	ctx  context.Context
	errs []error
	lost int
}

func (t *tracker) fail(err error) {
	if err == nil {
		return
	}

	if len(t.errs) >= errorLimit {
		t.lost++
		return
	}

	t.errs = append(t.errs, err)
}

func (t *tracker) err() error {
	if len(t.errs) == 0 {
		return nil
	}

	if t.lost > 0 {
		return errors.Join(append(t.errs, fmt.Errorf("%d more errors", t.lost))...)
	}

	return errors.Join(t.errs...)
}

// Decoder carries the context and the collected failures of one generated
// decode call.
type Decoder struct {
	tracker
}

// NewDecoder creates a Decoder bound to ctx.
func NewDecoder(ctx context.Context) *Decoder {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Decoder{tracker{ctx: ctx}}
}

// Context returns the context of the decode call.
func (d *Decoder) Context() context.Context { return d.ctx }

// Fail records err. Nil errors are ignored.
func (d *Decoder) Fail(err error) { d.fail(err) }

// Err returns the joined recorded errors, or nil.
func (d *Decoder) Err() error { return d.err() }

// Encoder carries the context and the collected failures of one generated
// encode call.
type Encoder struct {
	tracker
}

// NewEncoder creates an Encoder bound to ctx.
func NewEncoder(ctx context.Context) *Encoder {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Encoder{tracker{ctx: ctx}}
}

// Context returns the context of the encode call.
func (e *Encoder) Context() context.Context { return e.ctx }

// Fail records err. Nil errors are ignored.
func (e *Encoder) Fail(err error) { e.fail(err) }

// Err returns the joined recorded errors, or nil.
func (e *Encoder) Err() error { return e.err() }
