package gen

import (
	"fmt"
	"go/format"
)

// Formatter canonically formats Go source text.
type Formatter interface {
	Format(src []byte) ([]byte, error)
}

// GoFormatter formats with go/format. It holds no state and is safe for
// concurrent use.
type GoFormatter struct{}

// Format implements Formatter.
func (GoFormatter) Format(src []byte) ([]byte, error) {
	return format.Source(src)
}

// isolate returns the first field whose expression the formatter rejects on
// its own, or "" when every expression formats.
func isolate(f Formatter, fields []*FieldExpression) string {
	for _, fe := range fields {
		if _, err := f.Format([]byte(fmt.Sprintf("package p\n\nvar _ = %s\n", fe.Text()))); err != nil {
			return fe.Field
		}
	}

	return ""
}
