// Package expr models field conversion expressions as a small tree that is
// rendered to Go source text only when a function is assembled.
//
// Calls render as calls into the runtime package rawconv and refer to the
// locals every generated function declares: the Decoder d or Encoder e,
// the data or in parameter and the provider and repository handles.
package expr
