// Package gen synthesizes and assembles the decode and encode functions of
// domain classes.
//
// For every (class, provider) pair two functions are emitted into the
// package of the class:
//
//	func <Prefix><Class>From<Provider>(ctx context.Context, data map[string]any, provider P, repository R) (*Class, error)
//	func <Prefix><Class>To<Provider>(ctx context.Context, in *Class, provider P, repository R) (map[string]any, error)
//
// Field expressions are built as expr trees over the rawconv runtime
// library, wrapped by text/template and formatted with go/format. Files are
// finished with golang.org/x/tools/imports.
//
// Classes are generated concurrently with a bounded errgroup. Output order
// does not depend on scheduling.
package gen
