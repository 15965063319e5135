// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of structs and their fields, and
// serves it to the generator as a class introspector.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/pointer/slice/set/map/future/...)
//   - FieldInfo: describes field name, type, tags, position and getter-ness
//   - Introspector: ordered field lists per class, including computed getters
package analyze
