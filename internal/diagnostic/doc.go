// Package diagnostic provides structured warnings and errors for the codec
// generator.
//
// Key capabilities:
//   - Typed generation failures (configuration, unsupported type shape,
//     formatting) that identify the offending class and field
//   - Diagnostics collections for batch runs and mapping file validation,
//     with optional "did you mean" suggestions
package diagnostic
