// Package rawconv is the runtime support library called by code emitted by
// codec-generator.
//
// Generated decode functions read provider data (map[string]any) through a
// Decoder, which collects conversion failures so that a whole struct literal
// can be built in one expression and the first errors reported afterwards.
// Generated encode functions use an Encoder the same way.
//
// Helpers by concern:
//   - Cast narrows a raw value to a concrete Go type (numeric kinds convert)
//   - Nullable, Guard and Fallback implement null handling and defaults
//   - Slice, Set, List and SetList convert containers element by element
//   - Decode and Encode delegate to companion functions of nested types
//   - Future, Ready, Await and Resolve model asynchronously delivered values
//   - Time parses timestamps for override expressions
package rawconv
