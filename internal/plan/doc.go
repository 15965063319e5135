// Package plan resolves what to generate and how each field is treated.
//
// Pipeline, per class, provider and direction:
//  1. SelectFields filters the introspected fields (unexported, embedded,
//     static and, when decoding, computed getters are dropped)
//  2. AnnotationSchema.Resolve turns struct tags plus mapping file overlays
//     into a FieldConfig
//  3. Classify turns a field type into a Shape: scalar, collection, async
//     or nested
//
// Build ties a mapping file to the analyzed type graph and produces the
// Plan consumed by package gen.
package plan
