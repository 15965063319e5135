// Package mapping provides the generator configuration schema, parsing
// (YAML or TOML) and validation against the analyzed type graph.
//
// Struct tags carry most per-field configuration. The mapping file names
// the packages to load, the providers and repository handle, the naming
// policy and the classes to generate, and overlays field settings that are
// awkward in a tag, such as override templates.
//
// # Schema Overview
//
//	version: "1"
//	packages: ["./store"]
//	output: codec_gen.go
//	tag: codec
//	naming:
//	  prefix: Codec
//	  keyCase: lu            # optional, see github.com/viant/tagly/format/text
//	providers:
//	  - name: Warehouse
//	    type: "*warehouse.Client"
//	    import: codec-generator/warehouse
//	repository:
//	  type: "*warehouse.Repository"
//	  import: codec-generator/warehouse
//	classes:
//	  - name: store.Order
//	    providers: Warehouse   # optional subset, string or list
//	    fields:
//	      OrderedAt:
//	        decode: "rawconv.Cast[time.Time](d, %data%)"
//	  - name: store.Customer
//	    computed: [DisplayName]
//	    fields:
//	      Email:
//	        key: mail
//
// # Precedence
//
// A field overlay in the mapping file wins over the struct tag for every
// setting it sets. Settings it leaves unset keep the tag's value.
//
// The same document in TOML uses [[providers]] and [[classes]] tables and
// [classes.fields.<Name>] sub-tables.
package mapping
