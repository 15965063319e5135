// Package placeholder expands override templates.
//
// A template mixes Go expression text with two constructs:
//
//	%NAME%                  placeholder token
//	@NAME@ body @/NAME@     value block declaring NAME
//
// NAME matches [A-Za-z_][A-Za-z0-9_]*. Expansion is explicit and two-pass:
// value blocks are collected first, then every token outside the blocks is
// replaced by the trimmed body of its block, and finally the block
// declarations are stripped. Built-in names (key, data, field) are resolved
// before anything else, both in the text and inside block bodies, and a
// block with a built-in name cannot override them.
//
// A % or @ that does not start a token or a block is literal text. Tokens
// inside block bodies other than built-ins are kept literally; the language
// has no nesting, loops or conditionals.
package placeholder
