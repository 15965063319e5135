package placeholder

import (
	"strings"

	"codec-generator/internal/diagnostic"
)

// Built-in placeholder names.
const (
	BuiltinKey   = "key"
	BuiltinData  = "data"
	BuiltinField = "field"
)

const (
	tokenDelim = '%'
	blockDelim = '@'
	closeMark  = '/'
)

// Block is a value block declared in a template.
type Block struct {
	Name string
	Body string
}

type segmentKind int

const (
	segText segmentKind = iota
	segToken
	segBlock
)

type segment struct {
	kind segmentKind
	text string // literal text, token name or block name
}

// Template is a parsed override template.
type Template struct {
	segments []segment
	blocks   map[string]Block
	order    []string
}

// Parse collects the value blocks of tmpl. It fails on duplicate,
// unterminated or unopened blocks.
func Parse(tmpl string) (*Template, error) {
	t := &Template{blocks: make(map[string]Block)}

	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			t.segments = append(t.segments, segment{kind: segText, text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(tmpl); {
		switch tmpl[i] {
		case tokenDelim:
			if name, end, ok := delimited(tmpl, i+1, tokenDelim); ok {
				flush()
				t.segments = append(t.segments, segment{kind: segToken, text: name})
				i = end

				continue
			}

		case blockDelim:
			if i+1 < len(tmpl) && tmpl[i+1] == closeMark {
				if name, _, ok := delimited(tmpl, i+2, blockDelim); ok {
					return nil, diagnostic.Configuration("value block %q closed but never opened", name)
				}

				break
			}

			name, end, ok := delimited(tmpl, i+1, blockDelim)
			if !ok {
				break
			}

			closing := string(blockDelim) + string(closeMark) + name + string(blockDelim)

			bodyLen := strings.Index(tmpl[end:], closing)
			if bodyLen < 0 {
				return nil, diagnostic.Configuration("value block %q is not terminated with %s", name, closing)
			}

			if _, dup := t.blocks[name]; dup {
				return nil, diagnostic.Configuration("value block %q is declared more than once", name)
			}

			t.blocks[name] = Block{Name: name, Body: tmpl[end : end+bodyLen]}
			t.order = append(t.order, name)

			flush()
			t.segments = append(t.segments, segment{kind: segBlock, text: name})
			i = end + bodyLen + len(closing)

			continue
		}

		text.WriteByte(tmpl[i])
		i++
	}

	flush()

	return t, nil
}

// Blocks returns the declared value blocks in declaration order. Bodies are
// returned as written.
func (t *Template) Blocks() []Block {
	out := make([]Block, len(t.order))
	for i, name := range t.order {
		out[i] = t.blocks[name]
	}

	return out
}

// Expand resolves every token of the template. builtins are resolved first
// and cannot be overridden by value blocks.
func (t *Template) Expand(builtins map[string]string) (string, error) {
	var out strings.Builder

	for _, seg := range t.segments {
		switch seg.kind {
		case segText:
			out.WriteString(seg.text)

		case segToken:
			if v, ok := builtins[seg.text]; ok {
				out.WriteString(v)
				continue
			}

			block, ok := t.blocks[seg.text]
			if !ok {
				return "", diagnostic.Configuration("variable %q not declared", seg.text)
			}

			body := strings.TrimSpace(resolveBuiltins(block.Body, builtins))
			if body == "" {
				return "", diagnostic.Configuration("variable %q requires a trailing value", seg.text)
			}

			out.WriteString(body)

		case segBlock:
			// Declarations never reach the output.
		}
	}

	return strings.TrimSpace(out.String()), nil
}

// Expand parses and expands tmpl in one step.
func Expand(tmpl string, builtins map[string]string) (string, error) {
	t, err := Parse(tmpl)
	if err != nil {
		return "", err
	}

	return t.Expand(builtins)
}

// resolveBuiltins replaces built-in tokens in s and leaves everything else.
func resolveBuiltins(s string, builtins map[string]string) string {
	if len(builtins) == 0 || strings.IndexByte(s, tokenDelim) < 0 {
		return s
	}

	var out strings.Builder

	for i := 0; i < len(s); {
		if s[i] == tokenDelim {
			if name, end, ok := delimited(s, i+1, tokenDelim); ok {
				if v, found := builtins[name]; found {
					out.WriteString(v)
					i = end

					continue
				}
			}
		}

		out.WriteByte(s[i])
		i++
	}

	return out.String()
}

// delimited reads a name starting at s[i] that is terminated by delim. It
// returns the name and the index just past the delimiter.
func delimited(s string, i int, delim byte) (string, int, bool) {
	j := i
	for j < len(s) && isNameByte(s[j], j == i) {
		j++
	}

	if j == i || j >= len(s) || s[j] != delim {
		return "", 0, false
	}

	return s[i:j], j + 1, true
}

func isNameByte(c byte, first bool) bool {
	switch {
	case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	case '0' <= c && c <= '9':
		return !first
	default:
		return false
	}
}
