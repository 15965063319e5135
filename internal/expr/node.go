package expr

import (
	"strconv"
	"strings"
)

// Names of the locals and parameters generated functions declare.
const (
	Decoder    = "d"
	Encoder    = "e"
	Param      = "v"
	Data       = "data"
	Instance   = "in"
	Provider   = "provider"
	Repository = "repository"

	runtimePkg = "rawconv"
)

// Op identifies a node.
type Op int

const (
	OpRaw Op = iota
	OpCast
	OpNullable
	OpGuard
	OpFallback
	OpPtr
	OpValue
	OpDeref
	OpSlice
	OpSet
	OpList
	OpSetList
	OpReady
	OpAwait
	OpResolve
	OpDecode
	OpEncode
	OpFunc
)

var opNames = [...]string{
	OpRaw:      "raw",
	OpCast:     "Cast",
	OpNullable: "Nullable",
	OpGuard:    "Guard",
	OpFallback: "Fallback",
	OpPtr:      "Ptr",
	OpValue:    "Value",
	OpDeref:    "Deref",
	OpSlice:    "Slice",
	OpSet:      "Set",
	OpList:     "List",
	OpSetList:  "SetList",
	OpReady:    "Ready",
	OpAwait:    "Await",
	OpResolve:  "Resolve",
	OpDecode:   "Decode",
	OpEncode:   "Encode",
	OpFunc:     "func",
}

// String returns the runtime helper name of the op.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "unknown"
	}

	return opNames[o]
}

// Node is an expression tree node.
type Node interface {
	Op() Op
	write(sb *strings.Builder)
}

// Raw is verbatim expression text.
type Raw struct {
	Text string
}

// Op implements Node.
func (r *Raw) Op() Op { return OpRaw }

func (r *Raw) write(sb *strings.Builder) { sb.WriteString(r.Text) }

// Call invokes a runtime helper.
type Call struct {
	Kind     Op
	TypeArgs []string
	Args     []Node
}

// Op implements Node.
func (c *Call) Op() Op { return c.Kind }

func (c *Call) write(sb *strings.Builder) {
	sb.WriteString(runtimePkg)
	sb.WriteByte('.')
	sb.WriteString(c.Kind.String())

	if len(c.TypeArgs) > 0 {
		sb.WriteByte('[')
		sb.WriteString(strings.Join(c.TypeArgs, ", "))
		sb.WriteByte(']')
	}

	sb.WriteByte('(')

	for i, arg := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}

		arg.write(sb)
	}

	sb.WriteByte(')')
}

// Func is a single-parameter function literal returning Body.
type Func struct {
	ParamType string
	Result    string
	Body      Node
}

// Op implements Node.
func (f *Func) Op() Op { return OpFunc }

func (f *Func) write(sb *strings.Builder) {
	sb.WriteString("func(")
	sb.WriteString(Param)
	sb.WriteByte(' ')
	sb.WriteString(f.ParamType)
	sb.WriteString(") ")
	sb.WriteString(f.Result)
	sb.WriteString(" { return ")
	f.Body.write(sb)
	sb.WriteString(" }")
}

// Render returns the Go source text of n.
func Render(n Node) string {
	var sb strings.Builder
	n.write(&sb)

	return sb.String()
}

// Walk calls fn for n and its descendants in depth-first order until fn
// returns false.
func Walk(n Node, fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}

	switch tn := n.(type) {
	case *Call:
		for _, arg := range tn.Args {
			if !Walk(arg, fn) {
				return false
			}
		}
	case *Func:
		return Walk(tn.Body, fn)
	}

	return true
}

// Ops returns the ops of n and its descendants in depth-first order.
func Ops(n Node) []Op {
	var out []Op

	Walk(n, func(n Node) bool {
		out = append(out, n.Op())
		return true
	})

	return out
}

// Text builds a Raw node.
func Text(s string) *Raw { return &Raw{Text: s} }

// DataAccess reads key from the raw data parameter.
func DataAccess(key string) *Raw {
	return Text(Data + "[" + strconv.Quote(key) + "]")
}

// FieldAccess reads a field, or calls a getter, of the instance parameter.
func FieldAccess(name string, getter bool) *Raw {
	if getter {
		return Text(Instance + "." + name + "()")
	}

	return Text(Instance + "." + name)
}

// ParamRef refers to the parameter of the enclosing Func.
func ParamRef() *Raw { return Text(Param) }
