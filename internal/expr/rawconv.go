package expr

func call(op Op, args ...Node) *Call {
	return &Call{Kind: op, Args: args}
}

// Cast narrows src to typ.
func Cast(typ string, src Node) *Call {
	return &Call{Kind: OpCast, TypeArgs: []string{typ}, Args: []Node{Text(Decoder), src}}
}

// Nullable converts src with fn unless it is nil, yielding a pointer.
func Nullable(src Node, fn *Func) *Call { return call(OpNullable, src, fn) }

// Guard converts src with fn unless it is nil, yielding the zero value.
func Guard(src Node, fn *Func) *Call { return call(OpGuard, src, fn) }

// Fallback substitutes the literal def for a nil src.
func Fallback(src Node, def string) *Call { return call(OpFallback, src, Text(def)) }

// Ptr takes the address of a copy of n.
func Ptr(n Node) *Call { return call(OpPtr, n) }

// Value dereferences n, yielding the zero value for nil.
func Value(n Node) *Call { return call(OpValue, n) }

// Deref dereferences n into a raw value, yielding nil for nil.
func Deref(n Node) *Call { return call(OpDeref, n) }

// Slice converts a raw sequence element by element.
func Slice(src Node, fn *Func) *Call { return call(OpSlice, Text(Decoder), src, fn) }

// Set converts a raw sequence into a set element by element.
func Set(src Node, fn *Func) *Call { return call(OpSet, Text(Decoder), src, fn) }

// List converts a slice into a raw sequence element by element.
func List(src Node, fn *Func) *Call { return call(OpList, src, fn) }

// SetList converts a set into a raw sequence element by element.
func SetList(src Node, fn *Func) *Call { return call(OpSetList, src, fn) }

// Ready wraps a decoded value into a resolved future.
func Ready(n Node) *Call { return call(OpReady, n) }

// Await resolves an asynchronously delivered raw value.
func Await(src Node) *Call { return call(OpAwait, Text(Decoder), src) }

// Resolve waits for a future of the instance being encoded.
func Resolve(src Node) *Call { return call(OpResolve, Text(Encoder), src) }

// Decode delegates a raw mapping to the companion decode function fn.
func Decode(src Node, fn string) *Call {
	return call(OpDecode, Text(Decoder), src, Text(fn), Text(Provider), Text(Repository))
}

// Encode delegates an instance pointer to the companion encode function fn.
func Encode(src Node, fn string) *Call {
	return call(OpEncode, Text(Encoder), src, Text(fn), Text(Provider), Text(Repository))
}

// Lambda builds a function literal taking Param of type param.
func Lambda(param, result string, body Node) *Func {
	return &Func{ParamType: param, Result: result, Body: body}
}
