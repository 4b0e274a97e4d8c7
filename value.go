package fixpoint

import (
	"fmt"
	"strings"

	"github.com/nukata/goarith"
)

type ValueKind int

const (
	ValNumber ValueKind = iota
	ValBool
	ValPair
	ValEmpty
	ValClosure
	ValPrimitive
	ValUnspecified
)

// PairCell is one cons cell. Lists are chains of cells ending in the
// empty list; an improper tail is printed dotted.
type PairCell struct {
	Car Value
	Cdr Value
}

// ClosureValue pairs a lambda body with the frame it was created in.
// Env is shared, never copied: applying the closure extends this exact
// frame, which is what lets `(f f)` hand a function its own closure.
type ClosureValue struct {
	Params []string
	Body   []*Node
	Env    *Frame
}

// PrimValue is a built-in procedure, installed once at startup.
type PrimValue struct {
	Name  string
	Arity int
	Fn    func(args []Value) (Value, error)
}

type Value struct {
	Kind    ValueKind
	Num     goarith.Number
	Bool    bool
	Pair    *PairCell
	Closure *ClosureValue
	Prim    *PrimValue
}

func NumberVal(n goarith.Number) Value { return Value{Kind: ValNumber, Num: n} }
func IntVal(n int64) Value             { return Value{Kind: ValNumber, Num: goarith.AsNumber(n)} }
func BoolVal(b bool) Value             { return Value{Kind: ValBool, Bool: b} }
func PairVal(car, cdr Value) Value {
	return Value{Kind: ValPair, Pair: &PairCell{Car: car, Cdr: cdr}}
}
func EmptyVal() Value                  { return Value{Kind: ValEmpty} }
func ClosureVal(c *ClosureValue) Value { return Value{Kind: ValClosure, Closure: c} }
func PrimVal(p *PrimValue) Value       { return Value{Kind: ValPrimitive, Prim: p} }
func UnspecifiedVal() Value            { return Value{Kind: ValUnspecified} }

// ListVal builds a proper list from the elements.
func ListVal(elems ...Value) Value {
	v := EmptyVal()
	for i := len(elems) - 1; i >= 0; i-- {
		v = PairVal(elems[i], v)
	}
	return v
}

func (v Value) String() string {
	switch v.Kind {
	case ValNumber:
		return fmt.Sprintf("%v", v.Num)
	case ValBool:
		if v.Bool {
			return "#t"
		}
		return "#f"
	case ValEmpty:
		return "()"
	case ValPair:
		var sb strings.Builder
		sb.WriteByte('(')
		cur := v
		for {
			sb.WriteString(cur.Pair.Car.String())
			tail := cur.Pair.Cdr
			if tail.Kind == ValEmpty {
				break
			}
			if tail.Kind != ValPair {
				sb.WriteString(" . ")
				sb.WriteString(tail.String())
				break
			}
			sb.WriteByte(' ')
			cur = tail
		}
		sb.WriteByte(')')
		return sb.String()
	case ValClosure:
		return "#<procedure>"
	case ValPrimitive:
		return "#<primitive:" + v.Prim.Name + ">"
	case ValUnspecified:
		return "#<unspecified>"
	default:
		return fmt.Sprintf("<unknown:%d>", v.Kind)
	}
}

func (v Value) KindName() string {
	switch v.Kind {
	case ValNumber:
		return "Number"
	case ValBool:
		return "Bool"
	case ValPair:
		return "Pair"
	case ValEmpty:
		return "Empty"
	case ValClosure:
		return "Closure"
	case ValPrimitive:
		return "Primitive"
	case ValUnspecified:
		return "Unspecified"
	default:
		return "Unknown"
	}
}

// ValuesEqual compares two Values for deep equality. Numbers compare
// numerically; closures and primitives compare by identity.
func ValuesEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ValNumber:
		return a.Num.Cmp(b.Num) == 0
	case ValBool:
		return a.Bool == b.Bool
	case ValPair:
		return ValuesEqual(a.Pair.Car, b.Pair.Car) && ValuesEqual(a.Pair.Cdr, b.Pair.Cdr)
	case ValEmpty, ValUnspecified:
		return true
	case ValClosure:
		return a.Closure == b.Closure
	case ValPrimitive:
		return a.Prim == b.Prim
	}
	return false
}
