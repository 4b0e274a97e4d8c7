package fixpoint

import "github.com/nukata/goarith"

// Primitives returns the built-in procedures installed into a fresh
// top-level frame: just enough arithmetic and list surgery to run the
// worked examples. All of them are pure.
func Primitives() map[string]*PrimValue {
	return map[string]*PrimValue{
		"+":     {Name: "+", Arity: 2, Fn: primAdd},
		"-":     {Name: "-", Arity: 2, Fn: primSub},
		"*":     {Name: "*", Arity: 2, Fn: primMul},
		"=":     {Name: "=", Arity: 2, Fn: primNumEq},
		"add1":  {Name: "add1", Arity: 1, Fn: primAdd1},
		"null?": {Name: "null?", Arity: 1, Fn: primNullP},
		"cons":  {Name: "cons", Arity: 2, Fn: primCons},
		"car":   {Name: "car", Arity: 1, Fn: primCar},
		"cdr":   {Name: "cdr", Arity: 1, Fn: primCdr},
	}
}

func numberArgs(op string, args []Value) (goarith.Number, goarith.Number, error) {
	for _, a := range args {
		if a.Kind != ValNumber {
			return nil, nil, &TypeError{Want: "Number", Got: a.KindName(), Op: op}
		}
	}
	return args[0].Num, args[1].Num, nil
}

func primAdd(args []Value) (Value, error) {
	a, b, err := numberArgs("+", args)
	if err != nil {
		return Value{}, err
	}
	return NumberVal(a.Add(b)), nil
}

func primSub(args []Value) (Value, error) {
	a, b, err := numberArgs("-", args)
	if err != nil {
		return Value{}, err
	}
	return NumberVal(a.Sub(b)), nil
}

func primMul(args []Value) (Value, error) {
	a, b, err := numberArgs("*", args)
	if err != nil {
		return Value{}, err
	}
	return NumberVal(a.Mul(b)), nil
}

func primNumEq(args []Value) (Value, error) {
	a, b, err := numberArgs("=", args)
	if err != nil {
		return Value{}, err
	}
	return BoolVal(a.Cmp(b) == 0), nil
}

func primAdd1(args []Value) (Value, error) {
	if args[0].Kind != ValNumber {
		return Value{}, &TypeError{Want: "Number", Got: args[0].KindName(), Op: "add1"}
	}
	return NumberVal(args[0].Num.Add(goarith.AsNumber(1))), nil
}

func primNullP(args []Value) (Value, error) {
	return BoolVal(args[0].Kind == ValEmpty), nil
}

func primCons(args []Value) (Value, error) {
	return PairVal(args[0], args[1]), nil
}

func primCar(args []Value) (Value, error) {
	if args[0].Kind != ValPair {
		return Value{}, &TypeError{Want: "Pair", Got: args[0].KindName(), Op: "car"}
	}
	return args[0].Pair.Car, nil
}

func primCdr(args []Value) (Value, error) {
	if args[0].Kind != ValPair {
		return Value{}, &TypeError{Want: "Pair", Got: args[0].KindName(), Op: "cdr"}
	}
	return args[0].Pair.Cdr, nil
}
