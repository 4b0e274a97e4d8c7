package fixpoint

import "fmt"

// Interp evaluates expressions against a process-wide top-level frame
// seeded with the primitives. Each Interp is fully independent; one
// run's defines never leak into another's.
type Interp struct {
	global *Frame
}

func NewInterp() *Interp {
	global := NewFrame(nil)
	for name, prim := range Primitives() {
		global.Define(name, PrimVal(prim))
	}
	return &Interp{global: global}
}

// EvalTop evaluates a sequence of top-level forms and returns the value
// of the last one. Only here is define legal; it installs its binding
// into the top-level frame before the following forms run.
func (in *Interp) EvalTop(nodes []*Node) (Value, error) {
	var result Value
	for _, node := range nodes {
		if isDefine(node) {
			if err := in.evalDefine(node); err != nil {
				return Value{}, err
			}
			result = UnspecifiedVal()
			continue
		}
		val, err := in.eval(node, in.global)
		if err != nil {
			return Value{}, err
		}
		result = val
	}
	return result, nil
}

// EvalString parses the input as top-level forms and evaluates them.
func (in *Interp) EvalString(input string) (Value, error) {
	nodes, err := ParseAll(input)
	if err != nil {
		return Value{}, fmt.Errorf("parse error: %w", err)
	}
	return in.EvalTop(nodes)
}

func isDefine(node *Node) bool {
	return node.Kind == NodeList && len(node.Children) > 0 &&
		node.Children[0].Kind == NodeSymbol && node.Children[0].Str == "define"
}

func (in *Interp) evalDefine(node *Node) error {
	if len(node.Children) != 3 {
		return fmt.Errorf("define: expected (define name expr)")
	}
	nameNode := node.Children[1]
	if nameNode.Kind != NodeSymbol {
		return fmt.Errorf("define: name must be a symbol")
	}
	val, err := in.eval(node.Children[2], in.global)
	if err != nil {
		return err
	}
	in.global.Define(nameNode.Str, val)
	return nil
}

func (in *Interp) eval(node *Node, env *Frame) (Value, error) {
	switch node.Kind {
	case NodeNumber:
		return IntVal(node.Int), nil
	case NodeBool:
		return BoolVal(node.Bool), nil
	case NodeSymbol:
		return env.Lookup(node.Str)
	case NodeList:
		return in.evalList(node, env)
	default:
		return Value{}, fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func (in *Interp) evalList(node *Node, env *Frame) (Value, error) {
	if len(node.Children) == 0 {
		return Value{}, fmt.Errorf("cannot eval empty list")
	}

	head := node.Children[0]

	// Special forms
	if head.Kind == NodeSymbol {
		switch head.Str {
		case "quote":
			return in.evalQuote(node)
		case "lambda":
			return in.evalLambda(node, env)
		case "if":
			return in.evalIf(node, env)
		case "let":
			return in.evalLet(node, env)
		case "letrec":
			return in.evalLetRec(node, env)
		case "set!":
			return in.evalSet(node, env)
		case "define":
			return Value{}, &TopLevelOnlyError{}
		}
	}

	// Application: evaluate the head, then the arguments left to right.
	headVal, err := in.eval(head, env)
	if err != nil {
		return Value{}, err
	}
	args := make([]Value, len(node.Children)-1)
	for i, argNode := range node.Children[1:] {
		val, err := in.eval(argNode, env)
		if err != nil {
			return Value{}, err
		}
		args[i] = val
	}

	switch headVal.Kind {
	case ValClosure:
		return in.apply(headVal.Closure, args)
	case ValPrimitive:
		prim := headVal.Prim
		if len(args) != prim.Arity {
			return Value{}, &ArityError{Expected: prim.Arity, Got: len(args)}
		}
		return prim.Fn(args)
	default:
		return Value{}, &NotCallableError{Kind: headVal.KindName()}
	}
}

// apply runs a closure body in a child of the frame the closure
// captured, never the caller's frame. Nothing here knows about
// self-application: `((f f) n)` terminates because `(f f)` returns the
// inner lambda's closure at once, deferring further work until that
// closure is itself applied.
func (in *Interp) apply(c *ClosureValue, args []Value) (Value, error) {
	if len(args) != len(c.Params) {
		return Value{}, &ArityError{Expected: len(c.Params), Got: len(args)}
	}
	frame, err := c.Env.Extend(c.Params, args)
	if err != nil {
		return Value{}, err
	}
	return in.evalBody(c.Body, frame)
}

// evalBody evaluates a form sequence and returns the last value.
func (in *Interp) evalBody(body []*Node, env *Frame) (Value, error) {
	var result Value
	for _, node := range body {
		val, err := in.eval(node, env)
		if err != nil {
			return Value{}, err
		}
		result = val
	}
	return result, nil
}

// evalQuote: (quote datum) — the datum as a value, unevaluated.
func (in *Interp) evalQuote(node *Node) (Value, error) {
	if len(node.Children) != 2 {
		return Value{}, fmt.Errorf("quote: expected 1 arg")
	}
	return datumToValue(node.Children[1])
}

func datumToValue(n *Node) (Value, error) {
	switch n.Kind {
	case NodeNumber:
		return IntVal(n.Int), nil
	case NodeBool:
		return BoolVal(n.Bool), nil
	case NodeList:
		elems := make([]Value, len(n.Children))
		for i, c := range n.Children {
			val, err := datumToValue(c)
			if err != nil {
				return Value{}, err
			}
			elems[i] = val
		}
		return ListVal(elems...), nil
	case NodeSymbol:
		// No symbol value kind: the worked programs only quote
		// number lists and ().
		return Value{}, fmt.Errorf("quote: no value for symbol %s", n.Str)
	default:
		return Value{}, fmt.Errorf("quote: unknown datum kind %d", n.Kind)
	}
}

// evalLambda: (lambda (params...) body...) — capture env by pointer,
// body unevaluated. A body naming its own lambda resolves nothing now;
// that is what makes the self-passing forms expressible.
func (in *Interp) evalLambda(node *Node, env *Frame) (Value, error) {
	if len(node.Children) < 3 {
		return Value{}, fmt.Errorf("lambda: expected (lambda (params...) body...)")
	}
	paramsNode := node.Children[1]
	if paramsNode.Kind != NodeList {
		return Value{}, fmt.Errorf("lambda: params must be a list")
	}
	params := make([]string, len(paramsNode.Children))
	for i, p := range paramsNode.Children {
		if p.Kind != NodeSymbol {
			return Value{}, fmt.Errorf("lambda: param names must be symbols")
		}
		params[i] = p.Str
	}
	return ClosureVal(&ClosureValue{
		Params: params,
		Body:   node.Children[2:],
		Env:    env,
	}), nil
}

// evalIf: (if test then else) — the test must reduce to a boolean and
// exactly one branch is evaluated. The untaken branch staying cold is
// what keeps the recursive arm of a fixed-point function from
// unwinding forever at n = 0.
func (in *Interp) evalIf(node *Node, env *Frame) (Value, error) {
	if len(node.Children) != 4 {
		return Value{}, fmt.Errorf("if: expected 3 args (test then else), got %d", len(node.Children)-1)
	}
	test, err := in.eval(node.Children[1], env)
	if err != nil {
		return Value{}, err
	}
	if test.Kind != ValBool {
		return Value{}, &TypeError{Want: "Bool", Got: test.KindName(), Op: "if"}
	}
	if test.Bool {
		return in.eval(node.Children[2], env)
	}
	return in.eval(node.Children[3], env)
}

// evalLet: (let ((name expr)...) body...) — binding exprs see the
// outer frame only, not each other, then the body runs in one child
// frame holding all bindings at once. Deliberately non-recursive: a
// lambda bound here that names its own binding fails at call time.
func (in *Interp) evalLet(node *Node, env *Frame) (Value, error) {
	names, exprs, err := letBindings("let", node)
	if err != nil {
		return Value{}, err
	}
	values := make([]Value, len(exprs))
	for i, expr := range exprs {
		val, err := in.eval(expr, env)
		if err != nil {
			return Value{}, err
		}
		values[i] = val
	}
	frame, err := env.Extend(names, values)
	if err != nil {
		return Value{}, err
	}
	return in.evalBody(node.Children[2:], frame)
}

// evalLetRec: (letrec ((name expr)...) body...) — the child frame is
// created first with unspecified placeholder cells, each binding expr
// is evaluated in that same frame, and the cells are patched. A lambda
// bound here can therefore name itself or a sibling: its closure
// captures the frame the finished binding will live in.
func (in *Interp) evalLetRec(node *Node, env *Frame) (Value, error) {
	names, exprs, err := letBindings("letrec", node)
	if err != nil {
		return Value{}, err
	}
	frame := NewFrame(env)
	for _, name := range names {
		frame.Define(name, UnspecifiedVal())
	}
	for i, expr := range exprs {
		val, err := in.eval(expr, frame)
		if err != nil {
			return Value{}, err
		}
		frame.Define(names[i], val)
	}
	return in.evalBody(node.Children[2:], frame)
}

func letBindings(form string, node *Node) ([]string, []*Node, error) {
	if len(node.Children) < 3 {
		return nil, nil, fmt.Errorf("%s: expected bindings and body", form)
	}
	bindingsNode := node.Children[1]
	if bindingsNode.Kind != NodeList {
		return nil, nil, fmt.Errorf("%s: bindings must be a list", form)
	}
	names := make([]string, len(bindingsNode.Children))
	exprs := make([]*Node, len(bindingsNode.Children))
	for i, pair := range bindingsNode.Children {
		if pair.Kind != NodeList || len(pair.Children) != 2 {
			return nil, nil, fmt.Errorf("%s: each binding must be (name expr)", form)
		}
		nameNode := pair.Children[0]
		if nameNode.Kind != NodeSymbol {
			return nil, nil, fmt.Errorf("%s: binding name must be a symbol", form)
		}
		names[i] = nameNode.Str
		exprs[i] = pair.Children[1]
	}
	return names, exprs, nil
}

// evalSet: (set! name expr) — overwrite an existing binding in place.
// The side-effecting escape hatch the fixed-point construction makes
// unnecessary; kept to run the contrasting variants.
func (in *Interp) evalSet(node *Node, env *Frame) (Value, error) {
	if len(node.Children) != 3 {
		return Value{}, fmt.Errorf("set!: expected (set! name expr)")
	}
	nameNode := node.Children[1]
	if nameNode.Kind != NodeSymbol {
		return Value{}, fmt.Errorf("set!: name must be a symbol")
	}
	val, err := in.eval(node.Children[2], env)
	if err != nil {
		return Value{}, err
	}
	if err := env.Set(nameNode.Str, val); err != nil {
		return Value{}, err
	}
	return UnspecifiedVal(), nil
}
