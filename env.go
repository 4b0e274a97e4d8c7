package fixpoint

import "fmt"

// Frame is one link in the environment chain: a set of bindings plus a
// parent. Children point at parents, never the other way, so the chain
// is a tree growing outward from the top level; a frame stays reachable
// exactly as long as some closure or live evaluation holds a pointer
// into it.
type Frame struct {
	vars   map[string]Value
	parent *Frame
}

func NewFrame(parent *Frame) *Frame {
	return &Frame{vars: make(map[string]Value), parent: parent}
}

// Lookup searches innermost to outermost.
func (f *Frame) Lookup(name string) (Value, error) {
	for fr := f; fr != nil; fr = fr.parent {
		if val, ok := fr.vars[name]; ok {
			return val, nil
		}
	}
	return Value{}, &UnboundError{Name: name}
}

// Extend creates one child frame binding names[i] to values[i].
// Parameter names must be unique within a frame.
func (f *Frame) Extend(names []string, values []Value) (*Frame, error) {
	if len(names) != len(values) {
		return nil, &ArityError{Expected: len(names), Got: len(values)}
	}
	child := NewFrame(f)
	for i, name := range names {
		if _, ok := child.vars[name]; ok {
			return nil, fmt.Errorf("duplicate parameter name: %s", name)
		}
		child.vars[name] = values[i]
	}
	return child, nil
}

// Define binds name in this frame, overwriting a binding already here.
// Used by top-level define and by letrec cell patching.
func (f *Frame) Define(name string, val Value) {
	f.vars[name] = val
}

// Set overwrites an existing binding in place, wherever in the chain it
// lives. The only mutation of a frame after creation; everything else
// extends.
func (f *Frame) Set(name string, val Value) error {
	for fr := f; fr != nil; fr = fr.parent {
		if _, ok := fr.vars[name]; ok {
			fr.vars[name] = val
			return nil
		}
	}
	return &UnboundError{Name: name}
}
