package fixpoint

import "fmt"

// UnboundError is returned when an identifier lookup exhausts the
// frame chain. Its message reproduces the surface form a Scheme
// reports for a lambda body naming its own not-yet-bound name.
type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("%s: unbound identifier in: %s", e.Name, e.Name)
}

// ArityError is returned when a closure or primitive is applied to the
// wrong number of arguments.
type ArityError struct {
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity mismatch: expected %d args, got %d", e.Expected, e.Got)
}

// TypeError is returned when an operation receives a value of the
// wrong kind: a non-boolean if test, car of a non-pair, arithmetic on
// a non-number.
type TypeError struct {
	Want string
	Got  string
	Op   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Op, e.Want, e.Got)
}

// NotCallableError is returned when the head of an application is
// neither a closure nor a primitive.
type NotCallableError struct {
	Kind string
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("cannot call %s value", e.Kind)
}

// TopLevelOnlyError is returned for a define anywhere below the
// top level.
type TopLevelOnlyError struct{}

func (e *TopLevelOnlyError) Error() string {
	return "define: only allowed at top level"
}
