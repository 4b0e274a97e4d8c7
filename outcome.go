package fixpoint

// Outcome captures the boundary of a single example run: the snippet
// name, its source, and either the resulting value or the error that
// stopped it. Evaluation is deterministic, so re-running the snippet
// reproduces the outcome exactly.
type Outcome struct {
	Name   string
	Source string
	Value  Value
	Err    error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Render returns the line content reported for this outcome: the
// printed value on success, the error message on failure.
func (o Outcome) Render() string {
	if o.Err != nil {
		return o.Err.Error()
	}
	return o.Value.String()
}
