package fixpoint

import (
	"errors"
	"strings"
	"testing"
)

// expectedRenders is the acceptance contract: one line content per
// snippet, mirroring the derivation's inline comments.
var expectedRenders = map[string]string{
	"naive-recursive":            "fact: unbound identifier in: fact",
	"naive-one-level":            "fact: unbound identifier in: fact",
	"letrec-fact":                "120",
	"set!-fact":                  "120",
	"self-pass-fact":             "120",
	"step-01-self-apply":         "120",
	"step-02-inline-self-apply":  "120",
	"step-03-eta-delay":          "120",
	"step-04-name-recursion":     "120",
	"step-05-let-to-apply":       "120",
	"step-06-hoist-generator":    "120",
	"step-07-inline-i":           "120",
	"step-08-abstract-generator": "120",
	"step-09-define-y":           "120",
	"step-10-inline-generator":   "120",
	"step-11-bind-fact":          "120",
	"y-fact":                     "120",
	"y-sum":                      "15",
	"y-length":                   "3",
	"y-map-add1":                 "(2 3 4)",
}

func TestExamplesMatchContract(t *testing.T) {
	examples := Examples()
	if len(examples) != len(expectedRenders) {
		t.Fatalf("registry has %d examples, contract has %d", len(examples), len(expectedRenders))
	}
	for _, ex := range examples {
		want, ok := expectedRenders[ex.Name]
		if !ok {
			t.Fatalf("no expectation for example %s", ex.Name)
		}
		outcome, err := RunExample(ex.Name)
		if err != nil {
			t.Fatal(err)
		}
		if got := outcome.Render(); got != want {
			t.Fatalf("%s: expected %q, got %q", ex.Name, want, got)
		}
	}
}

func TestNaiveAttemptsFailUnbound(t *testing.T) {
	for _, name := range []string{"naive-recursive", "naive-one-level"} {
		outcome, err := RunExample(name)
		if err != nil {
			t.Fatal(err)
		}
		var unbound *UnboundError
		if !errors.As(outcome.Err, &unbound) {
			t.Fatalf("%s: expected UnboundError, got %v", name, outcome.Err)
		}
		if unbound.Name != "fact" {
			t.Fatalf("%s: expected fact, got %s", name, unbound.Name)
		}
	}
}

func TestDerivationStepsArePreserving(t *testing.T) {
	// Every refactoring step of the chain computes the same 120.
	for _, ex := range Examples() {
		if !strings.HasPrefix(ex.Name, "step-") {
			continue
		}
		outcome, err := RunExample(ex.Name)
		if err != nil {
			t.Fatal(err)
		}
		if outcome.Failed() {
			t.Fatalf("%s failed: %v", ex.Name, outcome.Err)
		}
		if !ValuesEqual(outcome.Value, IntVal(120)) {
			t.Fatalf("%s: expected 120, got %s", ex.Name, outcome.Value)
		}
	}
}

func TestRunExampleIsIdempotent(t *testing.T) {
	first, err := RunExample("y-fact")
	if err != nil {
		t.Fatal(err)
	}
	second, err := RunExample("y-fact")
	if err != nil {
		t.Fatal(err)
	}
	if first.Render() != second.Render() {
		t.Fatalf("renders differ: %q vs %q", first.Render(), second.Render())
	}
}

func TestYBaseCaseTerminatesInOneStep(t *testing.T) {
	// At n = 0 the recursive branch stays cold; (Y g) applied to 0
	// must answer without touching fact again.
	in := NewInterp()
	val, err := in.EvalString(defineY + `
((Y ` + factGen + `) 0)
`)
	if err != nil {
		t.Fatal(err)
	}
	if !ValuesEqual(val, IntVal(1)) {
		t.Fatalf("expected 1, got %s", val)
	}
}

func TestRunExampleUnknown(t *testing.T) {
	if _, err := RunExample("no-such-snippet"); err == nil {
		t.Fatal("expected error for unknown example")
	}
}

func TestReportFormat(t *testing.T) {
	var sb strings.Builder
	outcomes := []Outcome{
		{Name: "y-fact", Value: IntVal(120)},
		{Name: "naive-recursive", Err: &UnboundError{Name: "fact"}},
	}
	if err := Report(&sb, outcomes); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "y-fact") || !strings.HasSuffix(lines[0], "=> 120") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "=> fact: unbound identifier in: fact") {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}
