package fixpoint

import (
	"fmt"
	"io"
)

// Example is one named snippet from the derivation: source text for
// one or more top-level forms, the last of which produces the value
// reported for the snippet.
type Example struct {
	Name   string
	Source string
}

// defineY is the standalone fixed-point combinator the derivation
// arrives at, in its applicative-order form: the inner (lambda (x) ...)
// wrapper delays the self-application until the recursive call
// actually happens.
const defineY = `
(define Y
  (lambda (g)
    ((lambda (f) (g (lambda (x) ((f f) x))))
     (lambda (f) (g (lambda (x) ((f f) x)))))))
`

// factGen is the factorial generator: a function expecting "itself"
// as an argument.
const factGen = `
(lambda (fact)
  (lambda (n)
    (if (= n 0)
        1
        (* n (fact (- n 1))))))
`

// Examples returns the snippet registry in document order: the two
// attempts that fail, the three variants that work by other means, the
// refactoring chain from plain self-application to the standalone Y,
// and Y put to work on the four recursive programs.
func Examples() []Example {
	return []Example{
		// A let binding is not recursive: the lambda captures the
		// outer frame, so the fact inside its body is never found.
		{"naive-recursive", `
(let ((fact (lambda (n)
              (if (= n 0)
                  1
                  (* n (fact (- n 1)))))))
  (fact 5))
`},
		// Unrolling one level by hand only pushes the failure one
		// call deeper.
		{"naive-one-level", `
(let ((fact (lambda (n)
              (if (= n 0)
                  1
                  (* n ((lambda (n)
                          (if (= n 0)
                              1
                              (* n (fact (- n 1)))))
                        (- n 1)))))))
  (fact 5))
`},
		// letrec evaluates the binding inside the new frame, so the
		// closure sees its own cell.
		{"letrec-fact", `
(letrec ((fact (lambda (n)
                 (if (= n 0)
                     1
                     (* n (fact (- n 1)))))))
  (fact 5))
`},
		// Mutation gets there too: bind a dummy, then overwrite the
		// cell the closure already captured.
		{"set!-fact", `
(let ((fact (lambda (n) n)))
  (set! fact (lambda (n)
               (if (= n 0)
                   1
                   (* n (fact (- n 1))))))
  (fact 5))
`},
		// No mutation needed if the function is handed itself.
		{"self-pass-fact", `
(let ((fact (lambda (self n)
              (if (= n 0)
                  1
                  (* n (self self (- n 1)))))))
  (fact fact 5))
`},

		// --- Derivation chain, each step semantics-preserving ---

		{"step-01-self-apply", `
(let ((i (lambda (f)
           (lambda (n)
             (if (= n 0)
                 1
                 (* n ((f f) (- n 1))))))))
  ((i i) 5))
`},
		{"step-02-inline-self-apply", `
(((lambda (f)
    (lambda (n)
      (if (= n 0)
          1
          (* n ((f f) (- n 1))))))
  (lambda (f)
    (lambda (n)
      (if (= n 0)
          1
          (* n ((f f) (- n 1)))))))
 5)
`},
		{"step-03-eta-delay", `
(let ((i (lambda (f)
           (lambda (n)
             (if (= n 0)
                 1
                 (* n ((lambda (x) ((f f) x)) (- n 1))))))))
  ((i i) 5))
`},
		{"step-04-name-recursion", `
(let ((i (lambda (f)
           (let ((fact (lambda (x) ((f f) x))))
             (lambda (n)
               (if (= n 0)
                   1
                   (* n (fact (- n 1)))))))))
  ((i i) 5))
`},
		{"step-05-let-to-apply", `
(let ((i (lambda (f)
           ((lambda (fact)
              (lambda (n)
                (if (= n 0)
                    1
                    (* n (fact (- n 1))))))
            (lambda (x) ((f f) x))))))
  ((i i) 5))
`},
		{"step-06-hoist-generator", `
(let ((g (lambda (fact)
           (lambda (n)
             (if (= n 0)
                 1
                 (* n (fact (- n 1))))))))
  (let ((i (lambda (f) (g (lambda (x) ((f f) x))))))
    ((i i) 5)))
`},
		{"step-07-inline-i", `
(let ((g (lambda (fact)
           (lambda (n)
             (if (= n 0)
                 1
                 (* n (fact (- n 1))))))))
  (((lambda (f) (g (lambda (x) ((f f) x))))
    (lambda (f) (g (lambda (x) ((f f) x)))))
   5))
`},
		{"step-08-abstract-generator", `
(let ((make (lambda (g)
              ((lambda (f) (g (lambda (x) ((f f) x))))
               (lambda (f) (g (lambda (x) ((f f) x))))))))
  ((make (lambda (fact)
           (lambda (n)
             (if (= n 0)
                 1
                 (* n (fact (- n 1)))))))
   5))
`},
		{"step-09-define-y", defineY + `
(let ((g ` + factGen + `))
  ((Y g) 5))
`},
		{"step-10-inline-generator", defineY + `
((Y ` + factGen + `) 5)
`},
		{"step-11-bind-fact", defineY + `
(let ((fact (Y ` + factGen + `)))
  (fact 5))
`},

		// --- Y at work ---

		{"y-fact", defineY + `
(define fact (Y ` + factGen + `))
(fact 5)
`},
		{"y-sum", defineY + `
(define sum
  (Y (lambda (sum)
       (lambda (n)
         (if (= n 0)
             0
             (+ n (sum (- n 1))))))))
(sum 5)
`},
		{"y-length", defineY + `
(define length
  (Y (lambda (length)
       (lambda (l)
         (if (null? l)
             0
             (add1 (length (cdr l))))))))
(length '(1 2 3))
`},
		{"y-map-add1", defineY + `
(define map
  (Y (lambda (map)
       (lambda (f)
         (lambda (l)
           (if (null? l)
               '()
               (cons (f (car l)) ((map f) (cdr l)))))))))
((map add1) '(1 2 3))
`},
	}
}

// RunExample evaluates the named snippet against a fresh interpreter.
// Fresh per run: a failure or a define in one snippet cannot reach the
// next.
func RunExample(name string) (Outcome, error) {
	for _, ex := range Examples() {
		if ex.Name == name {
			return runOne(ex), nil
		}
	}
	return Outcome{}, fmt.Errorf("unknown example: %s", name)
}

// RunAll evaluates every snippet in document order.
func RunAll() []Outcome {
	examples := Examples()
	outcomes := make([]Outcome, len(examples))
	for i, ex := range examples {
		outcomes[i] = runOne(ex)
	}
	return outcomes
}

func runOne(ex Example) Outcome {
	out := Outcome{Name: ex.Name, Source: ex.Source}
	val, err := NewInterp().EvalString(ex.Source)
	if err != nil {
		out.Err = err
		return out
	}
	out.Value = val
	return out
}

// Report writes one line per snippet, mirroring the inline comments of
// the derivation: the value for the steps that work, the error for the
// attempts that do not.
func Report(w io.Writer, outcomes []Outcome) error {
	for _, o := range outcomes {
		if _, err := fmt.Fprintf(w, "%-26s => %s\n", o.Name, o.Render()); err != nil {
			return err
		}
	}
	return nil
}
