package main

import (
	"fmt"
	"os"

	"github.com/rphilander/fixpoint"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: yc [example-name]\n")
		os.Exit(1)
	}

	if len(os.Args) == 2 {
		outcome, err := fixpoint.RunExample(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Println(outcome.Render())
		return
	}

	if err := fixpoint.Report(os.Stdout, fixpoint.RunAll()); err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(1)
	}
}
