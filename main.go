package main

import (
	"fmt"
	"os"

	"github.com/crillab/propeval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "propeval: %v\n", err)
		os.Exit(1)
	}
}
