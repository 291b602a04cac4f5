package main

import (
	"errors"
	"fmt"
	"os"
)

var errNoCommand = errors.New("no command specified")

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
