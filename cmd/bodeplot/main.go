package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	ctx := context.Background()

	// Operating system fundamentals are passed in so run can be tested in isolation
	if err := run(ctx, os.Args, os.Getenv, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
