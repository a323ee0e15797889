package main

import (
	"fmt"
	"os"

	"github.com/m04kA/SMC-SchedulingService/internal/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
