package main

import (
	"errors"
	"io"
	"os"
)

var errNoInput = errors.New("no input specified: pass a file, \"-\" for stdin, or -e '<expression>'")

func readAllStdin() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}
