package config

import (
	"fmt"
	"io"
	"os"
)

// ExitCode is the process status for any failed command run.
const ExitCode = 1

// swapped by tests
var (
	osExit           = os.Exit
	stderr io.Writer = os.Stderr
)

// Exitf prints the message and a newline to stderr, then exits with ExitCode.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	osExit(ExitCode)
}
