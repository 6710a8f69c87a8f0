package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Exit codes for CLI entry points. Usage matches the flag package.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// Exitf reports a fatal error on stderr and exits with ExitFailure. The line
// carries the standard logger's prefix so it matches the binary's log output.
func Exitf(format string, args ...any) {
	os.Exit(report(os.Stderr, ExitFailure, format, args...))
}

// ExitUsagef reports bad command-line input and exits with ExitUsage.
func ExitUsagef(format string, args ...any) {
	os.Exit(report(os.Stderr, ExitUsage, format, args...))
}

func report(w io.Writer, code int, format string, args ...any) int {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintf(w, "%s%s\n", log.Prefix(), msg)
	return code
}
