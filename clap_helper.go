package clap

import (
	"io"
	"os"
)

// ExitFunc is the function used to terminate the process.
type ExitFunc func(int)

// Injection seams for output and process exit, so ParseOrExit and Dump can be
// exercised in tests without touching the real streams.
var (
	stdoutWriter io.Writer = os.Stdout
	stderrWriter io.Writer = os.Stderr
	osExit       ExitFunc  = os.Exit
)

// SetStdoutWriter overrides where Dump writes, for testing or custom output.
func SetStdoutWriter(w io.Writer) {
	stdoutWriter = w
}

// SetStderrWriter overrides where ParseOrExit writes its diagnostics.
func SetStderrWriter(w io.Writer) {
	stderrWriter = w
}

// SetExitFunc overrides the exit function, for testing.
func SetExitFunc(exitFunc ExitFunc) {
	osExit = exitFunc
}
