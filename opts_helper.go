package opts

import (
	"fmt"
	"io"
	"os"
)

// ExitFunc terminates the process. Swappable so ParseOrExit is testable.
type ExitFunc func(code int)

var (
	osExit       ExitFunc  = os.Exit
	stdoutWriter io.Writer = os.Stdout
	stderrWriter io.Writer = os.Stderr
)

func SetExitFunc(fn ExitFunc) {
	osExit = fn
}

func SetStdoutWriter(w io.Writer) {
	stdoutWriter = w
}

func SetStderrWriter(w io.Writer) {
	stderrWriter = w
}

// PrintHelp writes the usage text to the configured stdout writer, for
// callers wiring up their own --help flag.
func (o *Options) PrintHelp(groups ...string) {
	fmt.Fprint(stdoutWriter, o.Help(groups...))
}

// ParseOrExit is the convenience entry point for main functions: on any
// parse error it prints the error and the help text to stderr and exits
// with status 1.
func (o *Options) ParseOrExit(argv []string, popts ...ParseOpt) *ParseResult {
	result, err := o.Parse(argv, popts...)
	if err != nil {
		fmt.Fprintf(stderrWriter, "%s\n\n%s", err, o.Help())
		osExit(1)
		return nil
	}
	return result
}
