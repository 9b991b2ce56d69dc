package lint

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type colorFunc func(a ...any) string

// Logger writes human readable messages to stderr.
// Findings themselves are written to stdout.
type Logger struct {
	stderr io.Writer
	red    colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		stderr: stderr,
	}
}

func (l *Logger) Summary(findings, files int) {
	if l.stderr == nil {
		return
	}
	fmt.Fprintf(l.stderr, "%s %d problems found in action references (%d files checked)\n", l.red("ERROR"), findings, files)
}
