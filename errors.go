package learngl

import (
	"errors"
	"fmt"
	"strings"
)

const noDiagnostic = "no diagnostic available"

// ErrNoHandle is returned when the driver fails to allocate a shader or
// program object, usually because no context is current.
var ErrNoHandle = errors.New("driver returned no handle")

// ErrReleased is returned by operations on a Program after Delete.
var ErrReleased = errors.New("program released")

// CompileError reports a stage that failed to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link, typically because the
// stage interfaces do not match.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// diagnostic trims the driver log and substitutes a placeholder when the
// driver produced nothing, so failures always carry a message.
func diagnostic(log string) string {
	log = strings.TrimRight(log, "\x00 \t\r\n")
	if log == "" {
		return noDiagnostic
	}
	return log
}
