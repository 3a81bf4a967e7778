package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoProgram is returned when an operation needs a linked program but the
// ShaderProgram has already been deleted.
var ErrNoProgram = errors.New("shader program has been deleted")

// CompileError carries the driver's diagnostic for a rejected shader stage.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %v shader: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError carries the driver's diagnostic for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link shader program: %s", strings.TrimSpace(e.Log))
}
