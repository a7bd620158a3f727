package gpu

import "fmt"

// AllocationError reports the driver refused to create a handle.
type AllocationError struct {
	Kind Kind
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("gpu: driver refused to allocate %s", e.Kind)
}

// CompileError carries the driver's info log for a shader stage that failed
// to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu: %s failed to compile:\n%s", e.Stage, e.Log)
}

// LinkError carries the driver's info log for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gpu: program failed to link:\n%s", e.Log)
}

// UniformNotFoundError reports a name with no active uniform in the program.
type UniformNotFoundError struct {
	Name string
}

func (e *UniformNotFoundError) Error() string {
	return fmt.Sprintf("gpu: uniform %q not found on program", e.Name)
}

// DriverError is a value read from the context's error flag after Op.
type DriverError struct {
	Op   string
	Code Enum
}

func (e *DriverError) Error() string {
	var name string
	switch e.Code {
	case INVALID_ENUM:
		name = "INVALID_ENUM"
	case INVALID_VALUE:
		name = "INVALID_VALUE"
	case INVALID_OPERATION:
		name = "INVALID_OPERATION"
	case OUT_OF_MEMORY:
		name = "OUT_OF_MEMORY"
	default:
		name = fmt.Sprintf("0x%04X", uint32(e.Code))
	}
	return fmt.Sprintf("gpu: %s: %s", e.Op, name)
}

// CheckError reads and clears the context's error flag, reporting a set flag
// as a DriverError for op.
func CheckError(ctx Context, op string) error {
	if code := ctx.GetError(); code != NO_ERROR {
		return &DriverError{Op: op, Code: code}
	}
	return nil
}
