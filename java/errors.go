package java

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoJavaHomeProperty is returned when the java executable ran but
	// did not report a java.home property.
	ErrNoJavaHomeProperty = errors.New("the installed java executable did not report a java.home property")

	// ErrNoNativeLibrary is returned when no native JVM library exists below the home.
	ErrNoNativeLibrary = errors.New("unable to find native library file within java home")
)

// ExecutionError reports a failure to start the java executable found on PATH.
type ExecutionError struct {
	Command string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("error running java executable %q on system path: %v", e.Command, e.Err)
}

func (e *ExecutionError) Cause() error  { return e.Err }
func (e *ExecutionError) Unwrap() error { return e.Err }

// BadHomePathError reports a java home (possibly from JAVA_HOME) whose
// contents are not laid out as expected: an outdated value, or a path
// pointing at something other than a directory.
type BadHomePathError struct {
	Path string
}

func (e *BadHomePathError) Error() string {
	return fmt.Sprintf("java home path contains bad data (bad path: %s)", e.Path)
}

func ioError(err error, path string) error {
	return errors.Wrapf(err, "error accessing java home path %s", path)
}
