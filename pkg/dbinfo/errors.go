package dbinfo

import (
	"errors"
	"fmt"
)

// CodeMissingRoutine is the error code reported when a called routine does
// not exist in the database (PLS-00201 surfaces as ORA-06550).
const CodeMissingRoutine = 6550

// ErrInvalidDialect is returned by Dialect.Validate.
var ErrInvalidDialect = errors.New("invalid dialect")

// ErrUnknownDialect is returned by DialectByName.
var ErrUnknownDialect = errors.New("unknown dialect")

// Error is a database error raised by a remote routine, annotated with the
// code the dialect recognised in it. Code is 0 when none was recognised.
type Error struct {
	Routine string
	Code    int
	Err     error
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s: code %d: %v", e.Routine, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Routine, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the database error code carried by err. It understands
// *Error and any error in the chain with a Code() int method.
func CodeOf(err error) (int, bool) {
	var dbErr *Error
	if errors.As(err, &dbErr) && dbErr.Code != 0 {
		return dbErr.Code, true
	}
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		return coded.Code(), true
	}
	return 0, false
}

// IsMissingRoutine reports whether err says the called routine does not exist.
func IsMissingRoutine(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == CodeMissingRoutine
}
