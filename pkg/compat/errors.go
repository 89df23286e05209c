package compat

import (
	"errors"
	"fmt"

	"github.com/utplsql/utplsql-go/pkg/version"
)

// ErrNotCompatible matches every *NotCompatibleError via errors.Is.
var ErrNotCompatible = errors.New("framework not compatible")

// NotCompatibleError reports that the client cannot work with the framework
// in the database, or that this could not be determined.
type NotCompatibleError struct {
	// Reason describes what went wrong.
	Reason string

	// Requested is the version the client asked for.
	Requested version.Version

	// Remote is the framework version, nil when it could not be read.
	Remote *version.Version

	// Err is the underlying failure, if any.
	Err error
}

func (e *NotCompatibleError) Error() string {
	remote := "unavailable"
	if e.Remote != nil {
		remote = e.Remote.String()
	}
	msg := fmt.Sprintf("API version %s is not compatible with framework version %s", e.Requested, remote)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrNotCompatible.
func (e *NotCompatibleError) Is(target error) bool {
	return target == ErrNotCompatible
}

func (e *NotCompatibleError) Unwrap() error {
	return e.Err
}
