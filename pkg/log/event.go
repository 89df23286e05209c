package log

import (
	"fmt"
	"strings"
	"time"
)

// Event is a single entry of the call log.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the negotiator or catalog session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Type-specific payload (one of these will be set).
	Call      *CallEvent      `cbor:"10,keyasint,omitempty"`
	Handshake *HandshakeEvent `cbor:"11,keyasint,omitempty"`
	Object    *ObjectEvent    `cbor:"12,keyasint,omitempty"`
	Error     *ErrorEventData `cbor:"13,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCall is a remote routine invocation.
	CategoryCall Category = 0
	// CategoryHandshake is a compatibility verdict.
	CategoryHandshake Category = 1
	// CategoryObject is a remote object lifecycle step.
	CategoryObject Category = 2
	// CategoryError is an error outside a remote call.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCall:
		return "CALL"
	case CategoryHandshake:
		return "HANDSHAKE"
	case CategoryObject:
		return "OBJECT"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "call":
		return CategoryCall, nil
	case "handshake":
		return CategoryHandshake, nil
	case "object":
		return CategoryObject, nil
	case "error":
		return CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category %q (valid: call, handshake, object, error)", s)
	}
}

// CallEvent captures one remote routine invocation.
type CallEvent struct {
	// Routine is the remote routine name, e.g. "ut_runner.version".
	Routine string `cbor:"1,keyasint"`

	// Args is the number of bound arguments.
	Args int `cbor:"2,keyasint,omitempty"`

	// Duration is how long the call took.
	Duration time.Duration `cbor:"3,keyasint"`

	// Failed is set when the call returned an error.
	Failed bool `cbor:"4,keyasint,omitempty"`

	// Code is the database error code, if the dialect recognised one.
	Code *int `cbor:"5,keyasint,omitempty"`
}

// HandshakeMethod tells how a compatibility verdict was reached.
type HandshakeMethod uint8

const (
	// MethodSkipped means the handshake was not performed.
	MethodSkipped HandshakeMethod = 0
	// MethodRoutine means the framework's own check routine decided.
	MethodRoutine HandshakeMethod = 1
	// MethodFallback means major/minor comparison decided.
	MethodFallback HandshakeMethod = 2
	// MethodMissingRoutine means the routine was advertised but absent.
	MethodMissingRoutine HandshakeMethod = 3
)

// String returns the method name.
func (m HandshakeMethod) String() string {
	switch m {
	case MethodSkipped:
		return "SKIPPED"
	case MethodRoutine:
		return "ROUTINE"
	case MethodFallback:
		return "FALLBACK"
	case MethodMissingRoutine:
		return "MISSING_ROUTINE"
	default:
		return "UNKNOWN"
	}
}

// HandshakeEvent captures a compatibility verdict.
type HandshakeEvent struct {
	Requested  string          `cbor:"1,keyasint"`
	Remote     string          `cbor:"2,keyasint"`
	Method     HandshakeMethod `cbor:"3,keyasint"`
	Compatible bool            `cbor:"4,keyasint"`
}

// ObjectStage identifies a step of remote object initialization.
type ObjectStage uint8

const (
	// StageConstructed means the remote constructor returned.
	StageConstructed ObjectStage = 0
	// StageOutputQueried means the has_output predicate returned.
	StageOutputQueried ObjectStage = 1
	// StageInitialized means initialization completed.
	StageInitialized ObjectStage = 2
)

// String returns the stage name.
func (s ObjectStage) String() string {
	switch s {
	case StageConstructed:
		return "CONSTRUCTED"
	case StageOutputQueried:
		return "OUTPUT_QUERIED"
	case StageInitialized:
		return "INITIALIZED"
	default:
		return "UNKNOWN"
	}
}

// ObjectEvent captures a remote object lifecycle step.
type ObjectEvent struct {
	TypeName  string      `cbor:"1,keyasint"`
	ObjectID  string      `cbor:"2,keyasint,omitempty"`
	Stage     ObjectStage `cbor:"3,keyasint"`
	HasOutput bool        `cbor:"4,keyasint,omitempty"`
}

// ErrorEventData captures an error.
type ErrorEventData struct {
	Message string `cbor:"1,keyasint"`
	Context string `cbor:"2,keyasint,omitempty"`
	Code    *int   `cbor:"3,keyasint,omitempty"`
}
