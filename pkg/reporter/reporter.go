package reporter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/utplsql/utplsql-go/pkg/wire"
)

var (
	// ErrMalformedObject is returned when an attribute vector has no usable
	// identifier at position 1.
	ErrMalformedObject = errors.New("malformed reporter object")

	// ErrUnknownType is returned when the catalog does not know a type.
	ErrUnknownType = errors.New("unknown reporter type")

	// ErrUnsupportedDialect is returned when a dialect cannot carry
	// framework objects.
	ErrUnsupportedDialect = errors.New("dialect does not support framework objects")
)

// idPosition is the attribute position holding the reporter identifier.
const idPosition = 1

var invalidTypeChars = regexp.MustCompile(`[^0-9a-zA-Z_]`)

// SanitizeTypeName drops every character outside [0-9a-zA-Z_].
func SanitizeTypeName(name string) string {
	return invalidTypeChars.ReplaceAllString(name, "")
}

// Catalog is the database side of reporter objects.
type Catalog interface {
	// Construct calls the type's constructor and returns the attributes of
	// the new object.
	Construct(ctx context.Context, typeName string) (wire.Attributes, error)

	// HasOutput calls the object's has_output predicate.
	HasOutput(ctx context.Context, obj *wire.Object) (sql.NullInt64, error)

	// Resolve describes a composite type.
	Resolve(ctx context.Context, typeName string) (wire.TypeDescriptor, error)
}

// initObserver is implemented by catalogs that record completed inits.
type initObserver interface {
	Initialized(r *Reporter)
}

// Object is a value that can be initialized in and bound to the database.
type Object interface {
	TypeName() string
	Init(ctx context.Context, cat Catalog) error
	Value(ctx context.Context, cat Catalog) (*wire.Object, error)
}

// Reporter is a client-side proxy for a framework reporter.
// It is not safe for concurrent use until Init has returned.
type Reporter struct {
	typeName    string
	attrs       wire.Attributes
	id          string
	hasOutput   bool
	initialized bool
}

// New creates a reporter of the given type. attrs may be nil; when set, the
// identifier is read from position 1.
func New(typeName string, attrs wire.Attributes) (*Reporter, error) {
	r := &Reporter{typeName: SanitizeTypeName(typeName)}
	if err := r.setAttributes(attrs); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reporter) setAttributes(attrs wire.Attributes) error {
	id, err := r.readID(attrs)
	if err != nil {
		return err
	}
	r.attrs = attrs.Clone()
	r.id = id
	return nil
}

// readID returns the identifier at idPosition, or "" for a nil vector.
func (r *Reporter) readID(attrs wire.Attributes) (string, error) {
	if attrs == nil {
		return "", nil
	}
	id, err := attrs.Text(idPosition)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMalformedObject, r.typeName, err)
	}
	return id, nil
}

// Init constructs the reporter in the database and queries whether it has
// output. The reporter changes only when both calls succeed.
func (r *Reporter) Init(ctx context.Context, cat Catalog) error {
	attrs, err := cat.Construct(ctx, r.typeName)
	if err != nil {
		return err
	}
	id, err := r.readID(attrs)
	if err != nil {
		return err
	}
	attrs = attrs.Clone()

	n, err := cat.HasOutput(ctx, &wire.Object{TypeName: r.typeName, Attributes: attrs})
	if err != nil {
		return err
	}

	r.attrs = attrs
	r.id = id
	r.hasOutput = n.Valid && n.Int64 == 1
	r.initialized = true

	if obs, ok := cat.(initObserver); ok {
		obs.Initialized(r)
	}
	return nil
}

// Value builds the composite for binding as a call argument.
func (r *Reporter) Value(ctx context.Context, cat Catalog) (*wire.Object, error) {
	desc, err := cat.Resolve(ctx, r.typeName)
	if err != nil {
		return nil, err
	}
	return wire.NewObject(desc, r.attrs)
}

// TypeName returns the sanitized type name.
func (r *Reporter) TypeName() string {
	return r.typeName
}

// ID returns the reporter identifier, empty until attributes are set.
func (r *Reporter) ID() string {
	return r.id
}

// HasOutput reports whether the database said the reporter produces output.
func (r *Reporter) HasOutput() bool {
	return r.hasOutput
}

// IsInit reports whether Init has completed.
func (r *Reporter) IsInit() bool {
	return r.initialized
}

// Attributes returns a copy of the attribute vector.
func (r *Reporter) Attributes() wire.Attributes {
	return r.attrs.Clone()
}

// InitAll initializes objects in order and stops at the first failure.
func InitAll(ctx context.Context, cat Catalog, objects ...Object) error {
	for _, o := range objects {
		if err := o.Init(ctx, cat); err != nil {
			return fmt.Errorf("init %s: %w", o.TypeName(), err)
		}
	}
	return nil
}

// Compile-time interface satisfaction check.
var _ Object = (*Reporter)(nil)
