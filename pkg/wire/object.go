package wire

import (
	"database/sql"
	"database/sql/driver"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Attribute access errors.
var (
	// ErrMissingAttribute is returned when a position is beyond the vector.
	ErrMissingAttribute = errors.New("attribute missing")

	// ErrNullAttribute is returned when a position holds NULL.
	ErrNullAttribute = errors.New("attribute is null")

	// ErrArityMismatch is returned when an attribute vector does not match
	// the number of attributes declared by its type.
	ErrArityMismatch = errors.New("attribute count does not match type")
)

// Attributes is an ordered vector of server-typed values.
// Values are whatever the driver or decoder produced; nil means NULL.
type Attributes []any

// Clone returns a copy of the vector. Element values are shared.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// At returns the value at position i.
func (a Attributes) At(i int) (any, error) {
	if i < 0 || i >= len(a) {
		return nil, fmt.Errorf("%w: position %d of %d", ErrMissingAttribute, i, len(a))
	}
	return a[i], nil
}

// Text returns the value at position i rendered as a string. Byte values
// (RAW columns) are rendered as upper-case hex.
func (a Attributes) Text(i int) (string, error) {
	v, err := a.At(i)
	if err != nil {
		return "", err
	}
	switch val := v.(type) {
	case nil:
		return "", fmt.Errorf("%w: position %d", ErrNullAttribute, i)
	case string:
		return val, nil
	case []byte:
		return strings.ToUpper(hex.EncodeToString(val)), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return fmt.Sprint(val), nil
	}
}

// TypeDescriptor describes a remote composite type as listed in the
// database catalog.
type TypeDescriptor struct {
	// Name is the catalog type name.
	Name string `cbor:"1,keyasint"`

	// Attributes lists attribute names in declaration order. Empty means
	// the catalog did not report a layout and arity is not checked.
	Attributes []string `cbor:"2,keyasint,omitempty"`
}

// Object is a composite value of a remote type.
type Object struct {
	// TypeName is the remote type name.
	TypeName string `cbor:"1,keyasint"`

	// Attributes is the attribute vector in declaration order.
	Attributes Attributes `cbor:"2,keyasint"`
}

// NewObject builds an object of the described type. The attribute vector is
// copied and checked against the declared layout when one is known.
func NewObject(desc TypeDescriptor, attrs Attributes) (*Object, error) {
	if desc.Name == "" {
		return nil, errors.New("type descriptor has no name")
	}
	if len(desc.Attributes) > 0 && len(desc.Attributes) != len(attrs) {
		return nil, fmt.Errorf("%w: %s declares %d, got %d",
			ErrArityMismatch, desc.Name, len(desc.Attributes), len(attrs))
	}
	return &Object{TypeName: desc.Name, Attributes: attrs.Clone()}, nil
}

// Validate checks the object carries a type name.
func (o *Object) Validate() error {
	if o.TypeName == "" {
		return errors.New("object has no type name")
	}
	return nil
}

// Value encodes the object for use as a query argument.
func (o Object) Value() (driver.Value, error) {
	return EncodeObject(&o)
}

// Scan decodes an object from a result column.
func (o *Object) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		return errors.New("cannot scan NULL into wire.Object")
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into wire.Object", src)
	}

	decoded, err := DecodeObject(data)
	if err != nil {
		return err
	}
	*o = *decoded
	return nil
}

// Compile-time interface satisfaction checks.
var (
	_ driver.Valuer = Object{}
	_ sql.Scanner   = (*Object)(nil)
)
