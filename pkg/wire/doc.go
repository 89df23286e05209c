// Package wire defines the composite value format exchanged with the
// remote framework.
//
// Framework objects (reporters and similar) are composite values whose
// attribute layout is owned by the database. The client carries them as an
// Object: a type name plus an ordered attribute vector. The vector is never
// interpreted here; callers validate a position only where they read it.
//
// # Encoding
//
// Objects travel as CBOR (RFC 8949) byte strings with integer map keys:
//
//	{1: typeName, 2: [attr0, attr1, ...]}
//
// Object implements driver.Valuer and sql.Scanner, so it can be bound as a
// query argument and scanned from a result column directly.
//
// # Nullable vs Absent
//
// A NULL attribute is encoded as CBOR null and decodes to nil. An attribute
// beyond the end of the vector is absent; the two are reported with
// different errors (ErrNullAttribute, ErrMissingAttribute).
package wire
