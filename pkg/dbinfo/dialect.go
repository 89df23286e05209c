package dbinfo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	go_ora "github.com/sijms/go-ora/v2"
)

// outSize is the buffer size reserved for output binds.
const outSize = 4000

// Dialect holds the call text used to reach the framework in one database
// family.
type Dialect struct {
	// Name identifies the dialect ("oracle", "generic").
	Name string

	// VersionQuery returns the framework version as text.
	VersionQuery string

	// CompatibilityCheckQuery binds (requested, current) and returns an
	// integer, 1 meaning compatible.
	CompatibilityCheckQuery string

	// Out wraps a destination as an output bind. When set, VersionQuery and
	// CompatibilityCheckQuery are blocks assigning the result to the first
	// placeholder and the inputs follow it. When nil they are selects
	// returning one column.
	Out func(dest any) any

	// ConstructorQuery is a fmt pattern taking the type name. It returns
	// one encoded composite column. Empty when the dialect cannot carry
	// framework objects.
	ConstructorQuery string

	// HasOutputQuery is a fmt pattern taking the type name. It binds the
	// encoded object and returns one integer column.
	HasOutputQuery string

	// TypeAttributesQuery binds the upper-cased type name and returns the
	// attribute names in declaration order.
	TypeAttributesQuery string

	// Classify extracts an error code from a driver error.
	Classify func(err error) (int, bool)
}

var oraCode = regexp.MustCompile(`ORA-(\d{5})`)

func classifyOracle(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	m := oraCode.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, false
	}
	code, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0, false
	}
	return code, true
}

func classifyGeneric(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	if strings.Contains(strings.ToLower(err.Error()), "no such function") {
		return CodeMissingRoutine, true
	}
	return classifyOracle(err)
}

func oracleOut(dest any) any {
	return go_ora.Out{Dest: dest, Size: outSize}
}

// OracleDialect returns the dialect for an Oracle database. Routines are
// called from PL/SQL blocks, so a missing package or function surfaces as
// ORA-06550 (PLS-00201) rather than ORA-00904.
//
// Reporter objects are not carried: their layout is only known to the
// database and has no driver-level mapping here.
func OracleDialect() Dialect {
	return Dialect{
		Name:                    "oracle",
		VersionQuery:            "BEGIN :1 := ut_runner.version(); END;",
		CompatibilityCheckQuery: "BEGIN :1 := ut_runner.version_compatibility_check(:2, :3); END;",
		Out:                     oracleOut,
		Classify:                classifyOracle,
	}
}

// GenericDialect returns the dialect for databases that expose the
// framework as plain functions with underscore names, such as SQLite.
// A "no such function" failure is reported as CodeMissingRoutine.
func GenericDialect() Dialect {
	return Dialect{
		Name:                    "generic",
		VersionQuery:            "SELECT ut_runner_version()",
		CompatibilityCheckQuery: "SELECT ut_runner_version_compatibility_check(?, ?)",
		ConstructorQuery:        "SELECT %s()",
		HasOutputQuery:          "SELECT %s_has_output(?)",
		TypeAttributesQuery:     "SELECT attr_name FROM ut_type_attrs WHERE type_name = ? ORDER BY attr_no",
		Classify:                classifyGeneric,
	}
}

// DialectByName returns a preset dialect.
func DialectByName(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "oracle", "":
		return OracleDialect(), nil
	case "generic", "sqlite", "sqlite3":
		return GenericDialect(), nil
	default:
		return Dialect{}, fmt.Errorf("%w: %q (valid: oracle, generic)", ErrUnknownDialect, name)
	}
}

// Validate checks that the handshake queries are set and that the object
// queries are either all set or all empty.
func (d Dialect) Validate() error {
	switch {
	case d.VersionQuery == "":
		return fmt.Errorf("%w: %s: no version query", ErrInvalidDialect, d.Name)
	case d.CompatibilityCheckQuery == "":
		return fmt.Errorf("%w: %s: no compatibility check query", ErrInvalidDialect, d.Name)
	}
	if d.ConstructorQuery == "" && d.HasOutputQuery == "" && d.TypeAttributesQuery == "" {
		return nil
	}
	switch {
	case d.ConstructorQuery == "":
		return fmt.Errorf("%w: %s: no constructor query", ErrInvalidDialect, d.Name)
	case d.HasOutputQuery == "":
		return fmt.Errorf("%w: %s: no has_output query", ErrInvalidDialect, d.Name)
	case d.TypeAttributesQuery == "":
		return fmt.Errorf("%w: %s: no type attributes query", ErrInvalidDialect, d.Name)
	}
	return nil
}

// SupportsObjects reports whether framework objects can be constructed and
// bound through this dialect.
func (d Dialect) SupportsObjects() bool {
	return d.ConstructorQuery != "" && d.HasOutputQuery != "" && d.TypeAttributesQuery != ""
}

// Constructor returns the constructor call for a sanitized type name.
func (d Dialect) Constructor(typeName string) string {
	return fmt.Sprintf(d.ConstructorQuery, typeName)
}

// HasOutput returns the has_output call for a sanitized type name.
func (d Dialect) HasOutput(typeName string) string {
	return fmt.Sprintf(d.HasOutputQuery, typeName)
}

func (d Dialect) classify(err error) int {
	if d.Classify == nil {
		return 0
	}
	code, ok := d.Classify(err)
	if !ok {
		return 0
	}
	return code
}
