// Package fakedb emulates the test framework inside an in-memory SQLite
// database. It backs integration tests and the "fake" driver of
// utplsql-check.
//
// The framework's routines are Go functions registered on every
// connection: ut_runner_version(), ut_runner_version_compatibility_check(a, b),
// one constructor per reporter type returning an encoded composite, and
// <type>_has_output(obj). Reporter layouts are listed in the ut_type_attrs
// table. A routine that is not registered fails with "no such function",
// the way a missing package member fails on a real database.
package fakedb

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/utplsql/utplsql-go/pkg/wire"
)

// Routine names as registered in SQLite.
const (
	FuncVersion            = "ut_runner_version"
	FuncCompatibilityCheck = "ut_runner_version_compatibility_check"
)

// DefaultAttributes is the layout given to reporter types that declare none.
var DefaultAttributes = []string{"SELF_TYPE", "REPORTER_ID", "START_DATE", "LINES"}

// ErrDuplicateType is returned when two reporter types share a name.
var ErrDuplicateType = errors.New("duplicate reporter type")

// CompatFunc decides the result of the compatibility check routine. current
// is nil when the caller passed NULL. A nil result is returned as NULL.
type CompatFunc func(requested string, current *string) (any, error)

// ReporterType describes one reporter type known to the fake framework.
type ReporterType struct {
	// Name is the type name, e.g. "UT_COVERALLS_REPORTER".
	Name string

	// Attributes is the attribute layout. Nil means DefaultAttributes.
	Attributes []string

	// HasOutput is returned by <type>_has_output. Nil is returned as NULL.
	HasOutput any

	// ConstructErr makes the constructor fail.
	ConstructErr error

	// HasOutputErr makes <type>_has_output fail.
	HasOutputErr error

	// Unlisted leaves the type out of ut_type_attrs.
	Unlisted bool
}

// Config controls the fake framework.
type Config struct {
	// Version returned by ut_runner_version().
	Version string

	// NullVersion makes ut_runner_version() return NULL.
	NullVersion bool

	// Compat implements the compatibility check. Nil leaves the routine
	// unregistered, as on frameworks that predate it.
	Compat CompatFunc

	// Reporters lists the reporter types.
	Reporters []ReporterType
}

// Compatible returns a CompatFunc that always answers result.
func Compatible(result int64) CompatFunc {
	return func(string, *string) (any, error) {
		return result, nil
	}
}

// Failing returns a CompatFunc that raises err.
func Failing(err error) CompatFunc {
	return func(string, *string) (any, error) {
		return nil, err
	}
}

// Framework is a running fake framework.
type Framework struct {
	// DB is the database handle hosting the framework.
	DB *sql.DB

	cfg   Config
	types map[string]ReporterType

	mu    sync.Mutex
	calls map[string]int
	ids   []string
}

var driverSeq atomic.Int64

// Open starts a fake framework with its own SQLite driver and database.
func Open(cfg Config) (*Framework, error) {
	f := &Framework{
		cfg:   cfg,
		types: make(map[string]ReporterType),
		calls: make(map[string]int),
	}
	for _, rt := range cfg.Reporters {
		key := strings.ToLower(rt.Name)
		if _, exists := f.types[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateType, rt.Name)
		}
		if rt.Attributes == nil {
			rt.Attributes = DefaultAttributes
		}
		f.types[key] = rt
	}

	name := fmt.Sprintf("utplsql_fake_%d", driverSeq.Add(1))
	sql.Register(name, &sqlite3.SQLiteDriver{ConnectHook: f.register})

	db, err := sql.Open(name, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		return nil, err
	}
	// One connection keeps the in-memory database alive and shared.
	db.SetMaxOpenConns(1)
	f.DB = db

	if err := f.createCatalog(); err != nil {
		db.Close()
		return nil, err
	}
	return f, nil
}

// TB is the part of testing.TB used by New.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// New starts a fake framework that is closed when the test ends.
func New(t TB, cfg Config) *Framework {
	t.Helper()
	f, err := Open(cfg)
	if err != nil {
		t.Fatalf("fakedb: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

// Close closes the database.
func (f *Framework) Close() error {
	return f.DB.Close()
}

// Calls returns how often a routine was invoked.
func (f *Framework) Calls(routine string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[strings.ToLower(routine)]
}

// IssuedIDs returns the reporter IDs handed out by constructors, in order.
func (f *Framework) IssuedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.ids))
	copy(out, f.ids)
	return out
}

func (f *Framework) record(routine string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[strings.ToLower(routine)]++
}

func (f *Framework) createCatalog() error {
	if _, err := f.DB.Exec(`CREATE TABLE IF NOT EXISTS ut_type_attrs (
		type_name TEXT NOT NULL,
		attr_no   INTEGER NOT NULL,
		attr_name TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("create ut_type_attrs: %w", err)
	}
	for _, rt := range f.types {
		if rt.Unlisted {
			continue
		}
		for i, attr := range rt.Attributes {
			if _, err := f.DB.Exec(
				"INSERT INTO ut_type_attrs (type_name, attr_no, attr_name) VALUES (?, ?, ?)",
				strings.ToUpper(rt.Name), i+1, attr); err != nil {
				return fmt.Errorf("list %s: %w", rt.Name, err)
			}
		}
	}
	return nil
}

func (f *Framework) register(conn *sqlite3.SQLiteConn) error {
	if err := conn.RegisterFunc(FuncVersion, f.version, false); err != nil {
		return err
	}
	if f.cfg.Compat != nil {
		if err := conn.RegisterFunc(FuncCompatibilityCheck, f.compatibilityCheck, false); err != nil {
			return err
		}
	}
	for key, rt := range f.types {
		if err := conn.RegisterFunc(key, func() ([]byte, error) {
			return f.construct(rt)
		}, false); err != nil {
			return err
		}
		if err := conn.RegisterFunc(key+"_has_output", func(obj any) (any, error) {
			return f.hasOutput(rt, obj)
		}, false); err != nil {
			return err
		}
	}
	return nil
}

func (f *Framework) version() any {
	f.record(FuncVersion)
	if f.cfg.NullVersion {
		return nil
	}
	return f.cfg.Version
}

func (f *Framework) compatibilityCheck(requested, current any) (any, error) {
	f.record(FuncCompatibilityCheck)
	req, _ := requested.(string)
	var cur *string
	if s, ok := current.(string); ok {
		cur = &s
	}
	return f.cfg.Compat(req, cur)
}

func (f *Framework) construct(rt ReporterType) ([]byte, error) {
	f.record(rt.Name)
	if rt.ConstructErr != nil {
		return nil, rt.ConstructErr
	}

	id := uuid.New()
	attrs := make(wire.Attributes, len(rt.Attributes))
	if len(attrs) > 0 {
		attrs[0] = strings.ToUpper(rt.Name)
	}
	if len(attrs) > 1 {
		attrs[1] = id[:]
	}
	if len(attrs) > 2 {
		attrs[2] = time.Now().UTC().Format(time.RFC3339)
	}

	f.mu.Lock()
	f.ids = append(f.ids, strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")))
	f.mu.Unlock()

	return wire.EncodeObject(&wire.Object{TypeName: strings.ToUpper(rt.Name), Attributes: attrs})
}

func (f *Framework) hasOutput(rt ReporterType, obj any) (any, error) {
	f.record(rt.Name + "_has_output")
	if rt.HasOutputErr != nil {
		return nil, rt.HasOutputErr
	}

	data, ok := obj.([]byte)
	if !ok {
		return nil, fmt.Errorf("%s_has_output: expected encoded object, got %T", rt.Name, obj)
	}
	decoded, err := wire.DecodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("%s_has_output: %w", rt.Name, err)
	}
	if !strings.EqualFold(decoded.TypeName, rt.Name) {
		return nil, fmt.Errorf("%s_has_output: object of type %s", rt.Name, decoded.TypeName)
	}
	return rt.HasOutput, nil
}
