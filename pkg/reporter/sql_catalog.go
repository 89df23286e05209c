package reporter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/utplsql/utplsql-go/pkg/dbinfo"
	"github.com/utplsql/utplsql-go/pkg/log"
	"github.com/utplsql/utplsql-go/pkg/wire"
)

// routineTypeAttrs names the catalog lookup in the call log.
const routineTypeAttrs = "type_attrs"

// SQLCatalog implements Catalog over one database connection.
// Type descriptors are cached after the first lookup.
type SQLCatalog struct {
	conn dbinfo.Querier
	exec *dbinfo.Executor

	mu    sync.Mutex
	descs map[string]wire.TypeDescriptor
}

// NewSQLCatalog creates a catalog bound to conn. A nil event logger
// disables the call log. It fails with ErrUnsupportedDialect when the
// dialect cannot carry framework objects.
func NewSQLCatalog(conn dbinfo.Querier, dialect dbinfo.Dialect, events log.Logger) (*SQLCatalog, error) {
	if !dialect.SupportsObjects() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDialect, dialect.Name)
	}
	return &SQLCatalog{
		conn:  conn,
		exec:  dbinfo.NewExecutor(dialect, events),
		descs: make(map[string]wire.TypeDescriptor),
	}, nil
}

// Construct implements Catalog.
func (c *SQLCatalog) Construct(ctx context.Context, typeName string) (wire.Attributes, error) {
	var obj wire.Object
	query := c.exec.Dialect().Constructor(typeName)
	if err := c.exec.QueryRow(ctx, c.conn, typeName, query, []any{&obj}); err != nil {
		return nil, err
	}

	id, _ := obj.Attributes.Text(idPosition)
	c.exec.Emit(log.Event{
		Category: log.CategoryObject,
		Object:   &log.ObjectEvent{TypeName: typeName, ObjectID: id, Stage: log.StageConstructed},
	})
	return obj.Attributes, nil
}

// HasOutput implements Catalog.
func (c *SQLCatalog) HasOutput(ctx context.Context, obj *wire.Object) (sql.NullInt64, error) {
	var n sql.NullInt64
	query := c.exec.Dialect().HasOutput(obj.TypeName)
	if err := c.exec.QueryRow(ctx, c.conn, obj.TypeName+".has_output", query, []any{&n}, obj); err != nil {
		return sql.NullInt64{}, err
	}

	id, _ := obj.Attributes.Text(idPosition)
	c.exec.Emit(log.Event{
		Category: log.CategoryObject,
		Object: &log.ObjectEvent{
			TypeName:  obj.TypeName,
			ObjectID:  id,
			Stage:     log.StageOutputQueried,
			HasOutput: n.Valid && n.Int64 == 1,
		},
	})
	return n, nil
}

// Resolve implements Catalog. Type names are looked up upper-cased.
func (c *SQLCatalog) Resolve(ctx context.Context, typeName string) (wire.TypeDescriptor, error) {
	key := strings.ToUpper(typeName)

	c.mu.Lock()
	desc, ok := c.descs[key]
	c.mu.Unlock()
	if ok {
		return desc, nil
	}

	names, err := c.exec.QueryStrings(ctx, c.conn, routineTypeAttrs, c.exec.Dialect().TypeAttributesQuery, key)
	if err != nil {
		return wire.TypeDescriptor{}, err
	}
	if len(names) == 0 {
		return wire.TypeDescriptor{}, fmt.Errorf("%w: %s", ErrUnknownType, typeName)
	}

	desc = wire.TypeDescriptor{Name: key, Attributes: names}
	c.mu.Lock()
	c.descs[key] = desc
	c.mu.Unlock()
	return desc, nil
}

// Initialized records a completed init in the call log.
func (c *SQLCatalog) Initialized(r *Reporter) {
	c.exec.Emit(log.Event{
		Category: log.CategoryObject,
		Object: &log.ObjectEvent{
			TypeName:  r.TypeName(),
			ObjectID:  r.ID(),
			Stage:     log.StageInitialized,
			HasOutput: r.HasOutput(),
		},
	})
}

// SessionID returns the session ID stamped on the catalog's events.
func (c *SQLCatalog) SessionID() string {
	return c.exec.SessionID()
}

// Compile-time interface satisfaction checks.
var (
	_ Catalog      = (*SQLCatalog)(nil)
	_ initObserver = (*SQLCatalog)(nil)
)
