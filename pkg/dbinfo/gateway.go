package dbinfo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/utplsql/utplsql-go/pkg/log"
	"github.com/utplsql/utplsql-go/pkg/version"
)

// Remote routine names, as recorded in the call log.
const (
	RoutineVersion            = "ut_runner.version"
	RoutineCompatibilityCheck = "ut_runner.version_compatibility_check"
)

// Gateway reads framework information from the database.
type Gateway interface {
	// FrameworkVersion returns the installed framework version, or nil when
	// the database returned no value.
	FrameworkVersion(ctx context.Context, conn Querier) (*version.Version, error)

	// CompatibilityCheck asks the framework whether the requested version is
	// compatible. current may be nil. The result is 1 when compatible.
	CompatibilityCheck(ctx context.Context, conn Querier, requested string, current *string) (int, error)
}

// SQLGateway implements Gateway over database/sql.
type SQLGateway struct {
	exec *Executor
}

// NewSQLGateway creates a gateway using the given dialect.
func NewSQLGateway(dialect Dialect, events log.Logger) *SQLGateway {
	return &SQLGateway{exec: NewExecutor(dialect, events)}
}

// Executor returns the executor backing the gateway.
func (g *SQLGateway) Executor() *Executor {
	return g.exec
}

// FrameworkVersion implements Gateway.
func (g *SQLGateway) FrameworkVersion(ctx context.Context, conn Querier) (*version.Version, error) {
	var raw sql.NullString
	err := g.exec.Call(ctx, conn, RoutineVersion, g.exec.dialect.VersionQuery, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !raw.Valid {
		return nil, nil
	}
	v := version.Parse(raw.String)
	return &v, nil
}

// CompatibilityCheck implements Gateway. A NULL result counts as 0.
func (g *SQLGateway) CompatibilityCheck(ctx context.Context, conn Querier, requested string, current *string) (int, error) {
	var cur any
	if current != nil {
		cur = *current
	}

	var result sql.NullInt64
	err := g.exec.Call(ctx, conn, RoutineCompatibilityCheck, g.exec.dialect.CompatibilityCheckQuery,
		&result, requested, cur)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if !result.Valid {
		return 0, nil
	}
	return int(result.Int64), nil
}

// Compile-time interface satisfaction check.
var _ Gateway = (*SQLGateway)(nil)
