package dbinfo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/utplsql/utplsql-go/pkg/log"
)

// Querier is the connection handle used for remote calls. It is satisfied
// by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Executor runs remote routines for one session. Failures are returned as
// *Error and every call is recorded in the event log.
type Executor struct {
	dialect   Dialect
	events    log.Logger
	sessionID string
}

// NewExecutor creates an executor with a fresh session ID. A nil event
// logger disables the call log.
func NewExecutor(dialect Dialect, events log.Logger) *Executor {
	return &Executor{
		dialect:   dialect,
		events:    log.OrNoop(events),
		sessionID: uuid.NewString(),
	}
}

// Dialect returns the executor's dialect.
func (e *Executor) Dialect() Dialect {
	return e.dialect
}

// SessionID returns the session ID stamped on every event.
func (e *Executor) SessionID() string {
	return e.sessionID
}

// Call runs a routine returning one value into dest. With an output-bind
// dialect the query is executed with dest bound ahead of args; otherwise
// it is selected and scanned.
func (e *Executor) Call(ctx context.Context, conn Querier, routine, query string, dest any, args ...any) error {
	start := time.Now()
	var err error
	if e.dialect.Out != nil {
		binds := make([]any, 0, len(args)+1)
		binds = append(binds, e.dialect.Out(dest))
		binds = append(binds, args...)
		_, err = conn.ExecContext(ctx, query, binds...)
	} else {
		err = conn.QueryRowContext(ctx, query, args...).Scan(dest)
	}
	return e.finish(routine, len(args), start, err)
}

// QueryRow runs a single-row routine and scans it into dest.
// sql.ErrNoRows is returned as is.
func (e *Executor) QueryRow(ctx context.Context, conn Querier, routine, query string, dest []any, args ...any) error {
	start := time.Now()
	err := conn.QueryRowContext(ctx, query, args...).Scan(dest...)
	return e.finish(routine, len(args), start, err)
}

// QueryStrings runs a routine returning one text column and collects it.
func (e *Executor) QueryStrings(ctx context.Context, conn Querier, routine, query string, args ...any) ([]string, error) {
	start := time.Now()
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, e.finish(routine, len(args), start, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, e.finish(routine, len(args), start, err)
		}
		out = append(out, s)
	}
	return out, e.finish(routine, len(args), start, rows.Err())
}

// Emit stamps an event with the session ID and the current time and logs it.
func (e *Executor) Emit(event log.Event) {
	event.SessionID = e.sessionID
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	e.events.Log(event)
}

func (e *Executor) finish(routine string, args int, start time.Time, err error) error {
	call := &log.CallEvent{
		Routine:  routine,
		Args:     args,
		Duration: time.Since(start),
		Failed:   err != nil && !errors.Is(err, sql.ErrNoRows),
	}

	var annotated error
	if call.Failed {
		dbErr := &Error{Routine: routine, Code: e.dialect.classify(err), Err: err}
		if dbErr.Code != 0 {
			code := dbErr.Code
			call.Code = &code
		}
		annotated = dbErr
	} else {
		annotated = err
	}

	e.Emit(log.Event{Timestamp: start, Category: log.CategoryCall, Call: call})
	return annotated
}
