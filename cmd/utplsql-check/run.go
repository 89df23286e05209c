package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/sijms/go-ora/v2"

	"github.com/utplsql/utplsql-go/internal/fakedb"
	"github.com/utplsql/utplsql-go/pkg/compat"
	"github.com/utplsql/utplsql-go/pkg/dbinfo"
	"github.com/utplsql/utplsql-go/pkg/features"
	"github.com/utplsql/utplsql-go/pkg/log"
	"github.com/utplsql/utplsql-go/pkg/reporter"
	"github.com/utplsql/utplsql-go/pkg/version"
)

// Exit codes.
const (
	exitCompatible    = 0
	exitError         = 1
	exitNotCompatible = 2
)

func parseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", level)
	}
	return l, nil
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	l, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// openDatabase opens the configured database. The returned cleanup closes it.
func openDatabase(cfg Config) (*sql.DB, func(), error) {
	switch cfg.Driver {
	case DriverFake:
		types := make([]fakedb.ReporterType, 0, len(reporter.Known()))
		for _, name := range reporter.Known() {
			types = append(types, fakedb.ReporterType{Name: name, HasOutput: int64(1)})
		}
		fw, err := fakedb.Open(fakedb.Config{
			Version:   cfg.FakeVersion,
			Compat:    fakedb.Compatible(1),
			Reporters: types,
		})
		if err != nil {
			return nil, nil, err
		}
		return fw.DB, func() { fw.Close() }, nil
	default:
		db, err := sql.Open(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	}
}

// run performs the check and returns the exit code.
func run(ctx context.Context, cfg Config, stdout io.Writer, logger *slog.Logger) int {
	dialect, err := dbinfo.DialectByName(cfg.Dialect)
	if err != nil {
		logger.Error("invalid dialect", "error", err)
		return exitError
	}

	sinks := []log.Logger{log.NewSlogAdapter(logger)}
	if cfg.EventLog != "" {
		fl, err := log.NewFileLogger(cfg.EventLog)
		if err != nil {
			logger.Error("failed to open event log", "path", cfg.EventLog, "error", err)
			return exitError
		}
		defer fl.Close()
		sinks = append(sinks, fl)
	}
	events := log.NewMultiLogger(sinks...)

	db, closeDB, err := openDatabase(cfg)
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.Driver, "error", err)
		return exitError
	}
	defer closeDB()

	ncfg := compat.DefaultConfig()
	if cfg.SkipCompatCheck {
		ncfg.Mode = compat.ModeSkip
	}
	ncfg.Gateway = dbinfo.NewSQLGateway(dialect, events)
	ncfg.Logger = logger
	ncfg.EventLogger = events

	n, err := compat.NewNegotiator(ctx, db, ncfg)
	if err != nil {
		fmt.Fprintf(stdout, "Compatible: no\nReason: %v\n", err)
		if errors.Is(err, compat.ErrNotCompatible) {
			return exitNotCompatible
		}
		return exitError
	}

	printVerdict(stdout, n)
	if err := n.FailOnNotCompatible(); err != nil {
		logger.Warn("framework not compatible", "error", err)
		return exitNotCompatible
	}

	if len(cfg.Reporters) == 0 {
		return exitCompatible
	}

	cat, err := reporter.NewSQLCatalog(db, dialect, events)
	if err != nil {
		logger.Error("cannot initialize reporters", "dialect", dialect.Name, "error", err)
		return exitError
	}
	reporters := make([]*reporter.Reporter, 0, len(cfg.Reporters))
	objects := make([]reporter.Object, 0, len(cfg.Reporters))
	for _, name := range cfg.Reporters {
		r, err := reporter.New(strings.ToUpper(name), nil)
		if err != nil {
			logger.Error("invalid reporter", "name", name, "error", err)
			return exitError
		}
		reporters = append(reporters, r)
		objects = append(objects, r)
	}

	initErr := reporter.InitAll(ctx, cat, objects...)
	fmt.Fprintln(stdout, "Reporters:")
	for _, r := range reporters {
		if !r.IsInit() {
			fmt.Fprintf(stdout, "  %s: not initialized\n", r.TypeName())
			continue
		}
		fmt.Fprintf(stdout, "  %s: id=%s has_output=%t\n", r.TypeName(), r.ID(), r.HasOutput())
	}
	if initErr != nil {
		logger.Error("reporter initialization failed", "error", initErr)
		return exitError
	}
	return exitCompatible
}

func printVerdict(w io.Writer, n *compat.Negotiator) {
	verdict := "yes"
	if !n.IsCompatible() {
		verdict = "no"
	}
	fmt.Fprintf(w, "Client API: %s (requested %s)\n", version.API, n.RequestedVersion())
	fmt.Fprintf(w, "Framework: %s\n", n.DatabaseVersion())
	fmt.Fprintf(w, "Method: %s\n", n.Method())
	fmt.Fprintf(w, "Compatible: %s\n", verdict)

	available, err := features.Available(n.DatabaseVersion())
	if err != nil {
		return
	}
	if len(available) == 0 {
		fmt.Fprintln(w, "Features: none")
		return
	}
	fmt.Fprintf(w, "Features: %s\n", strings.Join(available, ", "))
}
