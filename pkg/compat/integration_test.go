package compat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utplsql/utplsql-go/internal/fakedb"
	"github.com/utplsql/utplsql-go/internal/testutil"
	"github.com/utplsql/utplsql-go/pkg/compat"
	"github.com/utplsql/utplsql-go/pkg/dbinfo"
	"github.com/utplsql/utplsql-go/pkg/log"
	"github.com/utplsql/utplsql-go/pkg/provider"
)

func sqliteConfig() compat.Config {
	cfg := compat.DefaultConfig()
	cfg.Gateway = dbinfo.NewSQLGateway(dbinfo.GenericDialect(), nil)
	return cfg
}

func TestHandshakeCompatibleFramework(t *testing.T) {
	fw := fakedb.New(t, fakedb.Config{Version: "3.1.1", Compat: fakedb.Compatible(1)})

	n, err := compat.NewNegotiator(testutil.Context(t, 0), fw.DB, sqliteConfig())
	require.NoError(t, err)
	assert.True(t, n.IsCompatible())
	assert.Equal(t, "3.1.1", n.DatabaseVersion().String())
	assert.NoError(t, n.FailOnNotCompatible())
	assert.Equal(t, 1, fw.Calls(fakedb.FuncVersion))
	assert.Equal(t, 1, fw.Calls(fakedb.FuncCompatibilityCheck))
}

func TestHandshakeFrameworkRejects(t *testing.T) {
	fw := fakedb.New(t, fakedb.Config{Version: "4.0.0", Compat: fakedb.Compatible(0)})

	n, err := compat.NewNegotiator(testutil.Context(t, 0), fw.DB, sqliteConfig())
	require.NoError(t, err)
	assert.False(t, n.IsCompatible())
	assert.ErrorIs(t, n.FailOnNotCompatible(), compat.ErrNotCompatible)
}

func TestHandshakeOldFramework(t *testing.T) {
	fw := fakedb.New(t, fakedb.Config{Version: "2.9.0", Compat: fakedb.Compatible(1)})

	n, err := compat.NewNegotiator(testutil.Context(t, 0), fw.DB, sqliteConfig())
	require.NoError(t, err)
	assert.False(t, n.IsCompatible())
	assert.Equal(t, log.MethodFallback, n.Method())
	assert.Zero(t, fw.Calls(fakedb.FuncCompatibilityCheck))
}

func TestHandshakeMissingRoutine(t *testing.T) {
	fw := fakedb.New(t, fakedb.Config{Version: "3.0.4"})

	n, err := compat.NewNegotiator(testutil.Context(t, 0), fw.DB, sqliteConfig())
	require.NoError(t, err)
	assert.False(t, n.IsCompatible())
	assert.Equal(t, log.MethodMissingRoutine, n.Method())
}

func TestHandshakeRoutineError(t *testing.T) {
	fw := fakedb.New(t, fakedb.Config{Version: "3.1.7", Compat: fakedb.Failing(errors.New("ORA-20001: broken install"))})

	_, err := compat.NewNegotiator(testutil.Context(t, 0), fw.DB, sqliteConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, compat.ErrNotCompatible)
	assert.Contains(t, err.Error(), "Unknown")
	code, ok := dbinfo.CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, 20001, code)
}

func TestHandshakeNullVersion(t *testing.T) {
	fw := fakedb.New(t, fakedb.Config{NullVersion: true, Compat: fakedb.Compatible(1)})

	_, err := compat.NewNegotiator(testutil.Context(t, 0), fw.DB, sqliteConfig())
	assert.ErrorIs(t, err, compat.ErrNotCompatible)
	assert.Zero(t, fw.Calls(fakedb.FuncCompatibilityCheck))
}

func TestHandshakeSkipped(t *testing.T) {
	fw := fakedb.New(t, fakedb.Config{Version: "2.0.0"})
	cfg := sqliteConfig()
	cfg.Mode = compat.ModeSkip

	n, err := compat.NewNegotiator(testutil.Context(t, 0), fw.DB, cfg)
	require.NoError(t, err)
	assert.True(t, n.IsCompatible())
	assert.Equal(t, "3.1.1", n.DatabaseVersion().String())
	assert.Zero(t, fw.Calls(fakedb.FuncVersion))
}

func TestHandshakeCallLogShareSession(t *testing.T) {
	fw := fakedb.New(t, fakedb.Config{Version: "3.1.1", Compat: fakedb.Compatible(1)})
	rec := &recorder{}
	cfg := compat.DefaultConfig()
	cfg.Gateway = dbinfo.NewSQLGateway(dbinfo.GenericDialect(), rec)

	_, err := compat.NewNegotiator(testutil.Context(t, 0), fw.DB, cfg)
	require.NoError(t, err)

	require.Len(t, rec.events, 3)
	assert.Equal(t, log.CategoryCall, rec.events[0].Category)
	assert.Equal(t, log.CategoryCall, rec.events[1].Category)
	assert.Equal(t, log.CategoryHandshake, rec.events[2].Category)
	for _, ev := range rec.events {
		assert.Equal(t, rec.events[0].SessionID, ev.SessionID)
	}
}

func TestSelectUsesNegotiatedVersion(t *testing.T) {
	registry := provider.NewRegistry[string]("output buffer")
	registry.MustRegister("3.0.0", "legacy buffer")
	registry.MustRegister("3.1.0", "buffer with fetch size")

	fw := fakedb.New(t, fakedb.Config{Version: "3.0.4.1372", Compat: fakedb.Compatible(1)})
	n, err := compat.NewNegotiator(testutil.Context(t, 0), fw.DB, sqliteConfig())
	require.NoError(t, err)

	got, err := compat.Select(n, registry)
	require.NoError(t, err)
	assert.Equal(t, "legacy buffer", got)

	cfg := sqliteConfig()
	cfg.Mode = compat.ModeSkip
	skipped, err := compat.NewNegotiator(testutil.Context(t, 0), fw.DB, cfg)
	require.NoError(t, err)

	got, err = compat.Select(skipped, registry)
	require.NoError(t, err)
	assert.Equal(t, "buffer with fetch size", got)
}

type recorder struct {
	events []log.Event
}

func (r *recorder) Log(e log.Event) { r.events = append(r.events, e) }
