package utplsql_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/utplsql/utplsql-go/internal/fakedb"
	"github.com/utplsql/utplsql-go/pkg/compat"
	"github.com/utplsql/utplsql-go/pkg/dbinfo"
	"github.com/utplsql/utplsql-go/pkg/features"
	"github.com/utplsql/utplsql-go/pkg/log"
	"github.com/utplsql/utplsql-go/pkg/provider"
	"github.com/utplsql/utplsql-go/pkg/reporter"
	"github.com/utplsql/utplsql-go/pkg/wire"
)

// runOptions stands in for a version-dependent call builder.
type runOptions struct {
	randomOrder bool
	tags        bool
}

func optionsRegistry() *provider.Registry[runOptions] {
	r := provider.NewRegistry[runOptions]("run options")
	r.MustRegister("3.0.0", runOptions{})
	r.MustRegister("3.1.0", runOptions{randomOrder: true, tags: true})
	return r
}

// readEvents decodes every event written to buf.
func readEvents(t *testing.T, buf *bytes.Buffer) []log.Event {
	t.Helper()
	r := log.NewStreamReader(bytes.NewReader(buf.Bytes()), log.Filter{})
	var events []log.Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("read event: %v", err)
		}
		events = append(events, event)
	}
}

// TestE2E_SessionSetup negotiates with a current framework, selects a call
// builder, initializes reporters and binds one as a call argument.
func TestE2E_SessionSetup(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fw := fakedb.New(t, fakedb.Config{
		Version: "3.1.11.3557",
		Compat:  fakedb.Compatible(1),
		Reporters: []fakedb.ReporterType{
			{Name: reporter.TypeDocumentation, HasOutput: int64(1)},
			{Name: reporter.TypeCoverageHTML, HasOutput: int64(0)},
		},
	})

	var buf bytes.Buffer
	events := log.NewStreamLogger(&buf)
	dialect := dbinfo.GenericDialect()

	cfg := compat.DefaultConfig()
	cfg.Gateway = dbinfo.NewSQLGateway(dialect, events)
	cfg.EventLogger = events

	n, err := compat.NewNegotiator(ctx, fw.DB, cfg)
	if err != nil {
		t.Fatalf("NewNegotiator failed: %v", err)
	}
	if err := n.FailOnNotCompatible(); err != nil {
		t.Fatalf("expected compatible framework: %v", err)
	}

	opts, err := compat.Select(n, optionsRegistry())
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if !opts.randomOrder || !opts.tags {
		t.Errorf("expected 3.1 call builder, got %+v", opts)
	}

	if ok, _ := features.Tags.IsAvailableFor(n.DatabaseVersion()); !ok {
		t.Error("TAGS should be available for 3.1.11")
	}

	cat, err := reporter.NewSQLCatalog(fw.DB, dialect, events)
	if err != nil {
		t.Fatalf("NewSQLCatalog failed: %v", err)
	}
	doc := reporter.NewDocumentation()
	html := reporter.NewCoverageHTML()
	if err := reporter.InitAll(ctx, cat, doc, html); err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	if !doc.HasOutput() {
		t.Error("documentation reporter should have output")
	}
	if html.HasOutput() {
		t.Error("coverage html reporter should not have output")
	}
	if got, want := []string{doc.ID(), html.ID()}, fw.IssuedIDs(); got[0] != want[0] || got[1] != want[1] {
		t.Errorf("reporter ids = %v, want %v", got, want)
	}

	obj, err := doc.Value(ctx, cat)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	data, err := wire.EncodeObject(obj)
	if err != nil {
		t.Fatalf("EncodeObject failed: %v", err)
	}
	decoded, err := wire.DecodeObject(data)
	if err != nil {
		t.Fatalf("DecodeObject failed: %v", err)
	}
	id, err := decoded.Attributes.Text(1)
	if err != nil || id != doc.ID() {
		t.Errorf("bound id = %q (%v), want %q", id, err, doc.ID())
	}

	if err := events.Close(); err != nil {
		t.Fatalf("close event log: %v", err)
	}
	logged := readEvents(t, &buf)

	sessions := make(map[string]bool)
	counts := make(map[log.Category]int)
	for _, e := range logged {
		sessions[e.SessionID] = true
		counts[e.Category]++
	}
	if counts[log.CategoryHandshake] != 1 {
		t.Errorf("handshake events = %d, want 1", counts[log.CategoryHandshake])
	}
	if counts[log.CategoryObject] != 6 {
		t.Errorf("object events = %d, want 6", counts[log.CategoryObject])
	}
	if counts[log.CategoryError] != 0 {
		t.Errorf("error events = %d, want 0", counts[log.CategoryError])
	}
	// Gateway and catalog each run their own session.
	if len(sessions) != 2 {
		t.Errorf("sessions = %d, want 2", len(sessions))
	}
}

// TestE2E_LegacyFramework covers a framework that predates the
// compatibility routine.
func TestE2E_LegacyFramework(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fw := fakedb.New(t, fakedb.Config{Version: "2.3.1.1661"})

	cfg := compat.DefaultConfig()
	cfg.Gateway = dbinfo.NewSQLGateway(dbinfo.GenericDialect(), nil)

	n, err := compat.NewNegotiator(ctx, fw.DB, cfg)
	if err != nil {
		t.Fatalf("NewNegotiator failed: %v", err)
	}
	if n.IsCompatible() {
		t.Error("2.3 framework should not be compatible")
	}
	if n.Method() != log.MethodFallback {
		t.Errorf("method = %s, want FALLBACK", n.Method())
	}
	if fw.Calls(fakedb.FuncCompatibilityCheck) != 0 {
		t.Error("compatibility routine should not be called")
	}

	if _, err := compat.Select(n, optionsRegistry()); err == nil {
		t.Error("expected no call builder for 2.3")
	}

	available, err := features.Available(n.DatabaseVersion())
	if err != nil {
		t.Fatalf("Available failed: %v", err)
	}
	if len(available) != 0 {
		t.Errorf("expected no features, got %v", available)
	}
}

// TestE2E_SkippedHandshake never touches the database.
func TestE2E_SkippedHandshake(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	fw := fakedb.New(t, fakedb.Config{Version: "1.0.0"})

	cfg := compat.DefaultConfig()
	cfg.Mode = compat.ModeSkip
	cfg.Gateway = dbinfo.NewSQLGateway(dbinfo.GenericDialect(), nil)

	n, err := compat.NewNegotiator(context.Background(), fw.DB, cfg)
	if err != nil {
		t.Fatalf("NewNegotiator failed: %v", err)
	}
	if !n.IsCompatible() {
		t.Error("skipped handshake should be compatible")
	}
	if fw.Calls(fakedb.FuncVersion) != 0 {
		t.Error("framework version should not be queried")
	}

	opts, err := compat.Select(n, optionsRegistry())
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if !opts.tags {
		t.Error("skipped handshake should select the current call builder")
	}
}
