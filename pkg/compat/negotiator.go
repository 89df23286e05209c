package compat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utplsql/utplsql-go/pkg/dbinfo"
	"github.com/utplsql/utplsql-go/pkg/features"
	"github.com/utplsql/utplsql-go/pkg/log"
	"github.com/utplsql/utplsql-go/pkg/version"
)

// unknownRemote is reported when the compatibility routine itself fails.
const unknownRemote = "Unknown"

// Negotiator holds the outcome of the handshake with one database.
// It is immutable once NewNegotiator returns.
type Negotiator struct {
	requested  version.Version
	remote     version.Version
	compatible bool
	method     log.HandshakeMethod
}

type eventSource interface {
	Executor() *dbinfo.Executor
}

// NewNegotiator performs the handshake over conn.
//
// Errors reading the framework version are returned unchanged. A missing
// or malformed version, or a failing compatibility routine, is reported as
// *NotCompatibleError. An incompatible verdict is not an error; see
// FailOnNotCompatible.
func NewNegotiator(ctx context.Context, conn dbinfo.Querier, cfg Config) (*Negotiator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gw := cfg.Gateway
	if gw == nil {
		gw = dbinfo.NewSQLGateway(dbinfo.OracleDialect(), cfg.EventLogger)
	}

	// Handshake events share the gateway's session when it has one.
	var exec *dbinfo.Executor
	if src, ok := gw.(eventSource); ok {
		exec = src.Executor()
	} else {
		exec = dbinfo.NewExecutor(dbinfo.Dialect{}, cfg.EventLogger)
	}

	h := &handshake{
		gw:     gw,
		conn:   conn,
		logger: cfg.Logger,
		n:      &Negotiator{requested: version.Parse(version.ClientCompatibility)},
	}

	var err error
	if cfg.Mode == ModeSkip {
		h.skip()
	} else {
		err = h.negotiate(ctx)
	}

	if err != nil {
		exec.Emit(log.Event{
			Category: log.CategoryError,
			Error:    &log.ErrorEventData{Message: err.Error(), Context: "handshake"},
		})
		return nil, err
	}

	n := h.n
	exec.Emit(log.Event{
		Category: log.CategoryHandshake,
		Handshake: &log.HandshakeEvent{
			Requested:  n.requested.String(),
			Remote:     n.remote.String(),
			Method:     n.method,
			Compatible: n.compatible,
		},
	})
	h.debugLog("handshake complete",
		"requested", n.requested.String(),
		"remote", n.remote.String(),
		"method", n.method.String(),
		"compatible", n.compatible)
	return n, nil
}

type handshake struct {
	gw     dbinfo.Gateway
	conn   dbinfo.Querier
	logger *slog.Logger
	n      *Negotiator
}

func (h *handshake) debugLog(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Debug(msg, args...)
	}
}

func (h *handshake) skip() {
	h.n.remote = version.Parse(version.API)
	h.n.compatible = true
	h.n.method = log.MethodSkipped
	h.debugLog("compatibility check skipped", "assumed", version.API)
}

func (h *handshake) negotiate(ctx context.Context) error {
	n := h.n

	remote, err := h.gw.FrameworkVersion(ctx, h.conn)
	if err != nil {
		return err
	}
	if remote == nil {
		return &NotCompatibleError{Reason: "could not get framework version", Requested: n.requested}
	}
	n.remote = *remote

	available, err := features.FrameworkCompatibilityCheck.IsAvailableFor(*remote)
	if err != nil {
		return &NotCompatibleError{
			Reason:    fmt.Sprintf("illegal framework version %q", remote.String()),
			Requested: n.requested,
			Remote:    remote,
			Err:       err,
		}
	}

	if !available {
		n.method = log.MethodFallback
		n.compatible = fallbackCompatible(n.requested, *remote)
		h.debugLog("framework predates compatibility routine", "remote", remote.String())
		return nil
	}

	result, err := h.gw.CompatibilityCheck(ctx, h.conn, version.ClientCompatibility, nil)
	if err != nil {
		if dbinfo.IsMissingRoutine(err) {
			n.method = log.MethodMissingRoutine
			n.compatible = false
			h.debugLog("compatibility routine missing", "remote", remote.String())
			return nil
		}
		unknown := version.Parse(unknownRemote)
		return &NotCompatibleError{
			Reason:    "compatibility check failed",
			Requested: n.requested,
			Remote:    &unknown,
			Err:       err,
		}
	}

	n.method = log.MethodRoutine
	n.compatible = result == 1
	return nil
}

// fallbackCompatible applies the rule used before the framework offered its
// own check: majors must match, and minors too when one was requested. A
// remote without a minor does not match a requested minor.
func fallbackCompatible(requested, remote version.Version) bool {
	reqMajor, _ := requested.Major()
	remMajor, _ := remote.Major()
	if reqMajor != remMajor {
		return false
	}
	reqMinor, ok := requested.Minor()
	if !ok {
		return true
	}
	remMinor, ok := remote.Minor()
	return ok && reqMinor == remMinor
}

// IsCompatible returns the verdict.
func (n *Negotiator) IsCompatible() bool {
	return n.compatible
}

// DatabaseVersion returns the negotiated framework version. In ModeSkip this
// is the client API version.
func (n *Negotiator) DatabaseVersion() version.Version {
	return n.remote
}

// RequestedVersion returns the version the client asked for.
func (n *Negotiator) RequestedVersion() version.Version {
	return n.requested
}

// Method tells how the verdict was reached.
func (n *Negotiator) Method() log.HandshakeMethod {
	return n.method
}

// FailOnNotCompatible returns a *NotCompatibleError when the verdict is
// negative.
func (n *Negotiator) FailOnNotCompatible() error {
	if n.compatible {
		return nil
	}
	remote := n.remote
	return &NotCompatibleError{
		Reason:    "framework rejected the requested version",
		Requested: n.requested,
		Remote:    &remote,
	}
}
