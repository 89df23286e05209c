package compat

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/utplsql/utplsql-go/pkg/dbinfo"
	"github.com/utplsql/utplsql-go/pkg/log"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Mode selects how the negotiator reaches its verdict.
type Mode uint8

const (
	// ModeNegotiate asks the database.
	ModeNegotiate Mode = iota

	// ModeSkip assumes the framework matches the client API version and
	// never touches the database.
	ModeSkip
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNegotiate:
		return "negotiate"
	case ModeSkip:
		return "skip"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Config configures a Negotiator.
type Config struct {
	// Mode selects negotiation or skipping. Default: ModeNegotiate.
	Mode Mode

	// Gateway reads framework information. Nil means a SQL gateway with
	// the Oracle dialect.
	Gateway dbinfo.Gateway

	// Logger for operational debug output. Nil disables logging.
	Logger *slog.Logger

	// EventLogger receives the call log. Nil disables it.
	EventLogger log.Logger
}

// DefaultConfig returns a Config that negotiates with an Oracle database.
func DefaultConfig() Config {
	return Config{Mode: ModeNegotiate}
}

// Validate checks if the config is valid.
func (c *Config) Validate() error {
	if c.Mode > ModeSkip {
		return fmt.Errorf("%w: unknown mode %s", ErrInvalidConfig, c.Mode)
	}
	return nil
}
