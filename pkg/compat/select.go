package compat

import (
	"github.com/utplsql/utplsql-go/pkg/provider"
)

// Select picks the implementation registered for the negotiated framework
// version.
func Select[T any](n *Negotiator, registry *provider.Registry[T]) (T, error) {
	return registry.Select(n.DatabaseVersion())
}
