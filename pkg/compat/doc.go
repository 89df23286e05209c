// Package compat decides whether this client can work with the test
// framework installed in a database.
//
// A Negotiator is created once per connection. It reads the framework
// version and, when the framework is new enough to offer it, asks the
// framework's own compatibility routine. Older frameworks are judged by
// comparing major and minor versions. The negotiated version is then the
// key used to pick version-specific implementations (see Select).
//
//	n, err := compat.NewNegotiator(ctx, db, compat.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	if err := n.FailOnNotCompatible(); err != nil {
//		return err
//	}
package compat
