// Package features gates optional framework capabilities by version.
//
// Each Feature names a capability of the remote framework and the first
// framework version that provides it. The table is embedded as YAML and
// loaded once per process; it is read-only afterwards and safe for
// concurrent use.
//
// # Usage
//
//	ok, err := features.FrameworkCompatibilityCheck.IsAvailableFor(remote)
//	if err != nil {
//		// remote has no major component
//	}
//
// Ordering follows version.Version.Compare through all four components, so
// thresholds at bugfix or build level are honored. A version without a major
// component cannot be gated and yields version.ErrUnsetMajor.
package features
