// Package dbinfo queries information from the test framework installed in
// a database: its version and its own compatibility verdict.
//
// Calls go through a Dialect, which holds the call text for one database
// family and classifies driver errors into numeric codes. Every call is
// timed and recorded in the call log (pkg/log) when an event logger is set.
package dbinfo
