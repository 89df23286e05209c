// Package reporter proxies the framework's reporter objects.
//
// A reporter is an opaque composite value defined by the framework. The
// client never interprets its attributes except the identifier at position
// 1. Init lets the database construct the object and asks it whether it
// produces output; Value turns it back into a composite the database can
// bind.
package reporter
