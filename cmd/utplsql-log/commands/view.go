// Package commands implements the utplsql-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/utplsql/utplsql-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category   *log.Category
	SessionID  string
	Routine    string
	FailedOnly bool
}

func (f ViewFilter) toLogFilter() log.Filter {
	return log.Filter{
		Category:   f.Category,
		SessionID:  f.SessionID,
		Routine:    f.Routine,
		FailedOnly: f.FailedOnly,
	}
}

// ParseCategoryFlag parses a category flag value.
func ParseCategoryFlag(s string) (log.Category, error) {
	return log.ParseCategory(s)
}

// RunView prints the events of a log file in human-readable form.
func RunView(path string, filter ViewFilter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.toLogFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] %s\n", ts, shortenSessionID(event.SessionID), event.Category)

	switch {
	case event.Call != nil:
		formatCallDetails(w, event.Call)
	case event.Handshake != nil:
		formatHandshakeDetails(w, event.Handshake)
	case event.Object != nil:
		formatObjectDetails(w, event.Object)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatCallDetails(w io.Writer, call *log.CallEvent) {
	fmt.Fprintf(w, "  Routine: %s\n", call.Routine)
	fmt.Fprintf(w, "  Args: %d  Duration: %s\n", call.Args, formatDuration(call.Duration))
	if call.Failed {
		if call.Code != nil {
			fmt.Fprintf(w, "  Failed: code %d\n", *call.Code)
		} else {
			fmt.Fprintln(w, "  Failed")
		}
	}
}

func formatHandshakeDetails(w io.Writer, h *log.HandshakeEvent) {
	verdict := "compatible"
	if !h.Compatible {
		verdict = "NOT compatible"
	}
	fmt.Fprintf(w, "  Requested: %s  Framework: %s\n", h.Requested, h.Remote)
	fmt.Fprintf(w, "  Method: %s  Verdict: %s\n", h.Method, verdict)
}

func formatObjectDetails(w io.Writer, o *log.ObjectEvent) {
	fmt.Fprintf(w, "  Type: %s  Stage: %s\n", o.TypeName, o.Stage)
	if o.ObjectID != "" {
		fmt.Fprintf(w, "  ID: %s\n", o.ObjectID)
	}
	if o.Stage != log.StageConstructed {
		fmt.Fprintf(w, "  HasOutput: %t\n", o.HasOutput)
	}
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	fmt.Fprintf(w, "  Error: %s\n", e.Message)
	if e.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", e.Context)
	}
	if e.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *e.Code)
	}
}

// formatDuration renders sub-millisecond durations in microseconds.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return d.Round(time.Microsecond).String()
}
