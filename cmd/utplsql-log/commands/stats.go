package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/utplsql/utplsql-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Routines         map[string]*RoutineStats
	Handshakes       map[log.HandshakeMethod]int
	Incompatible     int
	Sessions         map[string]int
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// RoutineStats holds statistics for one remote routine.
type RoutineStats struct {
	Calls    int
	Failures int
	Total    time.Duration
	Max      time.Duration
}

// Average returns the mean call duration.
func (r *RoutineStats) Average() time.Duration {
	if r.Calls == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Calls)
}

// CollectStats reads every event of a log file.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Routines:         make(map[string]*RoutineStats),
		Handshakes:       make(map[log.HandshakeMethod]int),
		Sessions:         make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++
		stats.Sessions[event.SessionID]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		switch {
		case event.Call != nil:
			rs, ok := stats.Routines[event.Call.Routine]
			if !ok {
				rs = &RoutineStats{}
				stats.Routines[event.Call.Routine] = rs
			}
			rs.Calls++
			rs.Total += event.Call.Duration
			if event.Call.Duration > rs.Max {
				rs.Max = event.Call.Duration
			}
			if event.Call.Failed {
				rs.Failures++
			}
		case event.Handshake != nil:
			stats.Handshakes[event.Handshake.Method]++
			if !event.Handshake.Compatible {
				stats.Incompatible++
			}
		case event.Error != nil:
			stats.Errors++
		}
	}
	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== utPLSQL Call Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, c := range []log.Category{log.CategoryCall, log.CategoryHandshake, log.CategoryObject, log.CategoryError} {
		if n := stats.EventsByCategory[c]; n > 0 {
			fmt.Fprintf(w, "  %s: %d\n", c, n)
		}
	}

	if len(stats.Handshakes) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Handshakes:")
		methods := make([]log.HandshakeMethod, 0, len(stats.Handshakes))
		for m := range stats.Handshakes {
			methods = append(methods, m)
		}
		sort.Slice(methods, func(i, j int) bool { return methods[i] < methods[j] })
		for _, m := range methods {
			fmt.Fprintf(w, "  %s: %d\n", m, stats.Handshakes[m])
		}
		fmt.Fprintf(w, "  Incompatible: %d\n", stats.Incompatible)
	}

	if len(stats.Routines) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Routines:")
		names := make([]string, 0, len(stats.Routines))
		for name := range stats.Routines {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			rs := stats.Routines[name]
			fmt.Fprintf(w, "  %s: %d calls, %d failed, avg %s, max %s\n",
				name, rs.Calls, rs.Failures, formatDuration(rs.Average()), formatDuration(rs.Max))
		}
	}
}
