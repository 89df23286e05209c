package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/utplsql/utplsql-go/pkg/log"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ulog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func intPtr(v int) *int { return &v }

var baseTime = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

// sessionEvents is a typical negotiation followed by one reporter init.
func sessionEvents() []log.Event {
	return []log.Event{
		{Timestamp: baseTime, SessionID: "aaaaaaaa-1111", Category: log.CategoryCall,
			Call: &log.CallEvent{Routine: "ut_runner.version", Duration: 2 * time.Millisecond}},
		{Timestamp: baseTime.Add(time.Second), SessionID: "aaaaaaaa-1111", Category: log.CategoryCall,
			Call: &log.CallEvent{Routine: "ut_runner.version_compatibility_check", Args: 2, Duration: 500 * time.Microsecond, Failed: true, Code: intPtr(6550)}},
		{Timestamp: baseTime.Add(2 * time.Second), SessionID: "aaaaaaaa-1111", Category: log.CategoryHandshake,
			Handshake: &log.HandshakeEvent{Requested: "3", Remote: "3.0.4", Method: log.MethodMissingRoutine}},
		{Timestamp: baseTime.Add(3 * time.Second), SessionID: "bbbbbbbb-2222", Category: log.CategoryObject,
			Object: &log.ObjectEvent{TypeName: "UT_COVERALLS_REPORTER", ObjectID: "CAFE", Stage: log.StageInitialized, HasOutput: true}},
		{Timestamp: baseTime.Add(4 * time.Second), SessionID: "bbbbbbbb-2222", Category: log.CategoryError,
			Error: &log.ErrorEventData{Message: "boom", Context: "handshake"}},
	}
}
