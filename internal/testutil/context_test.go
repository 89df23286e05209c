package testutil

import (
	"testing"
	"time"
)

func TestContextHasDeadline(t *testing.T) {
	ctx := Context(t, time.Minute)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("context has no deadline")
	}
	if time.Until(deadline) > time.Minute {
		t.Errorf("deadline %v is beyond the requested timeout", deadline)
	}
}

func TestContextDefaultTimeout(t *testing.T) {
	ctx := Context(t, 0)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("context has no deadline")
	}
	if time.Until(deadline) > DefaultTimeout {
		t.Errorf("deadline %v is beyond DefaultTimeout", deadline)
	}
}

func TestContextCancelledOnCleanup(t *testing.T) {
	var ctxErr func() error
	t.Run("inner", func(t *testing.T) {
		ctx := Context(t, time.Minute)
		ctxErr = ctx.Err
	})
	if ctxErr() == nil {
		t.Error("context should be cancelled after the subtest ends")
	}
}
