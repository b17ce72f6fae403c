package speech

import (
	"context"
	"testing"
)

// fakeRecording tracks stop/release calls.
type fakeRecording struct {
	uri      string
	stopErr  error
	stopped  bool
	released bool
}

func (f *fakeRecording) Stop(ctx context.Context) (string, error) {
	f.stopped = true
	return f.uri, f.stopErr
}

func (f *fakeRecording) Release() { f.released = true }

// fakeRecorder hands out prepared recordings.
type fakeRecorder struct {
	next     *fakeRecording
	startErr error
	starts   int
}

func (f *fakeRecorder) Start(ctx context.Context) (Recording, error) {
	f.starts++
	if f.startErr != nil {
		return nil, f.startErr
	}
	return f.next, nil
}

// TestCaptureStartStop verifies the normal lifecycle: start, stop returns
// the clip URI, and the handle is released.
func TestCaptureStartStop(t *testing.T) {
	rec := &fakeRecording{uri: "file:///rec/clip.m4a"}
	c := NewCapture(&fakeRecorder{next: rec})
	ctx := context.Background()

	if err := c.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	uri, err := c.Stop(ctx)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if uri != "file:///rec/clip.m4a" {
		t.Errorf("Stop uri = %q", uri)
	}
	if !rec.released {
		t.Error("recording not released after Stop")
	}

	// A new recording may start once the previous one is released.
	if err := c.Start(ctx); err != nil {
		t.Errorf("Start after Stop: %v", err)
	}
}

// TestCaptureSingleInFlight verifies at most one recording at a time.
func TestCaptureSingleInFlight(t *testing.T) {
	c := NewCapture(&fakeRecorder{next: &fakeRecording{}})
	ctx := context.Background()

	if err := c.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.Start(ctx); err != ErrRecordingActive {
		t.Errorf("second Start: got %v, want ErrRecordingActive", err)
	}
}

// TestCaptureReleaseOnTeardown verifies an in-flight recording is released
// and a stray Release with nothing active is harmless.
func TestCaptureReleaseOnTeardown(t *testing.T) {
	rec := &fakeRecording{}
	c := NewCapture(&fakeRecorder{next: rec})

	c.Release() // nothing active yet

	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	c.Release()

	if !rec.released {
		t.Error("in-flight recording not released on teardown")
	}
	if _, err := c.Stop(context.Background()); err != ErrNoRecording {
		t.Errorf("Stop after Release: got %v, want ErrNoRecording", err)
	}
}

// TestCaptureErrors covers the no-device and permission-denied paths.
func TestCaptureErrors(t *testing.T) {
	ctx := context.Background()

	if err := NewCapture(nil).Start(ctx); err != ErrNoRecorder {
		t.Errorf("Start without recorder: got %v, want ErrNoRecorder", err)
	}

	denied := NewCapture(&fakeRecorder{startErr: ErrPermissionDenied})
	if err := denied.Start(ctx); err != ErrPermissionDenied {
		t.Errorf("Start denied: got %v, want ErrPermissionDenied", err)
	}
	// Denied start leaves nothing in flight.
	if err := denied.Start(ctx); err != ErrPermissionDenied {
		t.Errorf("retry after denial: got %v, want ErrPermissionDenied", err)
	}
}
