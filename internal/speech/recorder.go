// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package speech

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrNoRecorder means no capture device is attached to this install.
	ErrNoRecorder = errors.New("speech: no recorder attached")

	// ErrRecordingActive means a recording is already in flight; it must be
	// stopped and released before another may start.
	ErrRecordingActive = errors.New("speech: recording already in progress")

	// ErrNoRecording means Stop was called with nothing in flight.
	ErrNoRecording = errors.New("speech: no recording in progress")

	// ErrPermissionDenied is surfaced by recorder implementations when the
	// microphone permission is refused. Recoverable — the session continues.
	ErrPermissionDenied = errors.New("speech: recording permission denied")
)

// Recording is an in-progress capture handle. Stop finalizes the clip and
// returns its URI; Release discards the underlying device resource without
// keeping the clip. Implementations must tolerate Release after Stop.
type Recording interface {
	Stop(ctx context.Context) (string, error)
	Release()
}

// Recorder is the audio-capture collaborator.
type Recorder interface {
	Start(ctx context.Context) (Recording, error)
}

// Capture serializes access to the recorder: at most one recording in
// flight, and whatever is in flight is released on teardown so the device
// resource never leaks.
type Capture struct {
	mu       sync.Mutex
	recorder Recorder
	active   Recording
}

// NewCapture returns a capture guard over the given recorder, which may be
// nil when no device is attached.
func NewCapture(recorder Recorder) *Capture {
	return &Capture{recorder: recorder}
}

// Start begins a recording. Fails with ErrRecordingActive when one is
// already in flight.
func (c *Capture) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.recorder == nil {
		return ErrNoRecorder
	}
	if c.active != nil {
		return ErrRecordingActive
	}

	rec, err := c.recorder.Start(ctx)
	if err != nil {
		return err
	}
	c.active = rec
	return nil
}

// Stop finalizes the in-flight recording and returns the clip URI. The
// handle is released whether or not Stop succeeds.
func (c *Capture) Stop(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return "", ErrNoRecording
	}

	rec := c.active
	c.active = nil
	defer rec.Release()

	return rec.Stop(ctx)
}

// Release discards any in-flight recording. Safe to call on every teardown
// path; a no-op when nothing is recording.
func (c *Capture) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		c.active.Release()
		c.active = nil
	}
}
