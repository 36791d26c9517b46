// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     log
// Description: Operation timer that logs its duration on completion
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package log

import (
	"time"
)

// Timer measures one operation and logs the elapsed time when stopped
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer starts a timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field logged on completion
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Checkpoint logs an intermediate step at trace level
func (t *Timer) Checkpoint(name string, fields ...Fields) {
	if t.stopped || t.logger == nil {
		return
	}
	combined := Fields{"operation": t.operation, "checkpoint": name}.Merge(t.fields)
	for _, f := range fields {
		combined = combined.Merge(f)
	}
	t.logger.log(LevelTrace, t.operation+" checkpoint: "+name, nil, t.Elapsed(), combined)
}

// Stop logs completion and returns the elapsed time. Later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.stop(nil)
}

// StopWithError logs a failure together with err
func (t *Timer) StopWithError(err error) time.Duration {
	return t.stop(err)
}

func (t *Timer) stop(err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true
	if t.logger == nil {
		return elapsed
	}

	fields := Fields{"operation": t.operation}.Merge(t.fields)
	if err != nil {
		fields["success"] = false
		t.logger.log(LevelError, t.operation+" failed", err, elapsed, fields)
		return elapsed
	}
	t.logger.log(t.level, t.operation+" completed", nil, elapsed, fields)
	return elapsed
}
