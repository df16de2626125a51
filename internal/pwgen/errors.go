package pwgen

import (
	"errors"
	"fmt"
)

// Kind classifies a generator failure.
type Kind int

const (
	KindSpawn Kind = iota + 1
	KindWait
	KindKilled
	KindFailed
	KindStderrUnreadable
	KindStdoutUnreadable
	KindProducedNothing
)

// Error is a terminal generator failure. None of them are retried.
type Error struct {
	Program string
	Kind    Kind
	Code    int    // exit code, for KindFailed and KindStderrUnreadable
	Message string // trimmed stderr, for KindFailed
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindSpawn:
		return fmt.Sprintf("could not run %s: %v", e.Program, e.Err)
	case KindWait:
		return fmt.Sprintf("could not wait on %s process: %v", e.Program, e.Err)
	case KindKilled:
		return fmt.Sprintf("%s died from a signal", e.Program)
	case KindFailed:
		if e.Message == "" {
			return fmt.Sprintf("%s failed with exit code %d", e.Program, e.Code)
		}
		return fmt.Sprintf("%s failed (exit code %d): %s", e.Program, e.Code, e.Message)
	case KindStderrUnreadable:
		return fmt.Sprintf("%s failed (exit code %d) but could not read its error message: %v", e.Program, e.Code, e.Err)
	case KindStdoutUnreadable:
		return fmt.Sprintf("%s succeeded but could not read its output: %v", e.Program, e.Err)
	case KindProducedNothing:
		return fmt.Sprintf("%s succeeded but did not generate anything", e.Program)
	}
	return fmt.Sprintf("%s: unknown failure", e.Program)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of a generator error in err's chain, or 0.
func KindOf(err error) Kind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return 0
}
