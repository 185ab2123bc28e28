package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a query failed. Every kind except
// ModeUnavailable aborts the query; ModeUnavailable is absorbed
// per-connector so one bad output cannot hide the others.
type ErrorKind int

const (
	// DeviceNotFound means the named card does not exist under /dev/dri.
	DeviceNotFound ErrorKind = iota
	// NoUsableDevice means the auto-scan found no card with an active connector.
	NoUsableDevice
	// DevicePermissionDenied means the device node could not be opened for
	// lack of access rights.
	DevicePermissionDenied
	// DeviceOpenFailed means the device node could not be opened or is not
	// a usable graphics device.
	DeviceOpenFailed
	// ModeUnavailable means one connector's active mode could not be read.
	ModeUnavailable
	// InvalidOverrideFormat means a RRES_* environment override is malformed.
	InvalidOverrideFormat
	// DisplayIndexOutOfRange means RRES_DISPLAY selects past the last
	// detected display.
	DisplayIndexOutOfRange
	// NoDisplayDetected means enumeration finished with zero usable displays.
	NoDisplayDetected
)

func (k ErrorKind) String() string {
	switch k {
	case DeviceNotFound:
		return "device not found"
	case NoUsableDevice:
		return "no usable device"
	case DevicePermissionDenied:
		return "device permission denied"
	case DeviceOpenFailed:
		return "device open failed"
	case ModeUnavailable:
		return "mode unavailable"
	case InvalidOverrideFormat:
		return "invalid override format"
	case DisplayIndexOutOfRange:
		return "display index out of range"
	case NoDisplayDetected:
		return "no display detected"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// QueryError ties a failure to its taxonomy kind so scripting callers can
// tell "no hardware access" apart from "no display plugged in" from "bad
// override syntax". It carries the underlying cause for logging while the
// kind drives the message shown at the process boundary.
type QueryError struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying error.
func (e *QueryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewQueryError constructs a QueryError with the provided kind and cause.
func NewQueryError(kind ErrorKind, err error) *QueryError {
	return &QueryError{Kind: kind, Err: err}
}

// KindOf extracts the taxonomy kind from an error chain. The second return
// is false when the error did not originate from the query engine.
func KindOf(err error) (ErrorKind, bool) {
	var queryErr *QueryError
	if errors.As(err, &queryErr) {
		return queryErr.Kind, true
	}
	return 0, false
}
