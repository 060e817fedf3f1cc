package clilog

import "errors"

var (
	// ErrUnknownLogLevel indicates an unrecognized --log-level value.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized --log-format value.
	ErrUnknownLogFormat = errors.New("unknown log format")
)
