//go:build !stdlog && !nolog

package build

// LoggingType is a log type that defers to the program's log backend.
const LoggingType = LogTypeDefault
