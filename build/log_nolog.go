//go:build nolog

package build

// LoggingType is a log type that disables all logging.
const LoggingType = LogTypeNone
