// Package logging builds zerolog loggers from configuration and carries them,
// along with a per-invocation trace ID, through context.Context.
//
// Callers obtain a logger with FromContext and tag it with ComponentLogger.
// Trace IDs are ULIDs so that log lines sort by creation time.
package logging
