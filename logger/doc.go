// Package logger provides structured logging for the users-service SDK
// built on zerolog.
//
// A Logger wraps zerolog with component tagging and map-based fields so the
// SDK packages share one logging shape:
//
//	log := logger.NewDefault("users-service")
//	log.Info("session exchanged", logger.Fields("provider", "google"))
//
// Package-level functions delegate to a process-wide logger for code paths
// that have no logger handle of their own.
package logger
