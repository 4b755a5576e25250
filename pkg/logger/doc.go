// Package logger builds configured slog loggers with context-aware
// attribute injection.
//
// The factory applies environment-appropriate defaults and wraps the handler
// so registered context extractors contribute attributes to every record:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Environment, "cmms-portal"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	logger.SetAsDefault(log)
//
// The attr helpers keep field names consistent across packages:
//
//	log.ErrorContext(ctx, "refresh failed", logger.Error(err), logger.UserID(id))
package logger
