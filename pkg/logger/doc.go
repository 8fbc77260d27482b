// Package logger is a thin factory around log/slog: functional options for
// format, level and static attributes, helper attribute constructors for
// consistent key naming, and transparent injection of request-scoped
// context values into every record.
//
//	log := logger.New(
//	    logger.WithDevelopment("webapp"),
//	    logger.WithContextExtractors(requestIDExtractor),
//	)
//	logger.SetAsDefault(log)
//
//	log.Warn("invalid cookie signature",
//	    logger.CookieName("_xsrf"),
//	    logger.Component("cookie"),
//	)
package logger
