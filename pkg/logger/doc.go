// Package logger builds slog loggers for the whoami tools and provides the
// attribute helpers used across the module, so that fact names, user agents
// and errors are always logged under the same keys.
//
// # Usage
//
//	import "github.com/dmitrymomot/webwhoami/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "whoami"),
//	    logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//
//	log.Debug("cannot classify user agent",
//	    logger.Fact("distro"),
//	    logger.UserAgent(ua),
//	    logger.Error(err),
//	)
//
// # Configuration
//
//   - WithDevelopment / WithProduction / WithEnvironment – defaults per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel – minimum slog.Level; ParseLevel converts config strings.
//   - WithOutput – destination, stderr by default so stdout stays free for results.
//   - WithAttr – static attributes.
//
// Error and Errors return an empty attribute for nil errors, which slog drops.
package logger
