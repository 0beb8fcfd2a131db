// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler and applies static attributes. Every
// registered ContextExtractor runs when a record is handled.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "domaincheck"),
//	    logger.WithContextExtractors(logger.EnvironmentExtractor()),
//	)
//
//	if _, err := contact.NewPerson(in); err != nil {
//	    log.WarnContext(ctx, "person rejected",
//	        logger.Event("create"),
//	        logger.ValidationErrors(err),
//	    )
//	}
//
// # Attributes
//
// Error, Errors and ValidationErrors return an empty slog.Attr when there
// is nothing to record, so they can be passed unconditionally.
// ValidationErrors unwraps a *domainkit.ValidationFailure and logs its
// path-to-messages map as a group.
package logger
