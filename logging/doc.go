// Package logging is the structured logging facade used across keycase.
//
// Library packages accept a [Logger] and default to [NopLogger]; nothing is
// logged unless the caller opts in. Two backends are provided:
//
//   - [SlogAdapter] wraps a *slog.Logger
//   - [LogrusAdapter] wraps a *logrus.Logger
//
// [Config] describes a logger the way configuration files and environment
// variables do (enable flag, level name, backend, output format), and [New]
// turns it into a Logger:
//
//	logger, err := logging.New(logging.Config{Enable: true, Level: "debug"}, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	dict, err := multicase.New(src, naming.ToSnakeCase, multicase.WithLogger(logger))
//
// [Timer], [Timed] and [TimedValue] log how long a piece of work took at
// debug level:
//
//	err := logging.Timed(logger, "convert", func() error {
//	    return run()
//	})
package logging
