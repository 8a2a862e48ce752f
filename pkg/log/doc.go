// Package log is the logging seam used by bigadd components.
//
// Library code logs through the [Logger] interface so that embedding
// applications can route messages into their own logging stack. The CLI uses
// the zerolog adapter; library callers that do not care get [NoopLogger].
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Info("sum computed", log.Int("digits", 42))
//
// An existing zerolog.Logger can be wrapped instead:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
package log
