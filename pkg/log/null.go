package log

// nullLogger discards everything. Useful for tests that don't want test
// output cluttered with per-instruction tracing.
type nullLogger struct{}

// NewNull returns a Logger that discards all output.
func NewNull() Logger {
	return &nullLogger{}
}

func (n nullLogger) Infof(format string, args ...interface{})  {}
func (n nullLogger) Errorf(format string, args ...interface{}) {}
func (n nullLogger) Debugf(format string, args ...interface{}) {}
