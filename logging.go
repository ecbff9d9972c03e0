package pointsample

import (
	"fmt"
	"io"
)

// logWriter is the destination for log output, nothing is logged if nil.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
// Passing nil silences logging (the default).
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// logf writes a formatted log message.
func logf(format string, args ...interface{}) {
	if logWriter == nil {
		return
	}
	fmt.Fprintln(logWriter, fmt.Sprintf(format, args...))
}
