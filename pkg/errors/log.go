package errors

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogHandler is an ErrorHandler that writes entries through logrus.
type LogHandler struct {
	// Logger receives the entries. A stderr logger is used when nil.
	Logger *logrus.Logger
	// Verbose adds stack traces to the entries.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to stderr at warn level.
func NewLogHandler() *LogHandler {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return &LogHandler{Logger: logger}
}

func (h *LogHandler) logger() *logrus.Logger {
	if h.Logger == nil {
		h.Logger = NewLogHandler().Logger
	}
	return h.Logger
}

// HandleError logs an AriaError.
func (h *LogHandler) HandleError(err *AriaError) {
	if err == nil {
		return
	}
	entry := h.logger().WithFields(logrus.Fields{
		"op":   err.Op,
		"kind": err.Kind.String(),
	})
	if err.Widget != "" {
		entry = entry.WithField("widget", err.Widget)
	}
	if h.Verbose && err.StackTrace != "" {
		entry = entry.WithField("stack", err.StackTrace)
	}
	entry.Error(err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	entry := h.logger().WithField("kind", KindPanic.String())
	if err.Op != "" {
		entry = entry.WithField("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		entry = entry.WithField("stack", err.StackTrace)
	}
	entry.Errorf("panic: %v", err.Value)
}
