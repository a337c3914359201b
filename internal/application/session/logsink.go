package session

import (
	"github.com/charmbracelet/log"

	"github.com/SpaceTurtle1226/SuparMayro3/internal/application/system"
)

// LogSink writes gameplay events to a logger at debug level
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink logging to l
func NewLogSink(l *log.Logger) *LogSink {
	return &LogSink{logger: l}
}

// Notify logs the event
func (s *LogSink) Notify(e system.Event) {
	kv := []any{"frame", e.Frame, "x", e.X, "y", e.Y}
	if e.Value != 0 {
		kv = append(kv, "value", e.Value)
	}
	if e.Text != "" {
		kv = append(kv, "text", e.Text)
	}
	s.logger.Debug(e.Type.String(), kv...)
}
