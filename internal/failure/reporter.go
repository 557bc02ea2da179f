package failure

//go:generate mockgen -source=reporter.go -destination=mock_reporter.go -package=failure

import (
	"context"

	"go.uber.org/zap"
)

// Reporter records diagnostics for server-side failures.
type Reporter interface {
	Report(ctx context.Context, d *Diagnostic)
}

// LogReporter writes diagnostics to a zap logger.
type LogReporter struct {
	log *zap.Logger
}

func NewLogReporter(l *zap.Logger) *LogReporter {
	return &LogReporter{log: l}
}

func (r *LogReporter) Report(_ context.Context, d *Diagnostic) {
	if d == nil {
		return
	}

	r.log.Error("request failed",
		zap.String("kind", d.Kind.String()),
		zap.Int("status-code", d.Status),
		zap.Error(d.Err),
		zap.Strings("stack", d.Stack),
	)
}
