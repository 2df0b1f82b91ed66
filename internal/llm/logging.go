package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type loggingProvider struct {
	inner Provider
}

// WithLogging wraps p so every completion emits one structured log line.
func WithLogging(p Provider) Provider {
	return &loggingProvider{inner: p}
}

func (l *loggingProvider) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	out, err := l.inner.Complete(ctx, req)

	event := log.Debug()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.
		Str("model", l.inner.ModelID()).
		Int("promptChars", len(req.Prompt)).
		Int("responseChars", len(out)).
		Int64("latencyMs", time.Since(start).Milliseconds()).
		Msg("LLM completion")
	return out, err
}

func (l *loggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *loggingProvider) Close() error { return l.inner.Close() }
