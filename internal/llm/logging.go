package llm

import (
	"context"
	"fmt"
	"io"
	"time"
)

// LoggingProvider is a decorator that writes one summary line per LLM
// request: purpose, model, latency, token counts, estimated cost, and
// outcome. Nothing is persisted.
type LoggingProvider struct {
	inner Provider
	out   io.Writer
}

// WithLogging wraps a Provider with request logging to out.
func WithLogging(p Provider, out io.Writer) Provider {
	return &LoggingProvider{inner: p, out: out}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latency := time.Since(start).Round(time.Millisecond)

	if err != nil {
		fmt.Fprintf(l.out, "llm %s model=%s latency=%s error=%q\n",
			purpose, l.inner.ModelID(), latency, err.Error())
		return nil, err
	}

	line := fmt.Sprintf("llm %s model=%s latency=%s tokens=%d/%d",
		purpose, resp.Model, latency, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	if cost := LookupCost(resp.Model); cost != nil {
		line += fmt.Sprintf(" cost=$%.4f", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
	}
	fmt.Fprintln(l.out, line)

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
