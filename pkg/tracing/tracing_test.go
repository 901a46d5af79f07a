package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return recorder
}

func TestStartSpan(t *testing.T) {
	recorder := setupRecorder(t)

	t.Run("父子Span共享TraceID", func(t *testing.T) {
		ctx, parent := StartSpan(context.Background(), "test", "ContactSeller")
		childCtx, child := StartSpan(ctx, "test", "CreateMessage")

		assert.NotEmpty(t, ExtractTraceID(ctx))
		assert.Equal(t, ExtractTraceID(ctx), ExtractTraceID(childCtx))
		assert.NotEqual(t, ExtractSpanID(ctx), ExtractSpanID(childCtx))

		child.End()
		parent.End()

		ended := recorder.Ended()
		require.Len(t, ended, 2)
		assert.Equal(t, "CreateMessage", ended[0].Name())
		assert.Equal(t, "ContactSeller", ended[1].Name())
	})
}

func TestExtractIDs_NoSpan(t *testing.T) {
	assert.Empty(t, ExtractTraceID(context.Background()))
	assert.Empty(t, ExtractSpanID(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(0).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Contains(t, sampler(0.1).Description(), "TraceIDRatioBased")
}
