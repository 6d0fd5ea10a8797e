package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestWithContextStampsTraceAndSpanIDs(t *testing.T) {
	var buf bytes.Buffer
	Logger = zerolog.New(&buf)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		SpanID:  trace.SpanID{0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	WithContext(ctx).Error().Msg("boom")

	out := buf.String()
	assert.Contains(t, out, `"trace_id":"0102030405060708090a0b0c0d0e0f10"`)
	assert.Contains(t, out, `"span_id":"1112131415161718"`)
	assert.Contains(t, out, `"message":"boom"`)
}

func TestWithContextWithoutSpanOmitsTraceFields(t *testing.T) {
	var buf bytes.Buffer
	Logger = zerolog.New(&buf)

	WithContext(context.Background()).Error().Msg("boom")

	out := buf.String()
	assert.NotContains(t, out, "trace_id")
	assert.NotContains(t, out, "span_id")
}
