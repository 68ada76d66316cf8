package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type assignMeta struct {
	Worker string            `trace:"assignment.worker_id"`
	Pieces int64             `trace:"assignment.pieces_done"`
	Amount float64           `trace:"assignment.total_amount,omitempty"`
	Tags   []string          `trace:"assignment.tags"`
	Extra  map[string]string `trace:"assignment.extra"`
	Nested *nestedMeta       `trace:"nested"`
	skip   string            `trace:"ignored"`
}

type nestedMeta struct {
	Op string `trace:"db.op"`
}

func TestApplyTraceAttributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tr := &Trace{TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)), ServiceName: "test"}

	_, span := tr.StartSpanForLayer(context.Background(), "assign")
	tr.ApplyTraceAttributes(span, &assignMeta{
		Worker: "w-1",
		Pieces: 120,
		Tags:   []string{"a", "b"},
		Extra:  map[string]string{"shift": "night"},
		Nested: &nestedMeta{Op: "upsert"},
		skip:   "x",
	})
	tr.EndSpan(span, nil)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "w-1", attrs["assignment.worker_id"].AsString())
	assert.Equal(t, int64(120), attrs["assignment.pieces_done"].AsInt64())
	assert.Equal(t, []string{"a", "b"}, attrs["assignment.tags"].AsStringSlice())
	assert.Equal(t, "night", attrs["assignment.extra.shift"].AsString())
	assert.Equal(t, "upsert", attrs["db.op"].AsString())
	_, hasAmount := attrs["assignment.total_amount"]
	assert.False(t, hasAmount)
	_, hasSkip := attrs["ignored"]
	assert.False(t, hasSkip)
}

func TestNilTraceIsSafe(t *testing.T) {
	var tr *Trace
	ctx, span, end := tr.WithSpan(context.Background(), "noop")
	assert.NotNil(t, ctx)
	tr.ApplyTraceAttributes(span, struct {
		A string `trace:"a"`
	}{A: "x"})
	end(nil)
}
