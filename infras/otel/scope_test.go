package otel_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel/infras/otel"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("service").Start(context.Background(), "service.Confirm")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"booking.id": "b-1",
		"room.count": 2,
		"locked":     true,
	})
	scope.AddEvent("room locked")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("room not available"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	assert.Equal(t, "service.Confirm", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Len(t, spans[0].Attributes(), 3)
	assert.Len(t, spans[0].Events(), 2)
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
		wantCode   int64
	}{
		{name: "conflict is not a span error", err: failure.New(http.StatusConflict, "Room not available", "taken"), wantStatus: codes.Unset, wantCode: http.StatusConflict},
		{name: "internal failure", err: failure.InternalError(errors.New("db down")), wantStatus: codes.Error, wantCode: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("db down"), wantStatus: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

			_, span := provider.Tracer("service").Start(context.Background(), "booking.Confirm")
			scope := otel.NewScope(span)
			scope.TraceError(tt.err)
			scope.End()

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.wantStatus, spans[0].Status().Code)

			var code int64
			for _, kv := range spans[0].Attributes() {
				if kv.Key == "error.code" {
					code = kv.Value.AsInt64()
				}
			}

			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestScope_SetAttributeTypes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("service").Start(context.Background(), "availability.List")
	scope := otel.NewScope(span)
	scope.SetAttribute("check_in", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	scope.SetAttribute("nights", int64(2))
	scope.End()

	attrs := map[string]string{}
	for _, kv := range recorder.Ended()[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "2025-06-10T00:00:00Z", attrs["check_in"])
	assert.Equal(t, "2", attrs["nights"])
}
