package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTracerProvider(noop.NewTracerProvider())
	})
	return recorder
}

func TestTracingMiddlewareSetsUserContext(t *testing.T) {
	recorder := setupTestTracer(t)

	var sawValidSpan bool
	var propagated string

	app := fiber.New()
	app.Use(TracingMiddleware())
	app.Get("/api/sales", func(c *fiber.Ctx) error {
		span := trace.SpanFromContext(c.UserContext())
		sawValidSpan = span.SpanContext().IsValid()
		propagated = c.Get("Traceparent")
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sales", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	// Downstream handlers see a live span through the user context
	assert.True(t, sawValidSpan)

	// Trace context is injected into the forwarded request headers
	assert.NotEmpty(t, propagated)

	// And exposed to the caller
	assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/sales", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
}

func TestTracingMiddlewareRecordsStatus(t *testing.T) {
	recorder := setupTestTracer(t)

	app := fiber.New()
	app.Use(TracingMiddleware())
	app.Get("/boom", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusInternalServerError)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	var statusCode int64
	for _, attr := range spans[0].Attributes() {
		if attr.Key == "http.status_code" {
			statusCode = attr.Value.AsInt64()
		}
	}
	assert.Equal(t, int64(500), statusCode)
}
