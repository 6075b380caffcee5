package telemetry

import (
	"context"
	"testing"
)

func TestEnabled(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"unset", map[string]string{}, false},
		{"empty", map[string]string{"OTEL_EXPORTER_OTLP_ENDPOINT": ""}, false},
		{"endpoint", map[string]string{"OTEL_EXPORTER_OTLP_ENDPOINT": "http://localhost:4318"}, true},
		{"traces endpoint", map[string]string{"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT": "http://localhost:4318/v1/traces"}, true},
	}

	for _, tt := range tests {
		lookup := func(key string) (string, bool) {
			v, ok := tt.env[key]
			return v, ok
		}
		if got := Enabled(lookup); got != tt.want {
			t.Errorf("Enabled(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	tracer := Tracer("test")
	if tracer == nil {
		t.Fatal("Tracer() returned nil")
	}

	// Spans from the default provider are safe to use and record nothing.
	_, span := tracer.Start(context.Background(), "noop")
	span.End()
	if span.IsRecording() {
		t.Error("span from the default provider should not be recording")
	}
}
