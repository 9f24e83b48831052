package tracing

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestDisabledProviderIsNoop(t *testing.T) {
	p, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("NewProvider() error: %v", err)
	}
	if p.Enabled() {
		t.Error("provider should be disabled")
	}

	_, span := p.Tracer().Start(context.Background(), "button.render")
	if span.SpanContext().IsValid() {
		t.Error("no-op tracer should produce invalid span contexts")
	}
	span.End()

	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error: %v", err)
	}
}

func TestStdoutExporter(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewProvider(Config{Enabled: true, Exporter: ExporterStdout, Writer: &buf})
	if err != nil {
		t.Fatalf("NewProvider() error: %v", err)
	}
	defer p.Shutdown(context.Background())

	_, span := p.Tracer().Start(context.Background(), "button.render")
	span.End()

	if !strings.Contains(buf.String(), `"Name": "button.render"`) {
		t.Errorf("stdout exporter output missing span:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), DefaultServiceName) {
		t.Error("exported span should carry the service name")
	}
}

func TestUnsupportedExporter(t *testing.T) {
	if _, err := NewProvider(Config{Enabled: true, Exporter: "zipkin"}); err == nil {
		t.Error("NewProvider() should reject an unknown exporter")
	}
}
