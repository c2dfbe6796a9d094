package observability

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/pieguyguide/lfg-board/internal/config"
)

func TestSetupOTel_DisabledIsNoOp(t *testing.T) {
	shutdown, err := SetupOTel(context.Background(), config.OTELConfig{Enabled: false}, "test")
	if err != nil {
		t.Fatalf("SetupOTel: %v", err)
	}
	if shutdown == nil {
		t.Fatalf("expected non-nil shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("no-op shutdown: %v", err)
	}
}

func TestSetupOTel_ExporterErrorPropagates(t *testing.T) {
	orig := newOTLPExporterFn
	defer func() { newOTLPExporterFn = orig }()

	wantErr := errors.New("exporter boom")
	newOTLPExporterFn = func(context.Context, otlptrace.Client) (*otlptrace.Exporter, error) {
		return nil, wantErr
	}

	_, err := SetupOTel(context.Background(), config.OTELConfig{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		Insecure:    true,
		ServiceName: "lfg-board",
		SampleRatio: 1,
	}, "test")
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want exporter error", err)
	}
}

func TestSetupOTel_ResourceErrorPropagates(t *testing.T) {
	origExp := newOTLPExporterFn
	origRes := newServiceResourceFn
	defer func() {
		newOTLPExporterFn = origExp
		newServiceResourceFn = origRes
	}()

	newOTLPExporterFn = func(ctx context.Context, client otlptrace.Client) (*otlptrace.Exporter, error) {
		return &otlptrace.Exporter{}, nil
	}
	wantErr := errors.New("resource boom")
	newServiceResourceFn = func(context.Context, string, string) (*resource.Resource, error) {
		return nil, wantErr
	}

	_, err := SetupOTel(context.Background(), config.OTELConfig{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		Insecure:    true,
		ServiceName: "lfg-board",
		SampleRatio: 1,
	}, "test")
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want resource error", err)
	}
}
