package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Sink holds the metric instruments the output client records into.
type Sink struct {
	bulkTotal       metric.Int64Counter
	bulkBytes       metric.Int64Counter
	documentsTotal  metric.Int64Counter
	requestDuration metric.Float64Histogram
	errorTotal      metric.Int64Counter
}

// NewSink creates the output client instruments on the given meter.
func NewSink(meter metric.Meter) (*Sink, error) {
	bulkTotal, err := meter.Int64Counter("bulk.total",
		metric.WithDescription("Total number of bulk submissions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating bulk.total counter: %w", err)
	}

	bulkBytes, err := meter.Int64Counter("bulk.bytes",
		metric.WithDescription("Total payload bytes submitted in bulks"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating bulk.bytes counter: %w", err)
	}

	documentsTotal, err := meter.Int64Counter("documents.total",
		metric.WithDescription("Total documents submitted, by action"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating documents.total counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("request.duration",
		metric.WithDescription("Duration of requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &Sink{
		bulkTotal:       bulkTotal,
		bulkBytes:       bulkBytes,
		documentsTotal:  documentsTotal,
		requestDuration: requestDuration,
		errorTotal:      errorTotal,
	}, nil
}

// RecordBulk records a completed bulk submission.
func (s *Sink) RecordBulk(ctx context.Context, bytes int64, docs int64, action string, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("action", action))
	s.bulkTotal.Add(ctx, 1, attrs)
	s.bulkBytes.Add(ctx, bytes, attrs)
	s.documentsTotal.Add(ctx, docs, attrs)
	s.requestDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordError records an error by type.
func (s *Sink) RecordError(ctx context.Context, errType string) {
	s.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
	))
}
