package store

import (
	"context"
	"time"

	"github.com/georgemunganga/printa-pos/internal/metrics"
	"go.uber.org/zap"
)

type instrumented struct {
	next    Gateway
	metrics *metrics.Metrics
	log     *zap.Logger
}

// Instrument decorates a Gateway with call timing and fault logging.
func Instrument(next Gateway, m *metrics.Metrics, log *zap.Logger) Gateway {
	return &instrumented{next: next, metrics: m, log: log}
}

func (g *instrumented) Execute(ctx context.Context, procedure string, params ...Param) (*Response, error) {
	start := time.Now()
	resp, err := g.next.Execute(ctx, procedure, params...)
	g.observe(procedure, start, err)
	return resp, err
}

func (g *instrumented) Scalar(ctx context.Context, procedure string, params ...Param) (any, error) {
	start := time.Now()
	v, err := g.next.Scalar(ctx, procedure, params...)
	g.observe(procedure, start, err)
	return v, err
}

func (g *instrumented) Ping(ctx context.Context) error {
	return g.next.Ping(ctx)
}

func (g *instrumented) ServerInfo(ctx context.Context) (string, error) {
	return g.next.ServerInfo(ctx)
}

func (g *instrumented) observe(procedure string, start time.Time, err error) {
	took := time.Since(start)
	g.metrics.ObserveStoreCall(procedure, took, err)
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("procedure", procedure),
		zap.Duration("took", took),
		zap.Error(err),
	}
	if f, ok := AsFault(err); ok {
		fields = append(fields, zap.String("fault_kind", f.Kind.String()), zap.String("code", f.Code))
	}
	g.log.Warn("store call failed", fields...)
}
