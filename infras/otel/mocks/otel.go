// Package mocks provides a no-op tracer for tests so services can be
// exercised without a collector.
package mocks

import (
	"context"

	"roombook/infras/otel"
)

type noopOtel struct{}

func NewOtel() otel.Otel {
	return noopOtel{}
}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}
