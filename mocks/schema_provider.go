// Package mocks provides hand-maintained testify mocks for the service
// ports. Each constructor registers the mock with the test so that missing
// expectations fail the test at cleanup.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/record-intake-service/internal/domain/record"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
	"github.com/jsamuelsen11/record-intake-service/internal/ports"
)

// testingT is the subset of *testing.T the mock constructors need.
type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// Compile-time interface check.
var _ ports.SchemaProvider = (*MockSchemaProvider)(nil)

// MockSchemaProvider is a testify mock for [ports.SchemaProvider].
type MockSchemaProvider struct {
	mock.Mock
}

// NewMockSchemaProvider creates a MockSchemaProvider bound to t.
func NewMockSchemaProvider(t testingT) *MockSchemaProvider {
	m := &MockSchemaProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSchemaProvider) ListEntities(ctx context.Context) ([]schema.Entity, error) {
	args := m.Called(ctx)

	var entities []schema.Entity
	if v := args.Get(0); v != nil {
		entities = v.([]schema.Entity)
	}
	return entities, args.Error(1)
}

func (m *MockSchemaProvider) DescribeEntity(ctx context.Context, entity string) (*schema.Entity, error) {
	args := m.Called(ctx, entity)

	var ent *schema.Entity
	if v := args.Get(0); v != nil {
		ent = v.(*schema.Entity)
	}
	return ent, args.Error(1)
}

func (m *MockSchemaProvider) DescribeField(ctx context.Context, entity, field string) (schema.Field, error) {
	args := m.Called(ctx, entity, field)

	var f schema.Field
	if v := args.Get(0); v != nil {
		f = v.(schema.Field)
	}
	return f, args.Error(1)
}

func (m *MockSchemaProvider) NewRecord(ctx context.Context, entity string) (*record.Record, error) {
	args := m.Called(ctx, entity)

	var rec *record.Record
	if v := args.Get(0); v != nil {
		rec = v.(*record.Record)
	}
	return rec, args.Error(1)
}
