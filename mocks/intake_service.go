package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/record-intake-service/internal/domain/record"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
	"github.com/jsamuelsen11/record-intake-service/internal/ports"
)

// Compile-time interface check.
var _ ports.IntakeService = (*MockIntakeService)(nil)

// MockIntakeService is a testify mock for [ports.IntakeService].
type MockIntakeService struct {
	mock.Mock
}

// NewMockIntakeService creates a MockIntakeService bound to t.
func NewMockIntakeService(t testingT) *MockIntakeService {
	m := &MockIntakeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIntakeService) BuildRecord(ctx context.Context, entity string, values map[string]string) (*record.Record, error) {
	args := m.Called(ctx, entity, values)

	var rec *record.Record
	if v := args.Get(0); v != nil {
		rec = v.(*record.Record)
	}
	return rec, args.Error(1)
}

func (m *MockIntakeService) Entities(ctx context.Context) ([]schema.Entity, error) {
	args := m.Called(ctx)

	var entities []schema.Entity
	if v := args.Get(0); v != nil {
		entities = v.([]schema.Entity)
	}
	return entities, args.Error(1)
}

func (m *MockIntakeService) Entity(ctx context.Context, name string) (*schema.Entity, error) {
	args := m.Called(ctx, name)

	var ent *schema.Entity
	if v := args.Get(0); v != nil {
		ent = v.(*schema.Entity)
	}
	return ent, args.Error(1)
}

func (m *MockIntakeService) Field(ctx context.Context, entity, field string) (schema.Field, error) {
	args := m.Called(ctx, entity, field)

	var f schema.Field
	if v := args.Get(0); v != nil {
		f = v.(schema.Field)
	}
	return f, args.Error(1)
}
