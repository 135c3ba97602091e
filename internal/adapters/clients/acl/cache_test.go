package acl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/record-intake-service/internal/domain"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
	"github.com/jsamuelsen11/record-intake-service/mocks"
)

// mustEntity builds an entity descriptor, failing the test on error.
func mustEntity(t *testing.T, name string, fields ...schema.Field) *schema.Entity {
	t.Helper()

	ent, err := schema.NewEntity(name, name, fields)
	require.NoError(t, err)
	return ent
}

func TestCachedProvider_DescribeEntity_CachesWithinTTL(t *testing.T) {
	t.Parallel()

	account := mustEntity(t, "Account",
		schema.Field{Name: "Name", Type: schema.TypeText, Writable: true},
	)

	inner := mocks.NewMockSchemaProvider(t)
	inner.On("DescribeEntity", mock.Anything, "Account").Return(account, nil).Once()

	cached := NewCachedProvider(inner, time.Hour, slog.Default())

	first, err := cached.DescribeEntity(context.Background(), "Account")
	require.NoError(t, err)
	second, err := cached.DescribeEntity(context.Background(), "Account")
	require.NoError(t, err)

	assert.Same(t, first, second)
	inner.AssertNumberOfCalls(t, "DescribeEntity", 1)
}

func TestCachedProvider_DescribeEntity_ExpiredEntryRefetches(t *testing.T) {
	t.Parallel()

	account := mustEntity(t, "Account")

	inner := mocks.NewMockSchemaProvider(t)
	inner.On("DescribeEntity", mock.Anything, "Account").Return(account, nil).Twice()

	// Non-positive TTL expires entries immediately.
	cached := NewCachedProvider(inner, 0, slog.Default())

	_, err := cached.DescribeEntity(context.Background(), "Account")
	require.NoError(t, err)
	_, err = cached.DescribeEntity(context.Background(), "Account")
	require.NoError(t, err)

	inner.AssertNumberOfCalls(t, "DescribeEntity", 2)
}

func TestCachedProvider_DescribeEntity_ErrorNotCached(t *testing.T) {
	t.Parallel()

	account := mustEntity(t, "Account")

	inner := mocks.NewMockSchemaProvider(t)
	inner.On("DescribeEntity", mock.Anything, "Account").Return(nil, domain.ErrUnavailable).Once()
	inner.On("DescribeEntity", mock.Anything, "Account").Return(account, nil).Once()

	cached := NewCachedProvider(inner, time.Hour, slog.Default())

	_, err := cached.DescribeEntity(context.Background(), "Account")
	require.ErrorIs(t, err, domain.ErrUnavailable)

	got, err := cached.DescribeEntity(context.Background(), "Account")
	require.NoError(t, err)
	assert.Equal(t, "Account", got.Name)
}

func TestCachedProvider_DescribeField_UsesCachedEntity(t *testing.T) {
	t.Parallel()

	opportunity := mustEntity(t, "Opportunity",
		schema.Field{Name: "Amount", Type: schema.TypeCurrency, Writable: true},
		schema.Field{Name: "CloseDate", Type: schema.TypeDate, Writable: true},
	)

	inner := mocks.NewMockSchemaProvider(t)
	inner.On("DescribeEntity", mock.Anything, "Opportunity").Return(opportunity, nil).Once()

	cached := NewCachedProvider(inner, time.Hour, slog.Default())

	amount, err := cached.DescribeField(context.Background(), "Opportunity", "Amount")
	require.NoError(t, err)
	assert.Equal(t, schema.TypeCurrency, amount.Type)

	closeDate, err := cached.DescribeField(context.Background(), "Opportunity", "CloseDate")
	require.NoError(t, err)
	assert.Equal(t, schema.TypeDate, closeDate.Type)

	inner.AssertNumberOfCalls(t, "DescribeEntity", 1)
}

func TestCachedProvider_DescribeField_UnknownField(t *testing.T) {
	t.Parallel()

	contact := mustEntity(t, "Contact",
		schema.Field{Name: "Email", Type: schema.TypeEmail, Writable: true},
	)

	inner := mocks.NewMockSchemaProvider(t)
	inner.On("DescribeEntity", mock.Anything, "Contact").Return(contact, nil).Once()

	cached := NewCachedProvider(inner, time.Hour, slog.Default())

	_, err := cached.DescribeField(context.Background(), "Contact", "NoSuchField")
	require.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestCachedProvider_ListEntities_Cached(t *testing.T) {
	t.Parallel()

	listing := []schema.Entity{*mustEntity(t, "Account"), *mustEntity(t, "Lead")}

	inner := mocks.NewMockSchemaProvider(t)
	inner.On("ListEntities", mock.Anything).Return(listing, nil).Once()

	cached := NewCachedProvider(inner, time.Hour, slog.Default())

	first, err := cached.ListEntities(context.Background())
	require.NoError(t, err)
	second, err := cached.ListEntities(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	inner.AssertNumberOfCalls(t, "ListEntities", 1)
}

func TestCachedProvider_NewRecord(t *testing.T) {
	t.Parallel()

	caseEntity := mustEntity(t, "Case",
		schema.Field{Name: "Subject", Type: schema.TypeText, Writable: true},
	)

	inner := mocks.NewMockSchemaProvider(t)
	inner.On("DescribeEntity", mock.Anything, "Case").Return(caseEntity, nil).Once()

	cached := NewCachedProvider(inner, time.Hour, slog.Default())

	rec, err := cached.NewRecord(context.Background(), "Case")
	require.NoError(t, err)
	assert.Equal(t, "Case", rec.Entity())

	// The descriptor fetched for NewRecord serves later field lookups.
	_, err = cached.DescribeField(context.Background(), "Case", "Subject")
	require.NoError(t, err)
	inner.AssertNumberOfCalls(t, "DescribeEntity", 1)
}

func TestCachedProvider_Warm_PrimesCache(t *testing.T) {
	t.Parallel()

	listing := []schema.Entity{*mustEntity(t, "Account"), *mustEntity(t, "Lead")}
	account := mustEntity(t, "Account",
		schema.Field{Name: "Name", Type: schema.TypeText, Writable: true},
	)
	lead := mustEntity(t, "Lead",
		schema.Field{Name: "Company", Type: schema.TypeText, Writable: true},
	)

	inner := mocks.NewMockSchemaProvider(t)
	inner.On("ListEntities", mock.Anything).Return(listing, nil).Once()
	inner.On("DescribeEntity", mock.Anything, "Account").Return(account, nil).Once()
	inner.On("DescribeEntity", mock.Anything, "Lead").Return(lead, nil).Once()

	cached := NewCachedProvider(inner, time.Hour, slog.Default())
	require.NoError(t, cached.Warm(context.Background(), 2))

	// Everything is prefetched; no further inner calls.
	_, err := cached.DescribeField(context.Background(), "Account", "Name")
	require.NoError(t, err)
	_, err = cached.DescribeField(context.Background(), "Lead", "Company")
	require.NoError(t, err)
	inner.AssertNumberOfCalls(t, "DescribeEntity", 2)
}

func TestCachedProvider_Warm_ListingFailure(t *testing.T) {
	t.Parallel()

	inner := mocks.NewMockSchemaProvider(t)
	inner.On("ListEntities", mock.Anything).Return(nil, domain.ErrUnavailable).Once()

	cached := NewCachedProvider(inner, time.Hour, slog.Default())

	err := cached.Warm(context.Background(), 2)
	require.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestCachedProvider_Warm_DescribeFailuresSkipped(t *testing.T) {
	t.Parallel()

	listing := []schema.Entity{*mustEntity(t, "Account"), *mustEntity(t, "Lead")}
	account := mustEntity(t, "Account")

	inner := mocks.NewMockSchemaProvider(t)
	inner.On("ListEntities", mock.Anything).Return(listing, nil).Once()
	inner.On("DescribeEntity", mock.Anything, "Account").Return(account, nil).Once()
	inner.On("DescribeEntity", mock.Anything, "Lead").Return(nil, domain.ErrUnavailable).Once()

	cached := NewCachedProvider(inner, time.Hour, slog.Default())

	// Per-entity describe failures are logged and skipped, not fatal.
	require.NoError(t, cached.Warm(context.Background(), 2))
}
