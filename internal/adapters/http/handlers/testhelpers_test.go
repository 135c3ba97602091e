package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/record-intake-service/internal/domain/record"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/value"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func accountEntity(t *testing.T) *schema.Entity {
	t.Helper()

	ent, err := schema.NewEntity("Account", "Account", []schema.Field{
		{Name: "Name", Label: "Account Name", Type: schema.TypeText, Writable: true},
		{Name: "AnnualRevenue", Label: "Annual Revenue", Type: schema.TypeCurrency, Writable: true},
		{Name: "CreatedDate", Label: "Created Date", Type: schema.TypeDateTime, Writable: false},
	})
	if err != nil {
		t.Fatalf("NewEntity() error = %v", err)
	}
	return ent
}

func accountRecord() *record.Record {
	rec := record.New("Account")
	rec.Set("Name", value.Text("Acme"))
	rec.Set("AnnualRevenue", value.NewDecimal(decimal.RequireFromString("1234.50")))
	rec.Set("LastActivityDate", value.NewDate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
