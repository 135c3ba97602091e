package record

import (
	"testing"

	"github.com/jsamuelsen11/record-intake-service/internal/domain/value"
)

func TestNew(t *testing.T) {
	t.Parallel()

	r := New("Account")

	if r.Entity() != "Account" {
		t.Errorf("Entity() = %q, want %q", r.Entity(), "Account")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestSetAndGet(t *testing.T) {
	t.Parallel()

	r := New("Account")
	r.Set("Name", value.Text("Acme Corp"))

	v, ok := r.Get("Name")
	if !ok {
		t.Fatal("Get(\"Name\") ok = false, want true")
	}
	if !value.Equal(v, value.Text("Acme Corp")) {
		t.Errorf("Get(\"Name\") = %v, want Text(\"Acme Corp\")", v)
	}
}

func TestGet_AbsentField(t *testing.T) {
	t.Parallel()

	r := New("Account")

	v, ok := r.Get("Name")
	if ok {
		t.Error("Get on unset field ok = true, want false")
	}
	if v != nil {
		t.Errorf("Get on unset field = %v, want nil", v)
	}
	if r.Has("Name") {
		t.Error("Has on unset field = true, want false")
	}
}

func TestSet_ReplacesPriorValue(t *testing.T) {
	t.Parallel()

	r := New("Case")
	r.Set("Subject", value.Text("first"))
	r.Set("Subject", value.Text("second"))

	v, _ := r.Get("Subject")
	if !value.Equal(v, value.Text("second")) {
		t.Errorf("Get after overwrite = %v, want Text(\"second\")", v)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestFieldNames_Sorted(t *testing.T) {
	t.Parallel()

	r := New("Opportunity")
	r.Set("StageName", value.Text("Prospecting"))
	r.Set("Amount", value.Text("100"))
	r.Set("CloseDate", value.Text("2024-06-01"))

	got := r.FieldNames()
	want := []string{"Amount", "CloseDate", "StageName"}
	if len(got) != len(want) {
		t.Fatalf("len(FieldNames()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FieldNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValues_ReturnsCopy(t *testing.T) {
	t.Parallel()

	r := New("Contact")
	r.Set("Email", value.Text("ada@example.com"))

	vals := r.Values()
	vals["Email"] = value.Text("mutated@example.com")
	delete(vals, "Email")

	v, ok := r.Get("Email")
	if !ok {
		t.Fatal("record lost field after mutating the Values() copy")
	}
	if !value.Equal(v, value.Text("ada@example.com")) {
		t.Errorf("Get(\"Email\") = %v, want original value", v)
	}
}
