package auth

import (
	"testing"
	"time"
)

func TestClaimNamespace(t *testing.T) {
	ns := claimNamespace(map[string]any{"role": "admin", "partner_id": "p-1"})
	if ns.Role != "admin" || ns.PartnerID != "p-1" {
		t.Fatalf("unexpected claim set: %+v", ns)
	}

	if got := claimNamespace("not an object"); !got.IsEmpty() {
		t.Fatalf("expected empty claim set for non-object, got %+v", got)
	}
	if got := claimNamespace(nil); !got.IsEmpty() {
		t.Fatalf("expected empty claim set for nil, got %+v", got)
	}
	// Non-string fields are dropped, not coerced.
	if got := claimNamespace(map[string]any{"role": 42}); got.Role != "" {
		t.Fatalf("expected numeric role to be ignored, got %q", got.Role)
	}
}

func TestJWTNumericTime(t *testing.T) {
	want := time.Unix(1700000000, 0).UTC()
	if got := jwtNumericTime(float64(1700000000)); !got.Equal(want) {
		t.Fatalf("float64: got %v want %v", got, want)
	}
	if got := jwtNumericTime(int64(1700000000)); !got.Equal(want) {
		t.Fatalf("int64: got %v want %v", got, want)
	}
	if got := jwtNumericTime("1700000000"); !got.IsZero() {
		t.Fatalf("string input should yield zero time, got %v", got)
	}
}
