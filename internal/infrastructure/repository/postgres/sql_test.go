package postgres

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestUniqueViolation(t *testing.T) {
	t.Run("reports constraint for duplicate key", func(t *testing.T) {
		err := fmt.Errorf("upsert: %w", &pq.Error{Code: "23505", Constraint: "events_dedup_key"})
		constraint, ok := uniqueViolation(err)
		if !ok {
			t.Fatalf("expected unique violation to be detected")
		}
		if constraint != "events_dedup_key" {
			t.Fatalf("unexpected constraint: %s", constraint)
		}
	})

	t.Run("ignores other pq errors", func(t *testing.T) {
		err := &pq.Error{Code: "23503", Constraint: "events_venue_fk"}
		if _, ok := uniqueViolation(err); ok {
			t.Fatalf("expected foreign key violation to pass through")
		}
	})

	t.Run("ignores non-pq errors", func(t *testing.T) {
		if _, ok := uniqueViolation(fmt.Errorf("boom")); ok {
			t.Fatalf("expected plain error to pass through")
		}
	})
}

func TestNullableHelpers(t *testing.T) {
	if nullableString("") != nil {
		t.Fatalf("empty string should map to nil")
	}
	if got := nullableString("x"); got == nil || *got != "x" {
		t.Fatalf("unexpected nullable string: %v", got)
	}
	if nullableInt64(0) != nil {
		t.Fatalf("zero id should map to nil")
	}
	if got := nullableInt64(7); got == nil || *got != 7 {
		t.Fatalf("unexpected nullable int64: %v", got)
	}
}

func TestPayloadHash(t *testing.T) {
	if payloadHash(nil) != nil {
		t.Fatalf("empty payload should have no hash")
	}

	a := payloadHash([]byte(`{"id":1}`))
	b := payloadHash([]byte(`{"id":1}`))
	if a == nil || b == nil || *a != *b {
		t.Fatalf("hash must be deterministic")
	}
	if len(*a) != 40 {
		t.Fatalf("expected sha1 hex length 40, got %d", len(*a))
	}
}
