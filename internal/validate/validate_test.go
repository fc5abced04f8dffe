package validate_test

import (
	"testing"
	"time"

	"github.com/Vincent-WangCH/Project-list-backend/internal/validate"
)

func TestID(t *testing.T) {
	if _, ok := validate.ID(""); ok {
		t.Fatal("empty id accepted")
	}
	if _, ok := validate.ID("   "); ok {
		t.Fatal("whitespace id accepted")
	}
	// No format restriction: legacy integer ids and UUIDs both pass.
	for _, s := range []string{"42", "0d9c46fa-9e5c-4bd1-a8f2-1f7f2f2e9b10"} {
		if v, ok := validate.ID(" " + s + " "); !ok || v != s {
			t.Fatalf("id %q: got (%q, %v)", s, v, ok)
		}
	}
}

func TestText(t *testing.T) {
	if _, ok := validate.Text("  "); ok {
		t.Fatal("whitespace-only text accepted")
	}
	if v, ok := validate.Text("  x  "); !ok || v != "x" {
		t.Fatalf("got (%q, %v)", v, ok)
	}
}

func TestDate(t *testing.T) {
	if _, ok := validate.Date("yesterday-ish"); ok {
		t.Fatal("garbage date accepted")
	}
	if _, ok := validate.Date("2024-13-45"); ok {
		t.Fatal("impossible date accepted")
	}

	d, ok := validate.Date("2024-05-01")
	if !ok {
		t.Fatal("day-only date rejected")
	}
	if want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC); !d.Equal(want) {
		t.Fatalf("got %v, want %v", d, want)
	}

	d, ok = validate.Date("2024-05-01T09:30:00+02:00")
	if !ok {
		t.Fatal("rfc3339 date rejected")
	}
	if d.UTC().Hour() != 7 {
		t.Fatalf("offset not honored: %v", d)
	}
}
