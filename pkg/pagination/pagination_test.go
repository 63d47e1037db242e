package pagination

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-5, DefaultLimit},
		{10, 10},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
	}
	for _, c := range cases {
		if got := NormalizeLimit(c.in); got != c.want {
			t.Errorf("NormalizeLimit(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCursorRoundTrip(t *testing.T) {
	original := Cursor{
		CreatedAt: time.Date(2025, 6, 10, 18, 30, 0, 123456000, time.UTC),
		ID:        uuid.New(),
	}

	parsed, err := ParseCursor(EncodeCursor(original))
	if err != nil {
		t.Fatalf("ParseCursor: %v", err)
	}
	if parsed == nil {
		t.Fatal("expected a cursor, got nil")
	}
	if !parsed.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("CreatedAt = %s, want %s", parsed.CreatedAt, original.CreatedAt)
	}
	if parsed.ID != original.ID {
		t.Errorf("ID = %s, want %s", parsed.ID, original.ID)
	}
}

func TestParseCursorEmptyIsNil(t *testing.T) {
	parsed, err := ParseCursor("  ")
	if err != nil {
		t.Fatalf("ParseCursor: %v", err)
	}
	if parsed != nil {
		t.Fatalf("expected nil cursor, got %+v", parsed)
	}
}

func TestParseCursorRejectsGarbage(t *testing.T) {
	for _, value := range []string{"not-base64!", "bm9waXBl", "MjAyNS0wNi0xMFQwMDowMDowMFp8bm90LWEtdXVpZA"} {
		if _, err := ParseCursor(value); err == nil {
			t.Errorf("expected error for cursor %q", value)
		}
	}
}

func TestTrimPage(t *testing.T) {
	rows := []int{1, 2, 3, 4}

	page, more := TrimPage(rows, 3)
	if len(page) != 3 || !more {
		t.Fatalf("expected 3 rows and more=true, got %d rows, more=%v", len(page), more)
	}

	page, more = TrimPage(rows, 10)
	if len(page) != 4 || more {
		t.Fatalf("expected 4 rows and more=false, got %d rows, more=%v", len(page), more)
	}
}
