package models

import "testing"

func TestTagListRoundTrip(t *testing.T) {
	tags := TagList{"go", "web"}

	v, err := tags.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var got TagList
	if err := got.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(got) != 2 || got[0] != "go" || got[1] != "web" {
		t.Fatalf("got %v", got)
	}
	if !got.Contains("web") || got.Contains("missing") {
		t.Fatal("Contains misbehaved")
	}
}

func TestTagListScanNil(t *testing.T) {
	var got TagList
	if err := got.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v, want empty list", got)
	}
}
