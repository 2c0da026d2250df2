package util

import "testing"

func TestList(t *testing.T) {
	env := List("destinations", []string{"Boracay"}, 1, 6, 12, 0)
	meta, ok := env["meta"].(Envelope)
	if !ok {
		t.Fatalf("expected meta envelope, got %T", env["meta"])
	}
	if meta["total"] != 6 || meta["count"] != 1 || meta["limit"] != 12 || meta["offset"] != 0 {
		t.Fatalf("unexpected meta %v", meta)
	}
	if _, ok := env["destinations"]; !ok {
		t.Fatalf("expected destinations key")
	}
}

func TestError(t *testing.T) {
	if got := Error("destination not found")["error"]; got != "destination not found" {
		t.Fatalf("expected error message, got %v", got)
	}
}
