package domain

import "testing"

func TestFlagLifecycle(t *testing.T) {
	v := NewVideo("cat1", "Amazing Cats", []string{"#cat"})
	if v.Flagged() {
		t.Fatal("new video must not be flagged")
	}
	if got := v.FlagReasonOrDefault(); got != DefaultFlagReason {
		t.Fatalf("got %q, want default reason", got)
	}

	v.Flag("bad")
	if !v.Flagged() || v.FlagReason() != "bad" {
		t.Fatalf("got flagged=%v reason=%q", v.Flagged(), v.FlagReason())
	}

	v.ClearFlag()
	if v.Flagged() || v.FlagReason() != "" {
		t.Fatal("clearing the flag must clear the reason too")
	}
}

func TestFlag_EmptyReasonUsesDefaultForDisplay(t *testing.T) {
	v := NewVideo("cat1", "Amazing Cats", nil)
	v.Flag("")
	if v.FlagReason() != "" {
		t.Fatalf("stored reason should stay empty, got %q", v.FlagReason())
	}
	if got := v.FlagReasonOrDefault(); got != "Not supplied" {
		t.Fatalf("got %q, want %q", got, "Not supplied")
	}
}

func TestHasTag_CaseInsensitive(t *testing.T) {
	v := NewVideo("cat1", "Amazing Cats", []string{"#Cat", "#animal"})
	if !v.HasTag("#cat") || !v.HasTag("#ANIMAL") {
		t.Fatal("tag comparison must ignore case")
	}
	if v.HasTag("#ca") {
		t.Fatal("tag comparison must be exact")
	}
}

func TestLabel(t *testing.T) {
	v := NewVideo("cat1", "Amazing Cats", []string{"#cat", "#animal"})
	want := "Amazing Cats (cat1) [#cat #animal]"
	if got := v.Label(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	bare := NewVideo("n1", "Video about nothing", nil)
	if got := bare.Label(); got != "Video about nothing (n1) []" {
		t.Fatalf("got %q", got)
	}
}
