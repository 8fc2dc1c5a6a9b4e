package playlist

import "testing"

func TestAdd_IdempotentMembership(t *testing.T) {
	p := New("Fun")
	if !p.Add("cat1") {
		t.Fatal("first add should succeed")
	}
	if p.Add("cat1") {
		t.Fatal("second add of the same id should report false")
	}
	if p.Len() != 1 {
		t.Fatalf("got %d videos, want exactly 1", p.Len())
	}
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	p := New("Fun")
	p.Add("b")
	p.Add("a")
	p.Add("c")
	ids := p.VideoIDs()
	want := []string{"b", "a", "c"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got order %v, want %v", ids, want)
		}
	}
}

func TestRemove(t *testing.T) {
	p := New("Fun")
	p.Add("cat1")
	if !p.Remove("cat1") {
		t.Fatal("remove of present id should succeed")
	}
	if p.Remove("cat1") {
		t.Fatal("remove of absent id should report false")
	}
	if p.Contains("cat1") {
		t.Fatal("removed id should not be contained")
	}
}

func TestClear(t *testing.T) {
	p := New("Fun")
	p.Add("a")
	p.Add("b")
	p.Clear()
	if p.Len() != 0 {
		t.Fatalf("got %d videos after clear, want 0", p.Len())
	}
	// Clear on an empty playlist is fine
	p.Clear()
	if !p.Add("a") {
		t.Fatal("adding after clear should succeed")
	}
}
