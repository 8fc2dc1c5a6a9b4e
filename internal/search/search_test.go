package search

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/reelterm/reel/internal/catalog"
	"github.com/reelterm/reel/internal/domain"
)

func newTestService() (*Service, *catalog.Catalog) {
	c := catalog.New([]*domain.Video{
		domain.NewVideo("dog2", "Funny Dogs", []string{"#dog", "#animal"}),
		domain.NewVideo("cat1", "Amazing Cats", []string{"#cat", "#animal"}),
		domain.NewVideo("cat2", "Another Cat Video", []string{"#cat", "#animal"}),
	})
	return NewService(c, slog.New(slog.NewTextHandler(io.Discard, nil))), c
}

func titles(videos []*domain.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.Title
	}
	return out
}

func TestTitles_CaseInsensitiveSubstring(t *testing.T) {
	s, _ := newTestService()
	got := titles(s.Titles("CAT"))
	want := []string{"Amazing Cats", "Another Cat Video"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTitles_SortedByTitle(t *testing.T) {
	s, _ := newTestService()
	got := s.Titles("")
	for i := 1; i < len(got); i++ {
		if strings.ToLower(got[i-1].Title) > strings.ToLower(got[i].Title) {
			t.Fatalf("results not sorted: %v", titles(got))
		}
	}
}

func TestTitles_ExcludesFlagged(t *testing.T) {
	s, c := newTestService()
	v, _ := c.Get("cat1")
	v.Flag("nope")
	for _, res := range s.Titles("cat") {
		if res.ID == "cat1" {
			t.Fatal("flagged video must not appear in results")
		}
	}
}

func TestTag_RequiresHashPrefix(t *testing.T) {
	s, _ := newTestService()
	if got := s.Tag("animal"); got != nil {
		t.Fatalf("tag without '#' must match nothing, got %v", titles(got))
	}
}

func TestTag_ExactCaseInsensitive(t *testing.T) {
	s, _ := newTestService()
	got := titles(s.Tag("#ANIMAL"))
	want := []string{"Amazing Cats", "Another Cat Video", "Funny Dogs"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v, want %v", got, want)
	}
	if len(s.Tag("#anim")) != 0 {
		t.Fatal("tag match must be exact, not a prefix")
	}
}

func TestSuggest(t *testing.T) {
	s, _ := newTestService()
	got := s.Suggest("amzing cats", 3)
	if len(got) == 0 {
		t.Fatal("expected at least one suggestion for a near-miss")
	}
	if got[0] != "Amazing Cats" {
		t.Fatalf("got %q as best suggestion, want %q", got[0], "Amazing Cats")
	}
}
