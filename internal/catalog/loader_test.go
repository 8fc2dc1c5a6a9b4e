package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLibrary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "videos.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_OK(t *testing.T) {
	path := writeLibrary(t, "Amazing Cats|cat1|#cat,#animal\n\nFunny Dogs|dog2|#dog , #animal\n")
	c, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Fatalf("got %d videos, want 2", c.Len())
	}
	v, ok := c.Get("cat1")
	if !ok {
		t.Fatal("cat1 missing")
	}
	if v.Title != "Amazing Cats" {
		t.Fatalf("got title %q, want %q", v.Title, "Amazing Cats")
	}
	if len(v.Tags) != 2 || v.Tags[0] != "#cat" || v.Tags[1] != "#animal" {
		t.Fatalf("got tags %v", v.Tags)
	}

	dog, _ := c.Get("dog2")
	if len(dog.Tags) != 2 || dog.Tags[1] != "#animal" {
		t.Fatalf("tags should be trimmed, got %v", dog.Tags)
	}
}

func TestLoadFile_NoTags(t *testing.T) {
	path := writeLibrary(t, "Video about nothing|nothing_id|\n")
	c, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	v, _ := c.Get("nothing_id")
	if len(v.Tags) != 0 {
		t.Fatalf("expected no tags, got %v", v.Tags)
	}
}

func TestLoadFile_MalformedLine(t *testing.T) {
	path := writeLibrary(t, "just a title without separators\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected an error for a malformed line")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDefault_SeedLibrary(t *testing.T) {
	c := Default()
	if c.Len() != 5 {
		t.Fatalf("got %d seed videos, want 5", c.Len())
	}
	if _, ok := c.Get("amazing_cats_video_id"); !ok {
		t.Fatal("seed library missing amazing_cats_video_id")
	}
}
