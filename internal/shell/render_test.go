package shell

import (
	"strings"
	"testing"

	"github.com/reelterm/reel/internal/command"
	"github.com/reelterm/reel/internal/domain"
)

func TestVideoStatusAnnotations(t *testing.T) {
	r := newRenderer(false)
	v := domain.NewVideo("cat1", "Amazing Cats", []string{"#cat"})

	if got := r.videoStatus(command.VideoStatus{Video: v}); strings.Contains(got, "PLAYING") {
		t.Fatalf("idle video must not be annotated, got %q", got)
	}
	if got := r.videoStatus(command.VideoStatus{Video: v, Playing: true}); !strings.HasSuffix(got, " - PLAYING") {
		t.Fatalf("got %q", got)
	}
	got := r.videoStatus(command.VideoStatus{Video: v, Playing: true, Paused: true})
	if !strings.HasSuffix(got, " - PAUSED") || strings.Contains(got, "PLAYING") {
		t.Fatalf("paused wins over playing, got %q", got)
	}

	v.Flag("too catty")
	got = r.videoStatus(command.VideoStatus{Video: v})
	if !strings.Contains(got, "FLAGGED (reason: too catty)") {
		t.Fatalf("got %q", got)
	}
}

func TestNowPlayingRendering(t *testing.T) {
	r := newRenderer(false)
	if got := r.nowPlaying(nil, false); got[0] != "No video is currently playing" {
		t.Fatalf("got %v", got)
	}

	v := domain.NewVideo("cat1", "Amazing Cats", []string{"#cat"})
	got := r.nowPlaying(v, true)
	if !strings.HasPrefix(got[0], "Currently playing: Amazing Cats (cat1)") || !strings.HasSuffix(got[0], " - PAUSED") {
		t.Fatalf("got %v", got)
	}
}

func TestPlaylistViewRendering(t *testing.T) {
	r := newRenderer(false)
	got := r.playlistView(command.PlaylistView{Name: "Fun"})
	if got[0] != "Showing playlist: Fun" || !strings.Contains(got[1], "No videos here yet") {
		t.Fatalf("got %v", got)
	}
}
