package session

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/reelterm/reel/internal/domain"
)

func newTestSession() *Session {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPlay_FromIdle(t *testing.T) {
	s := newTestSession()
	v := domain.NewVideo("cat1", "Amazing Cats", nil)

	stopped, err := s.Play(v)
	if err != nil {
		t.Fatal(err)
	}
	if stopped != nil {
		t.Fatalf("nothing was playing, got stopped=%v", stopped)
	}
	now, paused := s.Now()
	if now != v || paused {
		t.Fatalf("got now=%v paused=%v, want playing unpaused", now, paused)
	}
}

func TestPlay_ReplacesCurrent(t *testing.T) {
	s := newTestSession()
	first := domain.NewVideo("cat1", "Amazing Cats", nil)
	second := domain.NewVideo("dog2", "Funny Dogs", nil)

	s.Play(first)
	s.Pause()

	stopped, err := s.Play(second)
	if err != nil {
		t.Fatal(err)
	}
	if stopped != first {
		t.Fatalf("got stopped=%v, want the first video", stopped)
	}
	now, paused := s.Now()
	if now != second || paused {
		t.Fatal("replacement play must reset the paused flag")
	}
}

func TestPlay_FlaggedRejected(t *testing.T) {
	s := newTestSession()
	v := domain.NewVideo("cat1", "Amazing Cats", nil)
	v.Flag("dont")

	if _, err := s.Play(v); !errors.Is(err, domain.ErrVideoFlagged) {
		t.Fatalf("got %v, want ErrVideoFlagged", err)
	}
	if now, _ := s.Now(); now != nil {
		t.Fatal("rejected play must leave the session idle")
	}
}

func TestStop(t *testing.T) {
	s := newTestSession()
	v := domain.NewVideo("cat1", "Amazing Cats", nil)
	s.Play(v)

	stopped, err := s.Stop()
	if err != nil {
		t.Fatal(err)
	}
	if stopped != v {
		t.Fatalf("got stopped=%v, want the playing video", stopped)
	}
	if _, err := s.Stop(); !errors.Is(err, domain.ErrNothingPlaying) {
		t.Fatalf("got %v, want ErrNothingPlaying", err)
	}
}

func TestPause_IdempotentSafe(t *testing.T) {
	s := newTestSession()
	v := domain.NewVideo("cat1", "Amazing Cats", nil)
	s.Play(v)

	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}
	if err := s.Pause(); !errors.Is(err, domain.ErrAlreadyPaused) {
		t.Fatalf("got %v, want ErrAlreadyPaused", err)
	}
	if _, paused := s.Now(); !paused {
		t.Fatal("second pause must not change state")
	}
}

func TestPause_Idle(t *testing.T) {
	s := newTestSession()
	if err := s.Pause(); !errors.Is(err, domain.ErrNothingPlaying) {
		t.Fatalf("got %v, want ErrNothingPlaying", err)
	}
}

func TestContinue(t *testing.T) {
	s := newTestSession()
	v := domain.NewVideo("cat1", "Amazing Cats", nil)

	if err := s.Continue(); !errors.Is(err, domain.ErrNothingPlaying) {
		t.Fatalf("got %v, want ErrNothingPlaying", err)
	}

	s.Play(v)
	if err := s.Continue(); !errors.Is(err, domain.ErrNotPaused) {
		t.Fatalf("got %v, want ErrNotPaused", err)
	}

	s.Pause()
	if err := s.Continue(); err != nil {
		t.Fatal(err)
	}
	if _, paused := s.Now(); paused {
		t.Fatal("continue must clear the paused flag")
	}
}

func TestPausedNeverTrueWhileIdle(t *testing.T) {
	s := newTestSession()
	v := domain.NewVideo("cat1", "Amazing Cats", nil)
	s.Play(v)
	s.Pause()
	s.Stop()

	now, paused := s.Now()
	if now != nil || paused {
		t.Fatalf("got now=%v paused=%v, want idle unpaused", now, paused)
	}
}
