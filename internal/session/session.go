// Package session tracks the single playback slot: which video is playing,
// if any, and whether it is paused.
package session

import (
	"log/slog"

	"github.com/reelterm/reel/internal/domain"
)

// Session is a three-state machine: idle (nothing playing), playing, paused.
// Paused is only meaningful while a video is playing.
type Session struct {
	playing *domain.Video
	paused  bool
	logger  *slog.Logger
}

// New creates an idle session.
func New(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{logger: logger}
}

// Play starts the given video, implicitly stopping whatever was playing.
// It returns the video that was stopped, if any. A flagged video is rejected
// with domain.ErrVideoFlagged and leaves the session untouched.
func (s *Session) Play(v *domain.Video) (stopped *domain.Video, err error) {
	if v.Flagged() {
		return nil, domain.ErrVideoFlagged
	}
	stopped = s.playing
	s.playing = v
	s.paused = false
	s.logger.Info("playing video", "videoID", v.ID, "title", v.Title)
	return stopped, nil
}

// Stop clears the playback slot and returns the video that was playing.
// Fails with domain.ErrNothingPlaying when idle.
func (s *Session) Stop() (*domain.Video, error) {
	if s.playing == nil {
		return nil, domain.ErrNothingPlaying
	}
	stopped := s.playing
	s.playing = nil
	s.paused = false
	s.logger.Info("stopped video", "videoID", stopped.ID)
	return stopped, nil
}

// Pause pauses the playing video. Fails with domain.ErrNothingPlaying when
// idle and domain.ErrAlreadyPaused when already paused; state is unchanged in
// both cases.
func (s *Session) Pause() error {
	if s.playing == nil {
		return domain.ErrNothingPlaying
	}
	if s.paused {
		return domain.ErrAlreadyPaused
	}
	s.paused = true
	s.logger.Debug("paused video", "videoID", s.playing.ID)
	return nil
}

// Continue resumes a paused video. Fails with domain.ErrNothingPlaying when
// idle and domain.ErrNotPaused when playing unpaused.
func (s *Session) Continue() error {
	if s.playing == nil {
		return domain.ErrNothingPlaying
	}
	if !s.paused {
		return domain.ErrNotPaused
	}
	s.paused = false
	s.logger.Debug("continued video", "videoID", s.playing.ID)
	return nil
}

// Now returns the playing video and the paused flag. The video is nil when
// the session is idle, and paused is false whenever the video is nil.
func (s *Session) Now() (*domain.Video, bool) {
	return s.playing, s.paused
}
