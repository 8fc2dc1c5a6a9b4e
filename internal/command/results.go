package command

import "github.com/reelterm/reel/internal/domain"

// PlayResult reports the outcome of a successful play operation.
type PlayResult struct {
	Video   *domain.Video // The video now playing
	Stopped *domain.Video // The video that was implicitly stopped, if any
}

// VideoStatus annotates a video with its derived display state.
type VideoStatus struct {
	Video   *domain.Video
	Playing bool
	Paused  bool
}

// FlagResult reports a successful flag operation.
type FlagResult struct {
	Video           *domain.Video
	StoppedPlayback bool // True when flagging forced the session to stop
}

// PlaylistView is a playlist resolved to its videos, in insertion order.
type PlaylistView struct {
	Name   string
	Videos []*domain.Video
}
