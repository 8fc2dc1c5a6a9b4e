package domain

import "errors"

// Sentinel errors for catalog, playlist and playback operations. Every failure
// the command service reports wraps one of these; callers branch with errors.Is.
var (
	// ErrVideoNotFound indicates the requested video id does not exist.
	ErrVideoNotFound = errors.New("video does not exist")

	// ErrPlaylistNotFound indicates no playlist has the given name.
	ErrPlaylistNotFound = errors.New("playlist does not exist")

	// ErrDuplicatePlaylist indicates a playlist with the same name already
	// exists (names compare case-insensitively).
	ErrDuplicatePlaylist = errors.New("a playlist with the same name already exists")

	// ErrVideoFlagged indicates the operation is blocked because the target
	// video is flagged.
	ErrVideoFlagged = errors.New("video is currently flagged")

	// ErrAlreadyFlagged indicates the video is already flagged.
	ErrAlreadyFlagged = errors.New("video is already flagged")

	// ErrNotFlagged indicates the video is not flagged.
	ErrNotFlagged = errors.New("video is not flagged")

	// ErrNothingPlaying indicates no video is currently playing.
	ErrNothingPlaying = errors.New("no video is currently playing")

	// ErrAlreadyPaused indicates the playing video is already paused.
	ErrAlreadyPaused = errors.New("video already paused")

	// ErrNotPaused indicates the playing video is not paused.
	ErrNotPaused = errors.New("video is not paused")

	// ErrAlreadyInPlaylist indicates the video is already in the playlist.
	ErrAlreadyInPlaylist = errors.New("video already added")

	// ErrNotInPlaylist indicates the video is not in the playlist.
	ErrNotInPlaylist = errors.New("video is not in playlist")

	// ErrNoVideosAvailable indicates no non-flagged videos exist to play.
	ErrNoVideosAvailable = errors.New("no videos available")
)
