// Package command implements the user-facing catalog operations. Each
// operation validates its preconditions in a fixed order, fails on the first
// violated one without mutating anything, and otherwise mutates and returns a
// structured result for the shell to render.
package command

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/reelterm/reel/internal/catalog"
	"github.com/reelterm/reel/internal/domain"
	"github.com/reelterm/reel/internal/playlist"
	"github.com/reelterm/reel/internal/search"
	"github.com/reelterm/reel/internal/session"
)

// Service orchestrates the catalog, playlist registry and playback session.
// One instance owns all mutable state; construct a fresh one per process (or
// per test).
type Service struct {
	catalog   *catalog.Catalog
	playlists *playlist.Registry
	session   *session.Session
	search    *search.Service
	rng       *rand.Rand
	logger    *slog.Logger

	lastSearch []*domain.Video
}

// NewService creates a command service over the given catalog. A nil rng gets
// a time-seeded source; tests pass a fixed seed for deterministic PlayRandom.
func NewService(c *catalog.Catalog, rng *rand.Rand, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		catalog:   c,
		playlists: playlist.NewRegistry(),
		session:   session.New(logger),
		search:    search.NewService(c, logger),
		rng:       rng,
		logger:    logger,
	}
}

// --- Playback ---

// Play starts the video with the given id, implicitly stopping any current
// one. Fails when the id is unknown or the video is flagged.
func (s *Service) Play(id string) (PlayResult, error) {
	v, ok := s.catalog.Get(id)
	if !ok {
		return PlayResult{}, domain.ErrVideoNotFound
	}
	if v.Flagged() {
		return PlayResult{}, flaggedErr(v)
	}
	stopped, err := s.session.Play(v)
	if err != nil {
		return PlayResult{}, err
	}
	return PlayResult{Video: v, Stopped: stopped}, nil
}

// PlayRandom plays a uniformly random non-flagged video. Fails with
// domain.ErrNoVideosAvailable when every video is flagged or the catalog is
// empty.
func (s *Service) PlayRandom() (PlayResult, error) {
	candidates := s.catalog.NonFlagged()
	if len(candidates) == 0 {
		return PlayResult{}, domain.ErrNoVideosAvailable
	}
	pick := candidates[s.rng.Intn(len(candidates))]
	return s.Play(pick.ID)
}

// Stop stops the current video and returns it.
func (s *Service) Stop() (*domain.Video, error) {
	return s.session.Stop()
}

// Pause pauses the current video. The returned video is the one playing, set
// even when the call fails because it is already paused.
func (s *Service) Pause() (*domain.Video, error) {
	v, _ := s.session.Now()
	return v, s.session.Pause()
}

// Continue resumes a paused video. As with Pause, the playing video is
// returned alongside any failure.
func (s *Service) Continue() (*domain.Video, error) {
	v, _ := s.session.Now()
	return v, s.session.Continue()
}

// NowPlaying returns the current video and paused flag; the video is nil when
// idle.
func (s *Service) NowPlaying() (*domain.Video, bool) {
	return s.session.Now()
}

// --- Flagging ---

// Flag marks a video unavailable, with an optional reason. Flagging the
// currently playing video forces the session to stop.
func (s *Service) Flag(id, reason string) (FlagResult, error) {
	v, ok := s.catalog.Get(id)
	if !ok {
		return FlagResult{}, domain.ErrVideoNotFound
	}
	if v.Flagged() {
		return FlagResult{}, domain.ErrAlreadyFlagged
	}
	v.Flag(reason)
	s.logger.Info("flagged video", "videoID", id, "reason", v.FlagReasonOrDefault())

	stopped := false
	if playing, _ := s.session.Now(); playing != nil && playing.ID == id {
		s.session.Stop()
		stopped = true
	}
	return FlagResult{Video: v, StoppedPlayback: stopped}, nil
}

// Unflag clears a video's flag and reason.
func (s *Service) Unflag(id string) (*domain.Video, error) {
	v, ok := s.catalog.Get(id)
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	if !v.Flagged() {
		return nil, domain.ErrNotFlagged
	}
	v.ClearFlag()
	s.logger.Info("removed flag from video", "videoID", id)
	return v, nil
}

// --- Playlists ---

// CreatePlaylist creates an empty playlist, preserving the given casing.
func (s *Service) CreatePlaylist(name string) (*playlist.Playlist, error) {
	p, err := s.playlists.Create(name)
	if err != nil {
		return nil, err
	}
	s.logger.Info("created playlist", "name", name)
	return p, nil
}

// AddToPlaylist adds a video to a playlist. Checked in order: playlist
// exists, video exists, video not flagged, video not already present.
func (s *Service) AddToPlaylist(playlistName, id string) (*domain.Video, error) {
	p, ok := s.playlists.Find(playlistName)
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	v, ok := s.catalog.Get(id)
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	if v.Flagged() {
		return nil, flaggedErr(v)
	}
	if !p.Add(id) {
		return nil, domain.ErrAlreadyInPlaylist
	}
	s.logger.Info("added video to playlist", "playlist", p.Name(), "videoID", id)
	return v, nil
}

// RemoveFromPlaylist removes a video from a playlist.
func (s *Service) RemoveFromPlaylist(playlistName, id string) (*domain.Video, error) {
	p, ok := s.playlists.Find(playlistName)
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	v, ok := s.catalog.Get(id)
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	if !p.Remove(id) {
		return nil, domain.ErrNotInPlaylist
	}
	s.logger.Info("removed video from playlist", "playlist", p.Name(), "videoID", id)
	return v, nil
}

// ClearPlaylist removes all videos from a playlist.
func (s *Service) ClearPlaylist(playlistName string) error {
	p, ok := s.playlists.Find(playlistName)
	if !ok {
		return domain.ErrPlaylistNotFound
	}
	p.Clear()
	s.logger.Info("cleared playlist", "playlist", p.Name())
	return nil
}

// DeletePlaylist deletes a playlist entirely.
func (s *Service) DeletePlaylist(playlistName string) error {
	if err := s.playlists.Delete(playlistName); err != nil {
		return err
	}
	s.logger.Info("deleted playlist", "playlist", playlistName)
	return nil
}

// ListPlaylists returns all playlists in unspecified order.
func (s *Service) ListPlaylists() []*playlist.Playlist {
	return s.playlists.All()
}

// ShowPlaylist resolves a playlist's videos in insertion order. Flagged
// videos stay listed; the shell annotates them.
func (s *Service) ShowPlaylist(playlistName string) (PlaylistView, error) {
	p, ok := s.playlists.Find(playlistName)
	if !ok {
		return PlaylistView{}, domain.ErrPlaylistNotFound
	}
	view := PlaylistView{Name: p.Name()}
	for _, id := range p.VideoIDs() {
		if v, ok := s.catalog.Get(id); ok {
			view.Videos = append(view.Videos, v)
		}
	}
	return view, nil
}

// --- Search ---

// Search returns the non-flagged videos whose title contains term, sorted by
// title. The result list is remembered for SelectAndPlay.
func (s *Service) Search(term string) []*domain.Video {
	s.lastSearch = s.search.Titles(term)
	return s.lastSearch
}

// SearchByTag returns the non-flagged videos carrying the tag, sorted by
// title. The result list is remembered for SelectAndPlay.
func (s *Service) SearchByTag(tag string) []*domain.Video {
	s.lastSearch = s.search.Tag(tag)
	return s.lastSearch
}

// Suggest returns fuzzy title suggestions for a term that found nothing.
func (s *Service) Suggest(term string, max int) []string {
	return s.search.Suggest(term, max)
}

// SelectAndPlay plays the n-th (1-based) result of the most recent search.
// An out-of-range n is not an error: ok is false and nothing happens. The
// play itself can still fail, e.g. when the video was flagged after the
// search.
func (s *Service) SelectAndPlay(n int) (PlayResult, bool, error) {
	if n < 1 || n > len(s.lastSearch) {
		return PlayResult{}, false, nil
	}
	res, err := s.Play(s.lastSearch[n-1].ID)
	return res, true, err
}

// --- Listing ---

// NumberOfVideos returns the library size.
func (s *Service) NumberOfVideos() int {
	return s.catalog.Len()
}

// ListVideos returns every video sorted case-insensitively by title, each
// annotated with its derived playing/paused state.
func (s *Service) ListVideos() []VideoStatus {
	playing, paused := s.session.Now()
	videos := s.catalog.All()
	sort.SliceStable(videos, func(i, j int) bool {
		return strings.ToLower(videos[i].Title) < strings.ToLower(videos[j].Title)
	})
	out := make([]VideoStatus, len(videos))
	for i, v := range videos {
		out[i] = VideoStatus{
			Video:   v,
			Playing: playing != nil && playing.ID == v.ID,
			Paused:  playing != nil && playing.ID == v.ID && paused,
		}
	}
	return out
}

// flaggedErr wraps ErrVideoFlagged with the video's reason text so the shell
// can show it verbatim.
func flaggedErr(v *domain.Video) error {
	return fmt.Errorf("%w (reason: %s)", domain.ErrVideoFlagged, v.FlagReasonOrDefault())
}
