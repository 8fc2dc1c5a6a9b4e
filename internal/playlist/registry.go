package playlist

import (
	"strings"

	"github.com/reelterm/reel/internal/domain"
)

// Registry owns all playlists and enforces case-insensitive unique naming.
// Keys are lowercased names; the playlists keep their display casing.
type Registry struct {
	byName map[string]*Playlist
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Playlist)}
}

// Create adds an empty playlist with the given name. It fails with
// domain.ErrDuplicatePlaylist when a case-insensitively equal name exists.
func (r *Registry) Create(name string) (*Playlist, error) {
	key := strings.ToLower(name)
	if _, exists := r.byName[key]; exists {
		return nil, domain.ErrDuplicatePlaylist
	}
	p := New(name)
	r.byName[key] = p
	return p, nil
}

// Find resolves a name case-insensitively.
func (r *Registry) Find(name string) (*Playlist, bool) {
	p, ok := r.byName[strings.ToLower(name)]
	return p, ok
}

// Delete removes the playlist with the given name, or fails with
// domain.ErrPlaylistNotFound.
func (r *Registry) Delete(name string) error {
	key := strings.ToLower(name)
	if _, exists := r.byName[key]; !exists {
		return domain.ErrPlaylistNotFound
	}
	delete(r.byName, key)
	return nil
}

// All returns every playlist in unspecified order. Display code sorts by name.
func (r *Registry) All() []*Playlist {
	out := make([]*Playlist, 0, len(r.byName))
	for _, p := range r.byName {
		out = append(out, p)
	}
	return out
}

// Len returns the number of playlists.
func (r *Registry) Len() int {
	return len(r.byName)
}
