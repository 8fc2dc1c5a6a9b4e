// Package playlist provides named, ordered, duplicate-free collections of
// video references and the registry that owns them.
package playlist

// Playlist is a named ordered list of video ids. It stores ids rather than
// videos; callers resolve them against the catalog on demand, so a playlist
// never owns or aliases video state.
type Playlist struct {
	name string
	ids  []string
}

// New creates an empty playlist. The given casing is preserved for display.
func New(name string) *Playlist {
	return &Playlist{name: name}
}

// Name returns the playlist name with its original casing.
func (p *Playlist) Name() string {
	return p.name
}

// Add appends the video id and returns true, or returns false without
// mutation when the id is already present.
func (p *Playlist) Add(videoID string) bool {
	if p.Contains(videoID) {
		return false
	}
	p.ids = append(p.ids, videoID)
	return true
}

// Remove deletes the video id and returns true, or returns false when absent.
func (p *Playlist) Remove(videoID string) bool {
	for i, id := range p.ids {
		if id == videoID {
			p.ids = append(p.ids[:i], p.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all videos.
func (p *Playlist) Clear() {
	p.ids = nil
}

// Contains reports membership by exact video id.
func (p *Playlist) Contains(videoID string) bool {
	for _, id := range p.ids {
		if id == videoID {
			return true
		}
	}
	return false
}

// VideoIDs returns the ids in insertion order.
func (p *Playlist) VideoIDs() []string {
	out := make([]string, len(p.ids))
	copy(out, p.ids)
	return out
}

// Len returns the number of videos in the playlist.
func (p *Playlist) Len() int {
	return len(p.ids)
}
