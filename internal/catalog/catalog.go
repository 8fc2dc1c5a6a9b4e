// Package catalog holds the fixed library of videos loaded at startup.
// Membership never changes at runtime; only per-video flag state does.
package catalog

import (
	"github.com/reelterm/reel/internal/domain"
)

// Catalog maps video ids to videos and remembers load order so that callers
// can use it as a stable tie-break when sorting.
type Catalog struct {
	byID  map[string]*domain.Video
	order []*domain.Video
}

// New builds a catalog from the given videos. A duplicate id keeps the first
// occurrence and drops the rest.
func New(videos []*domain.Video) *Catalog {
	c := &Catalog{byID: make(map[string]*domain.Video, len(videos))}
	for _, v := range videos {
		if _, exists := c.byID[v.ID]; exists {
			continue
		}
		c.byID[v.ID] = v
		c.order = append(c.order, v)
	}
	return c
}

// Get looks up a video by exact, case-sensitive id.
func (c *Catalog) Get(id string) (*domain.Video, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// All returns every video in load order. The slice is a copy; the videos are
// the shared instances.
func (c *Catalog) All() []*domain.Video {
	out := make([]*domain.Video, len(c.order))
	copy(out, c.order)
	return out
}

// NonFlagged returns the videos currently available for playback, in load order.
func (c *Catalog) NonFlagged() []*domain.Video {
	var out []*domain.Video
	for _, v := range c.order {
		if !v.Flagged() {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of videos in the library.
func (c *Catalog) Len() int {
	return len(c.order)
}
