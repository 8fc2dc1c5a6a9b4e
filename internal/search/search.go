// Package search filters the catalog's non-flagged videos by title or tag.
package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/reelterm/reel/internal/catalog"
	"github.com/reelterm/reel/internal/domain"
)

// Service answers title and tag searches against the catalog.
type Service struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewService creates a new search service.
func NewService(c *catalog.Catalog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{catalog: c, logger: logger}
}

// Titles returns the non-flagged videos whose title contains term,
// case-insensitively, sorted by title (ties keep catalog order).
func (s *Service) Titles(term string) []*domain.Video {
	needle := strings.ToLower(term)
	var results []*domain.Video
	for _, v := range s.catalog.NonFlagged() {
		if strings.Contains(strings.ToLower(v.Title), needle) {
			results = append(results, v)
		}
	}
	sortByTitle(results)
	s.logger.Debug("title search", "term", term, "count", len(results))
	return results
}

// Tag returns the non-flagged videos carrying the tag, compared
// case-insensitively. A tag that does not start with '#' matches nothing;
// that is the documented query syntax, not an error.
func (s *Service) Tag(tag string) []*domain.Video {
	if !strings.HasPrefix(tag, "#") {
		return nil
	}
	var results []*domain.Video
	for _, v := range s.catalog.NonFlagged() {
		if v.HasTag(tag) {
			results = append(results, v)
		}
	}
	sortByTitle(results)
	s.logger.Debug("tag search", "tag", tag, "count", len(results))
	return results
}

// Suggest returns up to max titles that fuzzily match term, best first. The
// shell uses it for a "did you mean" hint when an exact search comes up empty.
func (s *Service) Suggest(term string, max int) []string {
	videos := s.catalog.NonFlagged()
	titles := make([]string, len(videos))
	for i, v := range videos {
		titles[i] = v.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(term, titles)
	sort.Sort(ranks)

	var out []string
	for _, r := range ranks {
		if len(out) >= max {
			break
		}
		out = append(out, r.Target)
	}
	return out
}

// sortByTitle sorts case-insensitively by title, keeping the incoming
// (catalog) order for equal titles.
func sortByTitle(videos []*domain.Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		return strings.ToLower(videos[i].Title) < strings.ToLower(videos[j].Title)
	})
}
