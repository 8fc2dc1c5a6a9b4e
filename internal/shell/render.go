package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reelterm/reel/internal/command"
	"github.com/reelterm/reel/internal/domain"
	"github.com/reelterm/reel/internal/playlist"
)

// renderer turns structured command results into display lines. All methods
// are pure; the shell model appends their output to its scrollback.
type renderer struct {
	st styleSet
}

func newRenderer(color bool) renderer {
	return renderer{st: newStyleSet(color)}
}

func (r renderer) ok(line string) string {
	return r.st.Success.Render(line)
}

func (r renderer) fail(line string) string {
	return r.st.Error.Render(line)
}

func (r renderer) dim(line string) string {
	return r.st.Dim.Render(line)
}

// flagNote renders the " - FLAGGED (reason: ...)" suffix for a flagged video.
func flagNote(v *domain.Video) string {
	if !v.Flagged() {
		return ""
	}
	return fmt.Sprintf(" - FLAGGED (reason: %s)", v.FlagReasonOrDefault())
}

// playOutcome renders a successful play, including the implicit stop.
func (r renderer) playOutcome(res command.PlayResult) []string {
	var lines []string
	if res.Stopped != nil {
		lines = append(lines, r.ok("Stopping video: "+res.Stopped.Title))
	}
	lines = append(lines, r.ok("Playing video: "+res.Video.Title))
	return lines
}

// videoStatus renders one line of SHOW_ALL_VIDEOS output.
func (r renderer) videoStatus(vs command.VideoStatus) string {
	line := vs.Video.Label()
	switch {
	case vs.Paused:
		line += " - PAUSED"
	case vs.Playing:
		line += " - PLAYING"
	}
	line += flagNote(vs.Video)
	return line
}

// allVideos renders the SHOW_ALL_VIDEOS listing.
func (r renderer) allVideos(statuses []command.VideoStatus) []string {
	if len(statuses) == 0 {
		return []string{r.dim("No videos available")}
	}
	lines := []string{"Here's a list of all available videos:"}
	for _, vs := range statuses {
		lines = append(lines, "  "+r.videoStatus(vs))
	}
	return lines
}

// nowPlaying renders the SHOW_PLAYING output.
func (r renderer) nowPlaying(v *domain.Video, paused bool) []string {
	if v == nil {
		return []string{r.dim("No video is currently playing")}
	}
	line := "Currently playing: " + v.Label()
	if paused {
		line += " - PAUSED"
	}
	return []string{line}
}

// playlistNames renders SHOW_ALL_PLAYLISTS, sorted case-insensitively.
func (r renderer) playlistNames(playlists []*playlist.Playlist) []string {
	if len(playlists) == 0 {
		return []string{r.dim("No playlists exist yet")}
	}
	names := make([]string, len(playlists))
	for i, p := range playlists {
		names[i] = p.Name()
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	lines := []string{"Showing all playlists:"}
	for _, name := range names {
		lines = append(lines, "  "+name)
	}
	return lines
}

// playlistView renders SHOW_PLAYLIST.
func (r renderer) playlistView(view command.PlaylistView) []string {
	lines := []string{"Showing playlist: " + view.Name}
	if len(view.Videos) == 0 {
		return append(lines, r.dim("  No videos here yet"))
	}
	for _, v := range view.Videos {
		lines = append(lines, "  "+v.Label()+flagNote(v))
	}
	return lines
}

// searchResults renders the numbered result list and the selection prompt.
// Empty results render the no-results line plus optional suggestions.
func (r renderer) searchResults(term string, results []*domain.Video, suggestions []string) []string {
	if len(results) == 0 {
		lines := []string{r.dim("No search results for " + term)}
		if len(suggestions) > 0 {
			lines = append(lines, r.dim("Did you mean: "+strings.Join(suggestions, ", ")+"?"))
		}
		return lines
	}
	lines := []string{"Here are the results for " + term + ":"}
	for i, v := range results {
		lines = append(lines, fmt.Sprintf("  %d) %s", i+1, v.Label()))
	}
	lines = append(lines,
		r.dim("Would you like to play any of the above? If yes, specify the number of the video."),
		r.dim("If your answer is not a valid number, we will assume it's a no."),
	)
	return lines
}

// flagOutcome renders a successful FLAG_VIDEO, including the forced stop.
func (r renderer) flagOutcome(res command.FlagResult) []string {
	var lines []string
	if res.StoppedPlayback {
		lines = append(lines, r.ok("Stopping video: "+res.Video.Title))
	}
	lines = append(lines, r.ok(fmt.Sprintf("Successfully flagged video: %s (reason: %s)",
		res.Video.Title, res.Video.FlagReasonOrDefault())))
	return lines
}
