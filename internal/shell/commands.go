package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/reelterm/reel/internal/command"
	"github.com/reelterm/reel/internal/domain"
)

const maxSuggestions = 3

// commandSpec describes one shell command for dispatch and help output.
type commandSpec struct {
	name    string
	usage   string
	minArgs int
	help    string
}

// Command vocabulary, in help order.
var commands = []commandSpec{
	{"NUMBER_OF_VIDEOS", "NUMBER_OF_VIDEOS", 0, "Shows how many videos are in the library."},
	{"SHOW_ALL_VIDEOS", "SHOW_ALL_VIDEOS", 0, "Lists all videos in the library."},
	{"PLAY", "PLAY <video_id>", 1, "Plays the specified video."},
	{"PLAY_RANDOM", "PLAY_RANDOM", 0, "Plays a random video."},
	{"STOP", "STOP", 0, "Stops the current video."},
	{"PAUSE", "PAUSE", 0, "Pauses the current video."},
	{"CONTINUE", "CONTINUE", 0, "Resumes the current paused video."},
	{"SHOW_PLAYING", "SHOW_PLAYING", 0, "Shows the video that is currently playing."},
	{"CREATE_PLAYLIST", "CREATE_PLAYLIST <playlist_name>", 1, "Creates a new (empty) playlist."},
	{"ADD_TO_PLAYLIST", "ADD_TO_PLAYLIST <playlist_name> <video_id>", 2, "Adds a video to a playlist."},
	{"REMOVE_FROM_PLAYLIST", "REMOVE_FROM_PLAYLIST <playlist_name> <video_id>", 2, "Removes a video from a playlist."},
	{"CLEAR_PLAYLIST", "CLEAR_PLAYLIST <playlist_name>", 1, "Removes all videos from a playlist."},
	{"DELETE_PLAYLIST", "DELETE_PLAYLIST <playlist_name>", 1, "Deletes a playlist."},
	{"SHOW_ALL_PLAYLISTS", "SHOW_ALL_PLAYLISTS", 0, "Lists all playlists."},
	{"SHOW_PLAYLIST", "SHOW_PLAYLIST <playlist_name>", 1, "Shows the videos in a playlist."},
	{"SEARCH_VIDEOS", "SEARCH_VIDEOS <search_term>", 1, "Searches video titles for a term."},
	{"SEARCH_VIDEOS_WITH_TAG", "SEARCH_VIDEOS_WITH_TAG <#tag>", 1, "Searches videos by tag."},
	{"FLAG_VIDEO", "FLAG_VIDEO <video_id> [reason]", 1, "Flags a video, making it unavailable."},
	{"ALLOW_VIDEO", "ALLOW_VIDEO <video_id>", 1, "Removes the flag from a video."},
	{"HELP", "HELP", 0, "Shows this help."},
	{"EXIT", "EXIT", 0, "Exits the shell."},
}

func findCommand(name string) (commandSpec, bool) {
	upper := strings.ToUpper(name)
	for _, c := range commands {
		if c.name == upper {
			return c, true
		}
	}
	return commandSpec{}, false
}

// executor dispatches parsed input lines to the command service and renders
// the structured outcomes. It holds the one piece of shell-side state: whether
// a numbered search selection is pending.
type executor struct {
	svc           *command.Service
	render        renderer
	pendingSelect bool
}

func newExecutor(svc *command.Service, color bool) *executor {
	return &executor{svc: svc, render: newRenderer(color)}
}

// Execute runs one input line and returns the display lines plus whether the
// shell should quit.
func (e *executor) Execute(input string) (lines []string, quit bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, false
	}

	// A pending search selection consumes a bare integer; anything else
	// cancels it and is processed as a command.
	if e.pendingSelect {
		e.pendingSelect = false
		if n, err := strconv.Atoi(fields[0]); err == nil && len(fields) == 1 {
			return e.selectAndPlay(n), false
		}
	}

	spec, ok := findCommand(fields[0])
	if !ok {
		return e.unknownCommand(fields[0]), false
	}
	args := fields[1:]
	if len(args) < spec.minArgs {
		return []string{e.render.fail("Usage: " + spec.usage)}, false
	}

	switch spec.name {
	case "NUMBER_OF_VIDEOS":
		return []string{fmt.Sprintf("%d videos in the library", e.svc.NumberOfVideos())}, false
	case "SHOW_ALL_VIDEOS":
		return e.render.allVideos(e.svc.ListVideos()), false
	case "PLAY":
		return e.play(args[0]), false
	case "PLAY_RANDOM":
		return e.playRandom(), false
	case "STOP":
		return e.stop(), false
	case "PAUSE":
		return e.pause(), false
	case "CONTINUE":
		return e.continueVideo(), false
	case "SHOW_PLAYING":
		v, paused := e.svc.NowPlaying()
		return e.render.nowPlaying(v, paused), false
	case "CREATE_PLAYLIST":
		return e.createPlaylist(args[0]), false
	case "ADD_TO_PLAYLIST":
		return e.addToPlaylist(args[0], args[1]), false
	case "REMOVE_FROM_PLAYLIST":
		return e.removeFromPlaylist(args[0], args[1]), false
	case "CLEAR_PLAYLIST":
		return e.clearPlaylist(args[0]), false
	case "DELETE_PLAYLIST":
		return e.deletePlaylist(args[0]), false
	case "SHOW_ALL_PLAYLISTS":
		return e.render.playlistNames(e.svc.ListPlaylists()), false
	case "SHOW_PLAYLIST":
		return e.showPlaylist(args[0]), false
	case "SEARCH_VIDEOS":
		return e.search(strings.Join(args, " ")), false
	case "SEARCH_VIDEOS_WITH_TAG":
		return e.searchByTag(args[0]), false
	case "FLAG_VIDEO":
		return e.flag(args[0], strings.Join(args[1:], " ")), false
	case "ALLOW_VIDEO":
		return e.unflag(args[0]), false
	case "HELP":
		return e.help(), false
	case "EXIT":
		return []string{e.render.dim("Goodbye!")}, true
	}
	return nil, false
}

func (e *executor) play(id string) []string {
	res, err := e.svc.Play(id)
	if err != nil {
		return []string{e.render.fail("Cannot play video: " + err.Error())}
	}
	return e.render.playOutcome(res)
}

func (e *executor) playRandom() []string {
	res, err := e.svc.PlayRandom()
	if err != nil {
		return []string{e.render.dim("No videos available")}
	}
	return e.render.playOutcome(res)
}

func (e *executor) stop() []string {
	v, err := e.svc.Stop()
	if err != nil {
		return []string{e.render.fail("Cannot stop video: " + err.Error())}
	}
	return []string{e.render.ok("Stopping video: " + v.Title)}
}

func (e *executor) pause() []string {
	v, err := e.svc.Pause()
	switch {
	case err == nil:
		return []string{e.render.ok("Pausing video: " + v.Title)}
	case errors.Is(err, domain.ErrAlreadyPaused):
		return []string{e.render.dim("Video already paused: " + v.Title)}
	default:
		return []string{e.render.fail("Cannot pause video: " + err.Error())}
	}
}

func (e *executor) continueVideo() []string {
	v, err := e.svc.Continue()
	if err != nil {
		return []string{e.render.fail("Cannot continue video: " + err.Error())}
	}
	return []string{e.render.ok("Continuing video: " + v.Title)}
}

func (e *executor) createPlaylist(name string) []string {
	p, err := e.svc.CreatePlaylist(name)
	if err != nil {
		return []string{e.render.fail("Cannot create playlist: " + err.Error())}
	}
	return []string{e.render.ok("Successfully created new playlist: " + p.Name())}
}

func (e *executor) addToPlaylist(name, id string) []string {
	v, err := e.svc.AddToPlaylist(name, id)
	if err != nil {
		return []string{e.render.fail(fmt.Sprintf("Cannot add video to %s: %s", name, err))}
	}
	return []string{e.render.ok(fmt.Sprintf("Added video to %s: %s", name, v.Title))}
}

func (e *executor) removeFromPlaylist(name, id string) []string {
	v, err := e.svc.RemoveFromPlaylist(name, id)
	if err != nil {
		return []string{e.render.fail(fmt.Sprintf("Cannot remove video from %s: %s", name, err))}
	}
	return []string{e.render.ok(fmt.Sprintf("Removed video from %s: %s", name, v.Title))}
}

func (e *executor) clearPlaylist(name string) []string {
	if err := e.svc.ClearPlaylist(name); err != nil {
		return []string{e.render.fail(fmt.Sprintf("Cannot clear playlist %s: %s", name, err))}
	}
	return []string{e.render.ok("Successfully removed all videos from " + name)}
}

func (e *executor) deletePlaylist(name string) []string {
	if err := e.svc.DeletePlaylist(name); err != nil {
		return []string{e.render.fail(fmt.Sprintf("Cannot delete playlist %s: %s", name, err))}
	}
	return []string{e.render.ok("Deleted playlist: " + name)}
}

func (e *executor) showPlaylist(name string) []string {
	view, err := e.svc.ShowPlaylist(name)
	if err != nil {
		return []string{e.render.fail(fmt.Sprintf("Cannot show playlist %s: %s", name, err))}
	}
	return e.render.playlistView(view)
}

func (e *executor) search(term string) []string {
	results := e.svc.Search(term)
	var suggestions []string
	if len(results) == 0 {
		suggestions = e.svc.Suggest(term, maxSuggestions)
	}
	e.pendingSelect = len(results) > 0
	return e.render.searchResults(term, results, suggestions)
}

func (e *executor) searchByTag(tag string) []string {
	results := e.svc.SearchByTag(tag)
	e.pendingSelect = len(results) > 0
	return e.render.searchResults(tag, results, nil)
}

func (e *executor) selectAndPlay(n int) []string {
	res, ok, err := e.svc.SelectAndPlay(n)
	if !ok {
		return nil
	}
	if err != nil {
		return []string{e.render.fail("Cannot play video: " + err.Error())}
	}
	return e.render.playOutcome(res)
}

func (e *executor) flag(id, reason string) []string {
	res, err := e.svc.Flag(id, reason)
	if err != nil {
		return []string{e.render.fail("Cannot flag video: " + err.Error())}
	}
	return e.render.flagOutcome(res)
}

func (e *executor) unflag(id string) []string {
	v, err := e.svc.Unflag(id)
	if err != nil {
		return []string{e.render.fail("Cannot remove flag from video: " + err.Error())}
	}
	return []string{e.render.ok("Successfully removed flag from video: " + v.Title)}
}

func (e *executor) help() []string {
	lines := []string{"Available commands:"}
	for _, c := range commands {
		lines = append(lines, fmt.Sprintf("  %-45s %s", c.usage, c.help))
	}
	return lines
}

// unknownCommand reports an invalid command with a fuzzy "did you mean".
func (e *executor) unknownCommand(name string) []string {
	lines := []string{e.render.fail("Please enter a valid command")}
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.name
	}
	matches := fuzzy.Find(strings.ToUpper(name), names)
	if len(matches) > 0 {
		lines = append(lines, e.render.dim("Did you mean "+matches[0].Str+"?"))
	}
	return lines
}
