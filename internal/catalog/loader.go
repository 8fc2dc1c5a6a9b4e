package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/reelterm/reel/internal/domain"
)

// LoadFile reads a library file and builds a catalog from it. Each line has
// three pipe-separated fields: title|id|tag,tag,... The tags field may be
// empty. Blank lines are skipped.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library file: %w", err)
	}
	defer f.Close()

	var videos []*domain.Video
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("library file %s line %d: %w", path, lineNum, err)
		}
		videos = append(videos, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read library file: %w", err)
	}
	return New(videos), nil
}

// parseLine parses a single title|id|tags record.
func parseLine(line string) (*domain.Video, error) {
	fields := strings.Split(line, "|")
	if len(fields) < 2 {
		return nil, fmt.Errorf("expected title|id|tags, got %q", line)
	}
	title := strings.TrimSpace(fields[0])
	id := strings.TrimSpace(fields[1])
	if title == "" || id == "" {
		return nil, fmt.Errorf("empty title or id in %q", line)
	}

	var tags []string
	if len(fields) >= 3 {
		for _, t := range strings.Split(fields[2], ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				tags = append(tags, t)
			}
		}
	}
	return domain.NewVideo(id, title, tags), nil
}

// Default returns the built-in sample library, used when no library file is
// configured.
func Default() *Catalog {
	return New([]*domain.Video{
		domain.NewVideo("funny_dogs_video_id", "Funny Dogs", []string{"#dog", "#animal"}),
		domain.NewVideo("amazing_cats_video_id", "Amazing Cats", []string{"#cat", "#animal"}),
		domain.NewVideo("another_cat_video_id", "Another Cat Video", []string{"#cat", "#animal"}),
		domain.NewVideo("life_at_google_video_id", "Life at Google", []string{"#google", "#career"}),
		domain.NewVideo("nothing_video_id", "Video about nothing", nil),
	})
}
