package domain

import (
	"fmt"
	"strings"
)

// DefaultFlagReason is shown when a video was flagged without a reason.
const DefaultFlagReason = "Not supplied"

// Video represents a single catalog entry. ID, Title and Tags are fixed at
// load time; only the flag state changes afterwards.
type Video struct {
	ID    string   // Unique identifier, case-sensitive
	Title string   // Display title
	Tags  []string // Ordered tags, each starting with '#'

	flagged    bool
	flagReason string
}

// NewVideo creates a video with the given immutable attributes.
func NewVideo(id, title string, tags []string) *Video {
	return &Video{ID: id, Title: title, Tags: tags}
}

// Flagged reports whether the video is currently flagged.
func (v *Video) Flagged() bool {
	return v.flagged
}

// FlagReason returns the raw stored reason, empty when none was supplied.
func (v *Video) FlagReason() string {
	return v.flagReason
}

// FlagReasonOrDefault returns the stored reason, or DefaultFlagReason when the
// video was flagged without one.
func (v *Video) FlagReasonOrDefault() string {
	if v.flagReason != "" {
		return v.flagReason
	}
	return DefaultFlagReason
}

// Flag marks the video unavailable. An empty reason is kept empty; display
// code substitutes DefaultFlagReason.
func (v *Video) Flag(reason string) {
	v.flagged = true
	v.flagReason = reason
}

// ClearFlag removes the flag and its reason together.
func (v *Video) ClearFlag() {
	v.flagged = false
	v.flagReason = ""
}

// HasTag reports whether the video carries the tag, compared case-insensitively.
func (v *Video) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Label returns the canonical one-line form: Title (id) [tag1 tag2].
func (v *Video) Label() string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, strings.Join(v.Tags, " "))
}
