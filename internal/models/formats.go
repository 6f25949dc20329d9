package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/spotgate/internal/shared"
)

// Format selects the fidelity tier of a normalized API response.
type Format string

const (
	FormatMinimal Format = "minimal" // IDs and basic metadata only
	FormatCompact Format = "compact" // Essential data for most operations
	FormatFull    Format = "full"    // Complete data including detailed info
	FormatRaw     Format = "raw"     // Original Spotify API payload
)

var formats = map[string]Format{
	"minimal": FormatMinimal,
	"compact": FormatCompact,
	"full":    FormatFull,
	"raw":     FormatRaw,
}

// ParseFormat resolves a user-supplied format string to a [Format].
//
// Lookup is case-insensitive and tolerant of surrounding whitespace.
// Unrecognized values fail with [shared.ErrInvalidFormat].
func ParseFormat(s string) (Format, error) {
	f, ok := formats[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q (expected minimal, compact, full, or raw)", shared.ErrInvalidFormat, s)
	}
	return f, nil
}

func (f Format) String() string { return string(f) }

// ObjectType identifies the kind of Spotify object being normalized.
type ObjectType string

const (
	ObjectTrack    ObjectType = "track"
	ObjectArtist   ObjectType = "artist"
	ObjectAlbum    ObjectType = "album"
	ObjectPlaylist ObjectType = "playlist"
	ObjectShow     ObjectType = "show"
	ObjectEpisode  ObjectType = "episode"
	ObjectUser     ObjectType = "user"
)

var objectTypes = map[string]ObjectType{
	"track":    ObjectTrack,
	"artist":   ObjectArtist,
	"album":    ObjectAlbum,
	"playlist": ObjectPlaylist,
	"show":     ObjectShow,
	"episode":  ObjectEpisode,
	"user":     ObjectUser,
}

// ParseObjectType resolves a user-supplied object type string, case-insensitively.
func ParseObjectType(s string) (ObjectType, error) {
	t, ok := objectTypes[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: unknown object type %q", shared.ErrInvalidArgument, s)
	}
	return t, nil
}

func (t ObjectType) String() string { return string(t) }

// Plural returns the key used for this type in search response envelopes (tracks, artists, ...).
func (t ObjectType) Plural() string { return string(t) + "s" }

// TimeRange selects the window for user listening statistics.
type TimeRange string

const (
	RangeShortTerm  TimeRange = "short_term"  // ~4 weeks
	RangeMediumTerm TimeRange = "medium_term" // ~6 months
	RangeLongTerm   TimeRange = "long_term"   // ~years
)

var timeRanges = map[string]TimeRange{
	"short_term":  RangeShortTerm,
	"medium_term": RangeMediumTerm,
	"long_term":   RangeLongTerm,
}

// ParseTimeRange resolves a time range string, case-insensitively.
func ParseTimeRange(s string) (TimeRange, error) {
	r, ok := timeRanges[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: unknown time range %q", shared.ErrInvalidArgument, s)
	}
	return r, nil
}

// RepeatState is a playback repeat mode.
type RepeatState string

const (
	RepeatTrack   RepeatState = "track"
	RepeatContext RepeatState = "context"
	RepeatOff     RepeatState = "off"
)

var repeatStates = map[string]RepeatState{
	"track":   RepeatTrack,
	"context": RepeatContext,
	"off":     RepeatOff,
}

// ParseRepeatState resolves a repeat mode string, case-insensitively.
func ParseRepeatState(s string) (RepeatState, error) {
	r, ok := repeatStates[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: unknown repeat state %q (expected track, context, or off)", shared.ErrInvalidArgument, s)
	}
	return r, nil
}
