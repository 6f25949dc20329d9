package models

// Spotify API object schemas based on https://developer.spotify.com/documentation/web-api/reference/
//
// Fields above the minimal tier are pointers or slices so that values the
// normalizer did not populate are omitted from JSON output.

// Image represents an image resource.
type Image struct {
	URL    string `json:"url"`
	Height *int   `json:"height,omitempty"`
	Width  *int   `json:"width,omitempty"`
}

// ExternalURLs holds known external URLs for an object.
type ExternalURLs struct {
	Spotify string `json:"spotify,omitempty"`
}

// ExternalIDs holds known external identifiers for an object.
type ExternalIDs struct {
	ISRC string `json:"isrc,omitempty"` // International Standard Recording Code
	EAN  string `json:"ean,omitempty"`  // International Article Number
	UPC  string `json:"upc,omitempty"`  // Universal Product Code
}

// Followers holds follower information.
type Followers struct {
	Href  string `json:"href,omitempty"`
	Total int    `json:"total"`
}

// Artist represents a Spotify artist.
//
// Minimal tier: ID, Name, Type, URI, Href, ExternalURLs.
// Compact adds Images and Popularity; full adds Genres and Followers.
type Artist struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	URI          string        `json:"uri"`
	Href         string        `json:"href"`
	ExternalURLs *ExternalURLs `json:"external_urls,omitempty"`
	Images       []Image       `json:"images,omitempty"`
	Popularity   *int          `json:"popularity,omitempty"`
	Genres       []string      `json:"genres,omitempty"`
	Followers    *Followers    `json:"followers,omitempty"`
}

// Album represents a Spotify album.
//
// Minimal tier: ID, Name, Type, URI, Href, ExternalURLs, Artists (minimal).
// Compact adds Images, AlbumType, TotalTracks, ReleaseDate; full adds
// ReleaseDatePrecision, Genres, Popularity, ExternalIDs.
type Album struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Type                 string        `json:"type"`
	URI                  string        `json:"uri"`
	Href                 string        `json:"href"`
	ExternalURLs         *ExternalURLs `json:"external_urls,omitempty"`
	Artists              []Artist      `json:"artists"`
	Images               []Image       `json:"images,omitempty"`
	AlbumType            *string       `json:"album_type,omitempty"`
	TotalTracks          *int          `json:"total_tracks,omitempty"`
	ReleaseDate          *string       `json:"release_date,omitempty"`
	ReleaseDatePrecision *string       `json:"release_date_precision,omitempty"`
	Genres               []string      `json:"genres,omitempty"`
	Popularity           *int          `json:"popularity,omitempty"`
	ExternalIDs          *ExternalIDs  `json:"external_ids,omitempty"`
}

// Track represents a Spotify track.
//
// Minimal tier: ID, Name, Type, URI, Href, ExternalURLs, Artists (minimal).
// Compact adds Album (minimal), DurationMS, Explicit, Popularity, PreviewURL;
// full adds TrackNumber, DiscNumber, IsLocal, ExternalIDs.
type Track struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	URI          string        `json:"uri"`
	Href         string        `json:"href"`
	ExternalURLs *ExternalURLs `json:"external_urls,omitempty"`
	Artists      []Artist      `json:"artists"`
	Album        *Album        `json:"album,omitempty"`
	DurationMS   *int          `json:"duration_ms,omitempty"`
	Explicit     *bool         `json:"explicit,omitempty"`
	Popularity   *int          `json:"popularity,omitempty"`
	PreviewURL   *string       `json:"preview_url,omitempty"`
	TrackNumber  *int          `json:"track_number,omitempty"`
	DiscNumber   *int          `json:"disc_number,omitempty"`
	IsLocal      *bool         `json:"is_local,omitempty"`
	ExternalIDs  *ExternalIDs  `json:"external_ids,omitempty"`
}

// Playlist represents a Spotify playlist.
//
// Minimal tier: ID, Name, Type, URI, Href, ExternalURLs.
// Compact adds Images, Description, Owner, Public, Collaborative, Tracks;
// full adds Followers and SnapshotID.
type Playlist struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	URI           string         `json:"uri"`
	Href          string         `json:"href"`
	ExternalURLs  *ExternalURLs  `json:"external_urls,omitempty"`
	Images        []Image        `json:"images,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Owner         map[string]any `json:"owner,omitempty"`
	Public        *bool          `json:"public,omitempty"`
	Collaborative *bool          `json:"collaborative,omitempty"`
	Tracks        map[string]any `json:"tracks,omitempty"`
	Followers     *Followers     `json:"followers,omitempty"`
	SnapshotID    *string        `json:"snapshot_id,omitempty"`
}

// Device represents a Spotify playback device.
type Device struct {
	ID               string `json:"id,omitempty"`
	IsActive         bool   `json:"is_active"`
	IsPrivateSession bool   `json:"is_private_session"`
	IsRestricted     bool   `json:"is_restricted"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	VolumePercent    *int   `json:"volume_percent,omitempty"`
}

// PlaybackState is the current playback state. It has exactly one shape; no format tiering applies.
type PlaybackState struct {
	Device               *Device        `json:"device,omitempty"`
	RepeatState          string         `json:"repeat_state"`
	ShuffleState         bool           `json:"shuffle_state"`
	Context              map[string]any `json:"context,omitempty"`
	Timestamp            int64          `json:"timestamp"`
	ProgressMS           *int           `json:"progress_ms,omitempty"`
	IsPlaying            bool           `json:"is_playing"`
	Item                 *Track         `json:"item,omitempty"` // normalized at compact
	CurrentlyPlayingType string         `json:"currently_playing_type"`
}

// AudioFeatures is the fixed numeric feature vector for a track. Always full shape, no optional fields.
type AudioFeatures struct {
	ID               string  `json:"id"`
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Key              int     `json:"key"`
	Loudness         float64 `json:"loudness"`
	Mode             int     `json:"mode"`
	Speechiness      float64 `json:"speechiness"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Valence          float64 `json:"valence"`
	Tempo            float64 `json:"tempo"`
	DurationMS       int     `json:"duration_ms"`
	TimeSignature    int     `json:"time_signature"`
}

// Identity is a verified user record produced by token validation.
type Identity struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Country     string `json:"country,omitempty"`
	Product     string `json:"product,omitempty"` // premium, free, etc.
	Followers   int    `json:"followers,omitempty"`
}

// PaginatedResponse wraps normalized items with the upstream pagination cursors.
//
// Next and Previous are opaque continuation URLs, never parsed further.
type PaginatedResponse struct {
	Items    []any   `json:"items"`
	Total    *int    `json:"total,omitempty"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
	Next     *string `json:"next,omitempty"`
	Previous *string `json:"previous,omitempty"`
}

// SearchResponse groups normalized search results by object type.
//
// TotalResults is the sum of the per-type totals reported upstream. A total
// across heterogeneous types has no meaning beyond that sum; the per-type
// lists carry the real breakdown.
type SearchResponse struct {
	Tracks       []any  `json:"tracks,omitempty"`
	Artists      []any  `json:"artists,omitempty"`
	Albums       []any  `json:"albums,omitempty"`
	Playlists    []any  `json:"playlists,omitempty"`
	TotalResults int    `json:"total_results"`
	FormatUsed   Format `json:"format_used"`
}

// ToolResponse is the uniform envelope returned to tool callers.
type ToolResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}
