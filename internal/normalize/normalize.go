package normalize

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotgate/internal/models"
	"github.com/desertthunder/spotgate/internal/shared"
)

// Normalizer maps raw Spotify objects into typed records at a format tier.
type Normalizer struct {
	logger *log.Logger
}

// New creates a [Normalizer] logging degraded-mode recoveries to the given logger.
func New(logger *log.Logger) *Normalizer {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Normalizer{logger: logger}
}

// Normalize produces a domain record from a raw upstream object at the requested format.
//
// Raw format returns the payload verbatim with no validation. Object types
// without a dedicated builder (shows, episodes, users) also pass through
// unchanged. A missing minimal-tier field fails with [shared.ErrMalformedObject].
func (n *Normalizer) Normalize(raw map[string]any, t models.ObjectType, f models.Format) (any, error) {
	if f == models.FormatRaw {
		return raw, nil
	}

	switch t {
	case models.ObjectTrack:
		return n.buildTrack(raw, f)
	case models.ObjectArtist:
		return n.buildArtist(raw, f)
	case models.ObjectAlbum:
		return n.buildAlbum(raw, f)
	case models.ObjectPlaylist:
		return n.buildPlaylist(raw, f)
	default:
		return raw, nil
	}
}

// NormalizeOrRaw normalizes an object, falling back to the unmodified raw
// payload when normalization fails for any reason. The failure is logged.
func (n *Normalizer) NormalizeOrRaw(raw map[string]any, t models.ObjectType, f models.Format) any {
	obj, err := n.Normalize(raw, t, f)
	if err != nil {
		n.logger.Warn("failed to normalize object, passing through raw", "type", t, "format", f, "error", err)
		return raw
	}
	return obj
}

// NormalizeList normalizes a list of raw objects with per-item fault isolation:
// items that fail normalization are carried through in raw form, so the result
// always has the same length and order as the input.
func (n *Normalizer) NormalizeList(items []any, t models.ObjectType, f models.Format) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			out = append(out, item)
			continue
		}
		out = append(out, n.NormalizeOrRaw(raw, t, f))
	}
	return out
}

// buildTrack assembles a [models.Track] tier by tier. Nested artists and the
// album reference are normalized at minimal regardless of the outer format.
func (n *Normalizer) buildTrack(raw map[string]any, f models.Format) (models.Track, error) {
	track := models.Track{Type: "track"}

	var err error
	if track.ID, err = requireString(raw, "id"); err != nil {
		return models.Track{}, err
	}
	if track.Name, err = requireString(raw, "name"); err != nil {
		return models.Track{}, err
	}
	if track.URI, err = requireString(raw, "uri"); err != nil {
		return models.Track{}, err
	}
	if track.Href, err = requireString(raw, "href"); err != nil {
		return models.Track{}, err
	}
	track.ExternalURLs = externalURLs(raw, "external_urls")

	track.Artists = make([]models.Artist, 0)
	for _, artistRaw := range optObjectList(raw, "artists") {
		artist, err := n.buildArtist(artistRaw, models.FormatMinimal)
		if err != nil {
			return models.Track{}, fmt.Errorf("track artist: %w", err)
		}
		track.Artists = append(track.Artists, artist)
	}

	if f == models.FormatCompact || f == models.FormatFull {
		if albumRaw := optObject(raw, "album"); albumRaw != nil {
			album, err := n.buildAlbum(albumRaw, models.FormatMinimal)
			if err != nil {
				return models.Track{}, fmt.Errorf("track album: %w", err)
			}
			track.Album = &album
		}
		track.DurationMS = optInt(raw, "duration_ms")
		track.Explicit = optBool(raw, "explicit")
		track.Popularity = optInt(raw, "popularity")
		track.PreviewURL = optString(raw, "preview_url")
	}

	if f == models.FormatFull {
		track.TrackNumber = optInt(raw, "track_number")
		track.DiscNumber = optInt(raw, "disc_number")
		track.IsLocal = optBool(raw, "is_local")
		track.ExternalIDs = externalIDs(raw, "external_ids")
	}

	return track, nil
}

func (n *Normalizer) buildArtist(raw map[string]any, f models.Format) (models.Artist, error) {
	artist := models.Artist{Type: "artist"}

	var err error
	if artist.ID, err = requireString(raw, "id"); err != nil {
		return models.Artist{}, err
	}
	if artist.Name, err = requireString(raw, "name"); err != nil {
		return models.Artist{}, err
	}
	if artist.URI, err = requireString(raw, "uri"); err != nil {
		return models.Artist{}, err
	}
	if artist.Href, err = requireString(raw, "href"); err != nil {
		return models.Artist{}, err
	}
	artist.ExternalURLs = externalURLs(raw, "external_urls")

	if f == models.FormatCompact || f == models.FormatFull {
		artist.Images = images(raw, "images")
		artist.Popularity = optInt(raw, "popularity")
	}

	if f == models.FormatFull {
		artist.Genres = optStringSlice(raw, "genres")
		artist.Followers = followers(raw, "followers")
	}

	return artist, nil
}

func (n *Normalizer) buildAlbum(raw map[string]any, f models.Format) (models.Album, error) {
	album := models.Album{Type: "album"}

	var err error
	if album.ID, err = requireString(raw, "id"); err != nil {
		return models.Album{}, err
	}
	if album.Name, err = requireString(raw, "name"); err != nil {
		return models.Album{}, err
	}
	if album.URI, err = requireString(raw, "uri"); err != nil {
		return models.Album{}, err
	}
	if album.Href, err = requireString(raw, "href"); err != nil {
		return models.Album{}, err
	}
	album.ExternalURLs = externalURLs(raw, "external_urls")

	album.Artists = make([]models.Artist, 0)
	for _, artistRaw := range optObjectList(raw, "artists") {
		artist, err := n.buildArtist(artistRaw, models.FormatMinimal)
		if err != nil {
			return models.Album{}, fmt.Errorf("album artist: %w", err)
		}
		album.Artists = append(album.Artists, artist)
	}

	if f == models.FormatCompact || f == models.FormatFull {
		album.Images = images(raw, "images")
		album.AlbumType = optString(raw, "album_type")
		album.TotalTracks = optInt(raw, "total_tracks")
		album.ReleaseDate = optString(raw, "release_date")
	}

	if f == models.FormatFull {
		album.ReleaseDatePrecision = optString(raw, "release_date_precision")
		album.Genres = optStringSlice(raw, "genres")
		album.Popularity = optInt(raw, "popularity")
		album.ExternalIDs = externalIDs(raw, "external_ids")
	}

	return album, nil
}

func (n *Normalizer) buildPlaylist(raw map[string]any, f models.Format) (models.Playlist, error) {
	playlist := models.Playlist{Type: "playlist"}

	var err error
	if playlist.ID, err = requireString(raw, "id"); err != nil {
		return models.Playlist{}, err
	}
	if playlist.Name, err = requireString(raw, "name"); err != nil {
		return models.Playlist{}, err
	}
	if playlist.URI, err = requireString(raw, "uri"); err != nil {
		return models.Playlist{}, err
	}
	if playlist.Href, err = requireString(raw, "href"); err != nil {
		return models.Playlist{}, err
	}
	playlist.ExternalURLs = externalURLs(raw, "external_urls")

	if f == models.FormatCompact || f == models.FormatFull {
		playlist.Images = images(raw, "images")
		playlist.Description = optString(raw, "description")
		playlist.Owner = optObject(raw, "owner")
		playlist.Public = optBool(raw, "public")
		playlist.Collaborative = optBool(raw, "collaborative")
		playlist.Tracks = optObject(raw, "tracks")
	}

	if f == models.FormatFull {
		playlist.Followers = followers(raw, "followers")
		playlist.SnapshotID = optString(raw, "snapshot_id")
	}

	return playlist, nil
}

// PlaybackState parses the current playback payload. There is exactly one
// shape; the currently playing item is normalized at compact.
func (n *Normalizer) PlaybackState(raw map[string]any) (models.PlaybackState, error) {
	state := models.PlaybackState{}

	var err error
	if state.RepeatState, err = requireString(raw, "repeat_state"); err != nil {
		return models.PlaybackState{}, err
	}
	if state.ShuffleState, err = requireBool(raw, "shuffle_state"); err != nil {
		return models.PlaybackState{}, err
	}
	ts, err := requireFloat(raw, "timestamp")
	if err != nil {
		return models.PlaybackState{}, err
	}
	state.Timestamp = int64(ts)
	if state.IsPlaying, err = requireBool(raw, "is_playing"); err != nil {
		return models.PlaybackState{}, err
	}
	if state.CurrentlyPlayingType, err = requireString(raw, "currently_playing_type"); err != nil {
		return models.PlaybackState{}, err
	}

	state.Context = optObject(raw, "context")
	state.ProgressMS = optInt(raw, "progress_ms")

	if deviceRaw := optObject(raw, "device"); deviceRaw != nil {
		device, err := parseDevice(deviceRaw)
		if err != nil {
			return models.PlaybackState{}, err
		}
		state.Device = &device
	}

	if itemRaw := optObject(raw, "item"); itemRaw != nil {
		track, err := n.buildTrack(itemRaw, models.FormatCompact)
		if err != nil {
			return models.PlaybackState{}, fmt.Errorf("playback item: %w", err)
		}
		state.Item = &track
	}

	return state, nil
}

func parseDevice(raw map[string]any) (models.Device, error) {
	device := models.Device{}

	var err error
	if device.Name, err = requireString(raw, "name"); err != nil {
		return models.Device{}, err
	}
	if device.Type, err = requireString(raw, "type"); err != nil {
		return models.Device{}, err
	}

	if id := optString(raw, "id"); id != nil {
		device.ID = *id
	}
	if b := optBool(raw, "is_active"); b != nil {
		device.IsActive = *b
	}
	if b := optBool(raw, "is_private_session"); b != nil {
		device.IsPrivateSession = *b
	}
	if b := optBool(raw, "is_restricted"); b != nil {
		device.IsRestricted = *b
	}
	device.VolumePercent = optInt(raw, "volume_percent")

	return device, nil
}

// Devices parses a device list payload. Entries that fail to parse are
// logged and skipped; playback targeting needs only the valid devices.
func (n *Normalizer) Devices(raw map[string]any) []models.Device {
	out := make([]models.Device, 0)
	for _, deviceRaw := range optObjectList(raw, "devices") {
		device, err := parseDevice(deviceRaw)
		if err != nil {
			n.logger.Warn("failed to parse device, skipping", "error", err)
			continue
		}
		out = append(out, device)
	}
	return out
}

// AudioFeatures parses a track's audio feature vector. Every field is
// required; there is no tiering.
func (n *Normalizer) AudioFeatures(raw map[string]any) (models.AudioFeatures, error) {
	features := models.AudioFeatures{}

	var err error
	if features.ID, err = requireString(raw, "id"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.Danceability, err = requireFloat(raw, "danceability"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.Energy, err = requireFloat(raw, "energy"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.Key, err = requireInt(raw, "key"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.Loudness, err = requireFloat(raw, "loudness"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.Mode, err = requireInt(raw, "mode"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.Speechiness, err = requireFloat(raw, "speechiness"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.Acousticness, err = requireFloat(raw, "acousticness"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.Instrumentalness, err = requireFloat(raw, "instrumentalness"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.Liveness, err = requireFloat(raw, "liveness"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.Valence, err = requireFloat(raw, "valence"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.Tempo, err = requireFloat(raw, "tempo"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.DurationMS, err = requireInt(raw, "duration_ms"); err != nil {
		return models.AudioFeatures{}, err
	}
	if features.TimeSignature, err = requireInt(raw, "time_signature"); err != nil {
		return models.AudioFeatures{}, err
	}

	return features, nil
}
