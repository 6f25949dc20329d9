// Spotify Web API facade.
//
// Endpoint paths and parameter bounds follow
// https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotgate/internal/models"
	"github.com/desertthunder/spotgate/internal/normalize"
	"github.com/desertthunder/spotgate/internal/shared"
)

// Batch ceilings enforced before any upstream call. Oversized batches fail
// validation outright rather than being truncated.
const (
	maxTrackIDs    = 100
	maxArtistIDs   = 50
	maxLibraryIDs  = 50
	maxPlaylistAdd = 100
)

// Spotify validates tool arguments, delegates to the API [Client], and shapes
// results through the normalizer at the caller-chosen format tier.
//
// Every method takes the caller's bearer token; the facade is stateless and
// safe for concurrent use.
type Spotify struct {
	client *Client
	norm   *normalize.Normalizer
	logger *log.Logger
}

// NewSpotify creates the operation facade.
func NewSpotify(client *Client, norm *normalize.Normalizer, logger *log.Logger) *Spotify {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Spotify{client: client, norm: norm, logger: logger}
}

// clampLimit normalizes a page size to the standard 1..50 window.
func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 50 {
		return 50
	}
	return limit
}

func pageQuery(limit, offset int) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(clampLimit(limit)))
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return q
}

// validateIDs checks a batch of identifiers against its documented ceiling.
func validateIDs(ids []string, max int, what string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no %s provided", shared.ErrMissingArgument, what)
	}
	if len(ids) > max {
		return fmt.Errorf("%w: at most %d %s per request, got %d", shared.ErrInvalidArgument, max, what, len(ids))
	}
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: empty %s in batch", shared.ErrInvalidArgument, what)
		}
	}
	return nil
}

// wrapSavedItems normalizes the inner object of saved/history entries while
// keeping the wrapper fields (added_at, played_at) alongside it.
func (s *Spotify) wrapSavedItems(items []any, key string, t models.ObjectType, f models.Format) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		wrapper, ok := item.(map[string]any)
		if !ok {
			out = append(out, item)
			continue
		}
		inner, ok := wrapper[key].(map[string]any)
		if !ok {
			out = append(out, item)
			continue
		}
		entry := make(map[string]any, len(wrapper))
		for k, v := range wrapper {
			entry[k] = v
		}
		entry[key] = s.norm.NormalizeOrRaw(inner, t, f)
		out = append(out, entry)
	}
	return out
}

// ---- Search and discovery ----

// SearchMusic runs a multi-type catalog search.
func (s *Spotify) SearchMusic(ctx context.Context, token, query string, types []models.ObjectType, limit, offset int, f models.Format) (models.SearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return models.SearchResponse{}, fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}
	if len(types) == 0 {
		types = []models.ObjectType{models.ObjectTrack}
	}

	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}

	q := pageQuery(limit, offset)
	q.Set("q", query)
	q.Set("type", strings.Join(names, ","))

	payload, err := s.client.Get(ctx, token, "/search", q)
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("search: %w", err)
	}

	return s.norm.Search(payload, types, f), nil
}

// GetCategories lists browse categories. Categories have no format tiers and
// pass through as received.
func (s *Spotify) GetCategories(ctx context.Context, token string, limit, offset int) (models.PaginatedResponse, error) {
	payload, err := s.client.Get(ctx, token, "/browse/categories", pageQuery(limit, offset))
	if err != nil {
		return models.PaginatedResponse{}, fmt.Errorf("categories: %w", err)
	}

	envelope, _ := payload["categories"].(map[string]any)
	if envelope == nil {
		return models.PaginatedResponse{Items: []any{}}, nil
	}
	items, _ := envelope["items"].([]any)
	return normalize.Paginated(items, envelope), nil
}

// GetNewReleases lists newly released albums.
func (s *Spotify) GetNewReleases(ctx context.Context, token string, limit, offset int, f models.Format) (models.PaginatedResponse, error) {
	payload, err := s.client.Get(ctx, token, "/browse/new-releases", pageQuery(limit, offset))
	if err != nil {
		return models.PaginatedResponse{}, fmt.Errorf("new releases: %w", err)
	}

	envelope, _ := payload["albums"].(map[string]any)
	if envelope == nil {
		return models.PaginatedResponse{Items: []any{}}, nil
	}
	items, _ := envelope["items"].([]any)
	return normalize.Paginated(s.norm.NormalizeList(items, models.ObjectAlbum, f), envelope), nil
}

// ---- Library ----

// GetSavedTracks lists the user's saved tracks, preserving added_at stamps.
func (s *Spotify) GetSavedTracks(ctx context.Context, token string, limit, offset int, f models.Format) (models.PaginatedResponse, error) {
	payload, err := s.client.Get(ctx, token, "/me/tracks", pageQuery(limit, offset))
	if err != nil {
		return models.PaginatedResponse{}, fmt.Errorf("saved tracks: %w", err)
	}

	items, _ := payload["items"].([]any)
	return normalize.Paginated(s.wrapSavedItems(items, "track", models.ObjectTrack, f), payload), nil
}

// GetSavedAlbums lists the user's saved albums.
func (s *Spotify) GetSavedAlbums(ctx context.Context, token string, limit, offset int, f models.Format) (models.PaginatedResponse, error) {
	payload, err := s.client.Get(ctx, token, "/me/albums", pageQuery(limit, offset))
	if err != nil {
		return models.PaginatedResponse{}, fmt.Errorf("saved albums: %w", err)
	}

	items, _ := payload["items"].([]any)
	return normalize.Paginated(s.wrapSavedItems(items, "album", models.ObjectAlbum, f), payload), nil
}

// GetFollowedArtists lists artists the user follows. The endpoint uses cursor
// pagination; the after cursor rides through as the next link.
func (s *Spotify) GetFollowedArtists(ctx context.Context, token string, limit int, after string, f models.Format) (models.PaginatedResponse, error) {
	q := url.Values{}
	q.Set("type", "artist")
	q.Set("limit", strconv.Itoa(clampLimit(limit)))
	if after != "" {
		q.Set("after", after)
	}

	payload, err := s.client.Get(ctx, token, "/me/following", q)
	if err != nil {
		return models.PaginatedResponse{}, fmt.Errorf("followed artists: %w", err)
	}

	envelope, _ := payload["artists"].(map[string]any)
	if envelope == nil {
		return models.PaginatedResponse{Items: []any{}}, nil
	}
	items, _ := envelope["items"].([]any)
	return normalize.Paginated(s.norm.NormalizeList(items, models.ObjectArtist, f), envelope), nil
}

// GetRecentlyPlayed lists the user's listening history, newest first.
func (s *Spotify) GetRecentlyPlayed(ctx context.Context, token string, limit int, f models.Format) (models.PaginatedResponse, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(clampLimit(limit)))

	payload, err := s.client.Get(ctx, token, "/me/player/recently-played", q)
	if err != nil {
		return models.PaginatedResponse{}, fmt.Errorf("recently played: %w", err)
	}

	items, _ := payload["items"].([]any)
	return normalize.Paginated(s.wrapSavedItems(items, "track", models.ObjectTrack, f), payload), nil
}

// GetTopItems returns the user's top tracks or artists over a time range.
// Only tracks and artists are supported item types.
func (s *Spotify) GetTopItems(ctx context.Context, token, itemType string, timeRange models.TimeRange, limit, offset int, f models.Format) (models.PaginatedResponse, error) {
	var t models.ObjectType
	switch strings.ToLower(strings.TrimSpace(itemType)) {
	case "tracks":
		t = models.ObjectTrack
	case "artists":
		t = models.ObjectArtist
	default:
		return models.PaginatedResponse{}, fmt.Errorf("%w: item_type must be tracks or artists, got %q", shared.ErrInvalidArgument, itemType)
	}

	q := pageQuery(limit, offset)
	if timeRange != "" {
		q.Set("time_range", string(timeRange))
	}

	payload, err := s.client.Get(ctx, token, "/me/top/"+t.Plural(), q)
	if err != nil {
		return models.PaginatedResponse{}, fmt.Errorf("top items: %w", err)
	}

	items, _ := payload["items"].([]any)
	return normalize.Paginated(s.norm.NormalizeList(items, t, f), payload), nil
}

// SaveTracks adds tracks to the user's library.
func (s *Spotify) SaveTracks(ctx context.Context, token string, ids []string) error {
	if err := validateIDs(ids, maxLibraryIDs, "track ids"); err != nil {
		return err
	}
	if _, err := s.client.Put(ctx, token, "/me/tracks", nil, map[string]any{"ids": ids}); err != nil {
		return fmt.Errorf("save tracks: %w", err)
	}
	return nil
}

// RemoveSavedTracks removes tracks from the user's library.
func (s *Spotify) RemoveSavedTracks(ctx context.Context, token string, ids []string) error {
	if err := validateIDs(ids, maxLibraryIDs, "track ids"); err != nil {
		return err
	}
	if _, err := s.client.Delete(ctx, token, "/me/tracks", nil, map[string]any{"ids": ids}); err != nil {
		return fmt.Errorf("remove saved tracks: %w", err)
	}
	return nil
}

// FollowArtists follows the given artists for the user.
func (s *Spotify) FollowArtists(ctx context.Context, token string, ids []string) error {
	if err := validateIDs(ids, maxArtistIDs, "artist ids"); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("type", "artist")
	if _, err := s.client.Put(ctx, token, "/me/following", q, map[string]any{"ids": ids}); err != nil {
		return fmt.Errorf("follow artists: %w", err)
	}
	return nil
}

// ---- Playlists ----

// GetUserPlaylists lists the current user's playlists.
func (s *Spotify) GetUserPlaylists(ctx context.Context, token string, limit, offset int, f models.Format) (models.PaginatedResponse, error) {
	payload, err := s.client.Get(ctx, token, "/me/playlists", pageQuery(limit, offset))
	if err != nil {
		return models.PaginatedResponse{}, fmt.Errorf("user playlists: %w", err)
	}

	items, _ := payload["items"].([]any)
	return normalize.Paginated(s.norm.NormalizeList(items, models.ObjectPlaylist, f), payload), nil
}

// CreatePlaylist creates a playlist owned by the given user.
func (s *Spotify) CreatePlaylist(ctx context.Context, token, userID, name, description string, public bool, f models.Format) (any, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id", shared.ErrMissingArgument)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: playlist name", shared.ErrMissingArgument)
	}

	body := map[string]any{"name": name, "public": public}
	if description != "" {
		body["description"] = description
	}

	payload, err := s.client.Post(ctx, token, "/users/"+url.PathEscape(userID)+"/playlists", nil, body)
	if err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}

	return s.norm.NormalizeOrRaw(payload, models.ObjectPlaylist, f), nil
}

// GetPlaylist retrieves one playlist.
func (s *Spotify) GetPlaylist(ctx context.Context, token, playlistID string, f models.Format) (any, error) {
	if strings.TrimSpace(playlistID) == "" {
		return nil, fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	payload, err := s.client.Get(ctx, token, "/playlists/"+url.PathEscape(playlistID), nil)
	if err != nil {
		return nil, fmt.Errorf("playlist: %w", err)
	}

	return s.norm.NormalizeOrRaw(payload, models.ObjectPlaylist, f), nil
}

// GetPlaylistTracks lists a playlist's tracks with their added_at stamps.
func (s *Spotify) GetPlaylistTracks(ctx context.Context, token, playlistID string, limit, offset int, f models.Format) (models.PaginatedResponse, error) {
	if strings.TrimSpace(playlistID) == "" {
		return models.PaginatedResponse{}, fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	payload, err := s.client.Get(ctx, token, "/playlists/"+url.PathEscape(playlistID)+"/tracks", pageQuery(limit, offset))
	if err != nil {
		return models.PaginatedResponse{}, fmt.Errorf("playlist tracks: %w", err)
	}

	items, _ := payload["items"].([]any)
	return normalize.Paginated(s.wrapSavedItems(items, "track", models.ObjectTrack, f), payload), nil
}

// AddTracksToPlaylist appends (or inserts) track URIs into a playlist and
// returns the new snapshot id.
func (s *Spotify) AddTracksToPlaylist(ctx context.Context, token, playlistID string, uris []string, position *int) (string, error) {
	if strings.TrimSpace(playlistID) == "" {
		return "", fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}
	if err := validateIDs(uris, maxPlaylistAdd, "track uris"); err != nil {
		return "", err
	}

	body := map[string]any{"uris": uris}
	if position != nil {
		if *position < 0 {
			return "", fmt.Errorf("%w: position must be non-negative", shared.ErrInvalidArgument)
		}
		body["position"] = *position
	}

	payload, err := s.client.Post(ctx, token, "/playlists/"+url.PathEscape(playlistID)+"/tracks", nil, body)
	if err != nil {
		return "", fmt.Errorf("add playlist tracks: %w", err)
	}

	snapshot, _ := payload["snapshot_id"].(string)
	return snapshot, nil
}

// RemoveTracksFromPlaylist removes all occurrences of the given track URIs.
func (s *Spotify) RemoveTracksFromPlaylist(ctx context.Context, token, playlistID string, uris []string) (string, error) {
	if strings.TrimSpace(playlistID) == "" {
		return "", fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}
	if err := validateIDs(uris, maxPlaylistAdd, "track uris"); err != nil {
		return "", err
	}

	tracks := make([]map[string]any, 0, len(uris))
	for _, uri := range uris {
		tracks = append(tracks, map[string]any{"uri": uri})
	}

	payload, err := s.client.Delete(ctx, token, "/playlists/"+url.PathEscape(playlistID)+"/tracks", nil, map[string]any{"tracks": tracks})
	if err != nil {
		return "", fmt.Errorf("remove playlist tracks: %w", err)
	}

	snapshot, _ := payload["snapshot_id"].(string)
	return snapshot, nil
}

// UpdatePlaylistDetails changes a playlist's name, description, or
// visibility. Nil fields are left untouched.
func (s *Spotify) UpdatePlaylistDetails(ctx context.Context, token, playlistID string, name, description *string, public *bool) error {
	if strings.TrimSpace(playlistID) == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	body := map[string]any{}
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return fmt.Errorf("%w: playlist name cannot be blank", shared.ErrInvalidArgument)
		}
		body["name"] = *name
	}
	if description != nil {
		body["description"] = *description
	}
	if public != nil {
		body["public"] = *public
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: nothing to update", shared.ErrMissingArgument)
	}

	if _, err := s.client.Put(ctx, token, "/playlists/"+url.PathEscape(playlistID), nil, body); err != nil {
		return fmt.Errorf("update playlist: %w", err)
	}
	return nil
}

// ReorderPlaylistItems moves a range of playlist entries to a new position.
func (s *Spotify) ReorderPlaylistItems(ctx context.Context, token, playlistID string, rangeStart, insertBefore int, rangeLength *int, snapshotID string) (string, error) {
	if strings.TrimSpace(playlistID) == "" {
		return "", fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}
	if rangeStart < 0 || insertBefore < 0 {
		return "", fmt.Errorf("%w: range_start and insert_before must be non-negative", shared.ErrInvalidArgument)
	}

	body := map[string]any{
		"range_start":   rangeStart,
		"insert_before": insertBefore,
	}
	if rangeLength != nil {
		if *rangeLength < 1 {
			return "", fmt.Errorf("%w: range_length must be at least 1", shared.ErrInvalidArgument)
		}
		body["range_length"] = *rangeLength
	}
	if snapshotID != "" {
		body["snapshot_id"] = snapshotID
	}

	payload, err := s.client.Put(ctx, token, "/playlists/"+url.PathEscape(playlistID)+"/tracks", nil, body)
	if err != nil {
		return "", fmt.Errorf("reorder playlist: %w", err)
	}

	snapshot, _ := payload["snapshot_id"].(string)
	return snapshot, nil
}

// UnfollowPlaylist removes the playlist from the user's library. Spotify has
// no hard delete; unfollowing is how owned playlists are removed too.
func (s *Spotify) UnfollowPlaylist(ctx context.Context, token, playlistID string) error {
	if strings.TrimSpace(playlistID) == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}
	if _, err := s.client.Delete(ctx, token, "/playlists/"+url.PathEscape(playlistID)+"/followers", nil, nil); err != nil {
		return fmt.Errorf("unfollow playlist: %w", err)
	}
	return nil
}

// ---- Playback ----

// GetCurrentPlayback returns the active playback state, or nil when nothing
// is playing (upstream 204).
func (s *Spotify) GetCurrentPlayback(ctx context.Context, token string) (*models.PlaybackState, error) {
	payload, err := s.client.Get(ctx, token, "/me/player", nil)
	if err != nil {
		return nil, fmt.Errorf("playback state: %w", err)
	}
	if payload == nil {
		return nil, nil
	}

	state, err := s.norm.PlaybackState(payload)
	if err != nil {
		return nil, fmt.Errorf("playback state: %w", err)
	}
	return &state, nil
}

// GetDevices lists the user's available playback devices.
func (s *Spotify) GetDevices(ctx context.Context, token string) ([]models.Device, error) {
	payload, err := s.client.Get(ctx, token, "/me/player/devices", nil)
	if err != nil {
		return nil, fmt.Errorf("devices: %w", err)
	}
	if payload == nil {
		return []models.Device{}, nil
	}
	return s.norm.Devices(payload), nil
}

func deviceQuery(deviceID string) url.Values {
	if deviceID == "" {
		return nil
	}
	q := url.Values{}
	q.Set("device_id", deviceID)
	return q
}

// StartPlayback starts or resumes playback. A context URI plays an album or
// playlist; explicit track URIs play those tracks. Both at once is invalid.
func (s *Spotify) StartPlayback(ctx context.Context, token, deviceID, contextURI string, uris []string, positionMS *int) error {
	if contextURI != "" && len(uris) > 0 {
		return fmt.Errorf("%w: context_uri and uris are mutually exclusive", shared.ErrInvalidArgument)
	}

	body := map[string]any{}
	if contextURI != "" {
		body["context_uri"] = contextURI
	}
	if len(uris) > 0 {
		body["uris"] = uris
	}
	if positionMS != nil {
		if *positionMS < 0 {
			return fmt.Errorf("%w: position_ms must be non-negative", shared.ErrInvalidArgument)
		}
		body["position_ms"] = *positionMS
	}

	var payload any
	if len(body) > 0 {
		payload = body
	}
	if _, err := s.client.Put(ctx, token, "/me/player/play", deviceQuery(deviceID), payload); err != nil {
		return fmt.Errorf("start playback: %w", err)
	}
	return nil
}

// PausePlayback pauses the active playback.
func (s *Spotify) PausePlayback(ctx context.Context, token, deviceID string) error {
	if _, err := s.client.Put(ctx, token, "/me/player/pause", deviceQuery(deviceID), nil); err != nil {
		return fmt.Errorf("pause playback: %w", err)
	}
	return nil
}

// NextTrack skips to the next track.
func (s *Spotify) NextTrack(ctx context.Context, token, deviceID string) error {
	if _, err := s.client.Post(ctx, token, "/me/player/next", deviceQuery(deviceID), nil); err != nil {
		return fmt.Errorf("next track: %w", err)
	}
	return nil
}

// PreviousTrack skips back to the previous track.
func (s *Spotify) PreviousTrack(ctx context.Context, token, deviceID string) error {
	if _, err := s.client.Post(ctx, token, "/me/player/previous", deviceQuery(deviceID), nil); err != nil {
		return fmt.Errorf("previous track: %w", err)
	}
	return nil
}

// Seek jumps to a position in the current track.
func (s *Spotify) Seek(ctx context.Context, token string, positionMS int, deviceID string) error {
	if positionMS < 0 {
		return fmt.Errorf("%w: position_ms must be non-negative, got %d", shared.ErrInvalidArgument, positionMS)
	}

	q := deviceQuery(deviceID)
	if q == nil {
		q = url.Values{}
	}
	q.Set("position_ms", strconv.Itoa(positionMS))

	if _, err := s.client.Put(ctx, token, "/me/player/seek", q, nil); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	return nil
}

// SetVolume sets playback volume as a percentage.
func (s *Spotify) SetVolume(ctx context.Context, token string, volume int, deviceID string) error {
	if volume < 0 || volume > 100 {
		return fmt.Errorf("%w: volume must be between 0 and 100, got %d", shared.ErrInvalidArgument, volume)
	}

	q := deviceQuery(deviceID)
	if q == nil {
		q = url.Values{}
	}
	q.Set("volume_percent", strconv.Itoa(volume))

	if _, err := s.client.Put(ctx, token, "/me/player/volume", q, nil); err != nil {
		return fmt.Errorf("set volume: %w", err)
	}
	return nil
}

// SetRepeat sets the repeat mode.
func (s *Spotify) SetRepeat(ctx context.Context, token string, state models.RepeatState, deviceID string) error {
	q := deviceQuery(deviceID)
	if q == nil {
		q = url.Values{}
	}
	q.Set("state", string(state))

	if _, err := s.client.Put(ctx, token, "/me/player/repeat", q, nil); err != nil {
		return fmt.Errorf("set repeat: %w", err)
	}
	return nil
}

// SetShuffle toggles shuffle.
func (s *Spotify) SetShuffle(ctx context.Context, token string, on bool, deviceID string) error {
	q := deviceQuery(deviceID)
	if q == nil {
		q = url.Values{}
	}
	q.Set("state", strconv.FormatBool(on))

	if _, err := s.client.Put(ctx, token, "/me/player/shuffle", q, nil); err != nil {
		return fmt.Errorf("set shuffle: %w", err)
	}
	return nil
}

// TransferPlayback moves playback to another device.
func (s *Spotify) TransferPlayback(ctx context.Context, token, deviceID string, play bool) error {
	if strings.TrimSpace(deviceID) == "" {
		return fmt.Errorf("%w: device id", shared.ErrMissingArgument)
	}

	body := map[string]any{"device_ids": []string{deviceID}, "play": play}
	if _, err := s.client.Put(ctx, token, "/me/player", nil, body); err != nil {
		return fmt.Errorf("transfer playback: %w", err)
	}
	return nil
}

// AddToQueue appends a track or episode URI to the playback queue.
func (s *Spotify) AddToQueue(ctx context.Context, token, uri, deviceID string) error {
	if strings.TrimSpace(uri) == "" {
		return fmt.Errorf("%w: uri", shared.ErrMissingArgument)
	}

	q := deviceQuery(deviceID)
	if q == nil {
		q = url.Values{}
	}
	q.Set("uri", uri)

	if _, err := s.client.Post(ctx, token, "/me/player/queue", q, nil); err != nil {
		return fmt.Errorf("add to queue: %w", err)
	}
	return nil
}

// ---- Analysis and catalog ----

// GetAudioFeatures returns feature vectors for a batch of tracks. Entries
// upstream reports as null, or that fail to parse, pass through untouched.
func (s *Spotify) GetAudioFeatures(ctx context.Context, token string, ids []string) ([]any, error) {
	if err := validateIDs(ids, maxTrackIDs, "track ids"); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))

	payload, err := s.client.Get(ctx, token, "/audio-features", q)
	if err != nil {
		return nil, fmt.Errorf("audio features: %w", err)
	}

	raw, _ := payload["audio_features"].([]any)
	out := make([]any, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			out = append(out, item)
			continue
		}
		features, err := s.norm.AudioFeatures(obj)
		if err != nil {
			s.logger.Warn("failed to parse audio features, passing through raw", "error", err)
			out = append(out, item)
			continue
		}
		out = append(out, features)
	}
	return out, nil
}

// GetAudioAnalysis returns the detailed analysis for one track. The payload
// has no tiered form and passes through raw.
func (s *Spotify) GetAudioAnalysis(ctx context.Context, token, trackID string) (map[string]any, error) {
	if strings.TrimSpace(trackID) == "" {
		return nil, fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}

	payload, err := s.client.Get(ctx, token, "/audio-analysis/"+url.PathEscape(trackID), nil)
	if err != nil {
		return nil, fmt.Errorf("audio analysis: %w", err)
	}
	return payload, nil
}

// GetArtists retrieves a batch of artists.
func (s *Spotify) GetArtists(ctx context.Context, token string, ids []string, f models.Format) ([]any, error) {
	if err := validateIDs(ids, maxArtistIDs, "artist ids"); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))

	payload, err := s.client.Get(ctx, token, "/artists", q)
	if err != nil {
		return nil, fmt.Errorf("artists: %w", err)
	}

	items, _ := payload["artists"].([]any)
	return s.norm.NormalizeList(items, models.ObjectArtist, f), nil
}

// GetArtistTopTracks returns an artist's most popular tracks in a market.
func (s *Spotify) GetArtistTopTracks(ctx context.Context, token, artistID, market string, f models.Format) ([]any, error) {
	if strings.TrimSpace(artistID) == "" {
		return nil, fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	var q url.Values
	if market != "" {
		q = url.Values{}
		q.Set("market", market)
	}

	payload, err := s.client.Get(ctx, token, "/artists/"+url.PathEscape(artistID)+"/top-tracks", q)
	if err != nil {
		return nil, fmt.Errorf("artist top tracks: %w", err)
	}

	items, _ := payload["tracks"].([]any)
	return s.norm.NormalizeList(items, models.ObjectTrack, f), nil
}

// GetRelatedArtists returns artists similar to the given artist.
func (s *Spotify) GetRelatedArtists(ctx context.Context, token, artistID string, f models.Format) ([]any, error) {
	if strings.TrimSpace(artistID) == "" {
		return nil, fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	payload, err := s.client.Get(ctx, token, "/artists/"+url.PathEscape(artistID)+"/related-artists", nil)
	if err != nil {
		return nil, fmt.Errorf("related artists: %w", err)
	}

	items, _ := payload["artists"].([]any)
	return s.norm.NormalizeList(items, models.ObjectArtist, f), nil
}

// GetArtistAlbums lists an artist's albums.
func (s *Spotify) GetArtistAlbums(ctx context.Context, token, artistID string, limit, offset int, f models.Format) (models.PaginatedResponse, error) {
	if strings.TrimSpace(artistID) == "" {
		return models.PaginatedResponse{}, fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	payload, err := s.client.Get(ctx, token, "/artists/"+url.PathEscape(artistID)+"/albums", pageQuery(limit, offset))
	if err != nil {
		return models.PaginatedResponse{}, fmt.Errorf("artist albums: %w", err)
	}

	items, _ := payload["items"].([]any)
	return normalize.Paginated(s.norm.NormalizeList(items, models.ObjectAlbum, f), payload), nil
}

// GetAlbumTracks lists an album's tracks. Album track entries carry no album
// reference of their own, so compact and minimal look alike here.
func (s *Spotify) GetAlbumTracks(ctx context.Context, token, albumID string, limit, offset int, f models.Format) (models.PaginatedResponse, error) {
	if strings.TrimSpace(albumID) == "" {
		return models.PaginatedResponse{}, fmt.Errorf("%w: album id", shared.ErrMissingArgument)
	}

	payload, err := s.client.Get(ctx, token, "/albums/"+url.PathEscape(albumID)+"/tracks", pageQuery(limit, offset))
	if err != nil {
		return models.PaginatedResponse{}, fmt.Errorf("album tracks: %w", err)
	}

	items, _ := payload["items"].([]any)
	return normalize.Paginated(s.norm.NormalizeList(items, models.ObjectTrack, f), payload), nil
}
