package server

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotgate/internal/services"
	"github.com/desertthunder/spotgate/internal/shared"
)

func registerPlaylistTools(reg *Registry, api *services.Spotify) {
	reg.Register(Tool{
		Name:  "get_user_playlists",
		Usage: "List the user's playlists",
		Handler: func(ctx context.Context, req Request) (any, error) {
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetUserPlaylists(ctx, req.Token,
				req.Params.Int("limit", 20), req.Params.Int("offset", 0), f)
		},
	})

	reg.Register(Tool{
		Name:  "create_playlist",
		Usage: "Create a playlist owned by the authenticated user",
		Handler: func(ctx context.Context, req Request) (any, error) {
			if req.Identity == nil {
				return nil, fmt.Errorf("%w: no identity resolved", shared.ErrAuthFailed)
			}
			name, err := req.Params.RequiredString("name")
			if err != nil {
				return nil, err
			}
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.CreatePlaylist(ctx, req.Token, req.Identity.UserID, name,
				req.Params.String("description"), req.Params.Bool("public", false), f)
		},
	})

	reg.Register(Tool{
		Name:  "get_playlist",
		Usage: "Retrieve a playlist by id",
		Handler: func(ctx context.Context, req Request) (any, error) {
			playlistID, err := req.Params.RequiredString("playlist_id")
			if err != nil {
				return nil, err
			}
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetPlaylist(ctx, req.Token, playlistID, f)
		},
	})

	reg.Register(Tool{
		Name:  "get_playlist_tracks",
		Usage: "List a playlist's tracks",
		Handler: func(ctx context.Context, req Request) (any, error) {
			playlistID, err := req.Params.RequiredString("playlist_id")
			if err != nil {
				return nil, err
			}
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetPlaylistTracks(ctx, req.Token, playlistID,
				req.Params.Int("limit", 20), req.Params.Int("offset", 0), f)
		},
	})

	reg.Register(Tool{
		Name:  "add_playlist_tracks",
		Usage: "Add tracks to a playlist by URI",
		Handler: func(ctx context.Context, req Request) (any, error) {
			playlistID, err := req.Params.RequiredString("playlist_id")
			if err != nil {
				return nil, err
			}
			uris, err := req.Params.IDList("uris")
			if err != nil {
				return nil, err
			}
			snapshot, err := api.AddTracksToPlaylist(ctx, req.Token, playlistID, uris,
				req.Params.OptionalInt("position"))
			if err != nil {
				return nil, err
			}
			return map[string]any{"snapshot_id": snapshot, "added": len(uris)}, nil
		},
	})

	reg.Register(Tool{
		Name:  "remove_playlist_tracks",
		Usage: "Remove tracks from a playlist by URI",
		Handler: func(ctx context.Context, req Request) (any, error) {
			playlistID, err := req.Params.RequiredString("playlist_id")
			if err != nil {
				return nil, err
			}
			uris, err := req.Params.IDList("uris")
			if err != nil {
				return nil, err
			}
			snapshot, err := api.RemoveTracksFromPlaylist(ctx, req.Token, playlistID, uris)
			if err != nil {
				return nil, err
			}
			return map[string]any{"snapshot_id": snapshot, "removed": len(uris)}, nil
		},
	})

	reg.Register(Tool{
		Name:  "update_playlist",
		Usage: "Update a playlist's name, description, or visibility",
		Handler: func(ctx context.Context, req Request) (any, error) {
			playlistID, err := req.Params.RequiredString("playlist_id")
			if err != nil {
				return nil, err
			}
			err = api.UpdatePlaylistDetails(ctx, req.Token, playlistID,
				req.Params.OptionalString("name"),
				req.Params.OptionalString("description"),
				req.Params.OptionalBool("public"))
			if err != nil {
				return nil, err
			}
			return map[string]any{"updated": true}, nil
		},
	})

	reg.Register(Tool{
		Name:  "reorder_playlist",
		Usage: "Move a range of playlist entries to a new position",
		Handler: func(ctx context.Context, req Request) (any, error) {
			playlistID, err := req.Params.RequiredString("playlist_id")
			if err != nil {
				return nil, err
			}
			rangeStart, err := req.Params.RequiredInt("range_start")
			if err != nil {
				return nil, err
			}
			insertBefore, err := req.Params.RequiredInt("insert_before")
			if err != nil {
				return nil, err
			}
			snapshot, err := api.ReorderPlaylistItems(ctx, req.Token, playlistID,
				rangeStart, insertBefore,
				req.Params.OptionalInt("range_length"),
				req.Params.String("snapshot_id"))
			if err != nil {
				return nil, err
			}
			return map[string]any{"snapshot_id": snapshot}, nil
		},
	})

	reg.Register(Tool{
		Name:  "unfollow_playlist",
		Usage: "Remove a playlist from the user's library",
		Handler: func(ctx context.Context, req Request) (any, error) {
			playlistID, err := req.Params.RequiredString("playlist_id")
			if err != nil {
				return nil, err
			}
			if err := api.UnfollowPlaylist(ctx, req.Token, playlistID); err != nil {
				return nil, err
			}
			return map[string]any{"unfollowed": true}, nil
		},
	})
}
