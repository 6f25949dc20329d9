package server

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotgate/internal/models"
	"github.com/desertthunder/spotgate/internal/services"
	"github.com/desertthunder/spotgate/internal/shared"
)

func registerLibraryTools(reg *Registry, api *services.Spotify) {
	reg.Register(Tool{
		Name:  "get_saved_tracks",
		Usage: "List tracks saved in the user's library",
		Handler: func(ctx context.Context, req Request) (any, error) {
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetSavedTracks(ctx, req.Token,
				req.Params.Int("limit", 20), req.Params.Int("offset", 0), f)
		},
	})

	reg.Register(Tool{
		Name:  "get_saved_albums",
		Usage: "List albums saved in the user's library",
		Handler: func(ctx context.Context, req Request) (any, error) {
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetSavedAlbums(ctx, req.Token,
				req.Params.Int("limit", 20), req.Params.Int("offset", 0), f)
		},
	})

	reg.Register(Tool{
		Name:  "get_followed_artists",
		Usage: "List artists the user follows",
		Handler: func(ctx context.Context, req Request) (any, error) {
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetFollowedArtists(ctx, req.Token,
				req.Params.Int("limit", 20), req.Params.String("after"), f)
		},
	})

	reg.Register(Tool{
		Name:  "get_recently_played",
		Usage: "List the user's recently played tracks",
		Handler: func(ctx context.Context, req Request) (any, error) {
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetRecentlyPlayed(ctx, req.Token, req.Params.Int("limit", 20), f)
		},
	})

	reg.Register(Tool{
		Name:  "get_top_items",
		Usage: "List the user's top tracks or artists over a time range",
		Handler: func(ctx context.Context, req Request) (any, error) {
			itemType, err := req.Params.RequiredString("item_type")
			if err != nil {
				return nil, err
			}
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}

			timeRange := models.RangeMediumTerm
			if s := req.Params.String("time_range"); s != "" {
				if timeRange, err = models.ParseTimeRange(s); err != nil {
					return nil, err
				}
			}

			return api.GetTopItems(ctx, req.Token, itemType, timeRange,
				req.Params.Int("limit", 20), req.Params.Int("offset", 0), f)
		},
	})

	reg.Register(Tool{
		Name:  "save_tracks",
		Usage: "Save tracks to the user's library",
		Handler: func(ctx context.Context, req Request) (any, error) {
			ids, err := req.Params.IDList("ids")
			if err != nil {
				return nil, err
			}
			if err := api.SaveTracks(ctx, req.Token, ids); err != nil {
				return nil, err
			}
			return map[string]any{"saved": len(ids)}, nil
		},
	})

	reg.Register(Tool{
		Name:  "remove_saved_tracks",
		Usage: "Remove tracks from the user's library",
		Handler: func(ctx context.Context, req Request) (any, error) {
			ids, err := req.Params.IDList("ids")
			if err != nil {
				return nil, err
			}
			if err := api.RemoveSavedTracks(ctx, req.Token, ids); err != nil {
				return nil, err
			}
			return map[string]any{"removed": len(ids)}, nil
		},
	})

	reg.Register(Tool{
		Name:  "follow_artists",
		Usage: "Follow artists for the user",
		Handler: func(ctx context.Context, req Request) (any, error) {
			ids, err := req.Params.IDList("ids")
			if err != nil {
				return nil, err
			}
			if err := api.FollowArtists(ctx, req.Token, ids); err != nil {
				return nil, err
			}
			return map[string]any{"followed": len(ids)}, nil
		},
	})

	reg.Register(Tool{
		Name:  "get_profile",
		Usage: "Return the authenticated user's profile",
		Handler: func(ctx context.Context, req Request) (any, error) {
			if req.Identity == nil {
				return nil, fmt.Errorf("%w: no identity resolved", shared.ErrAuthFailed)
			}
			return req.Identity, nil
		},
	})
}
