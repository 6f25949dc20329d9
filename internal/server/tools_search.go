package server

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotgate/internal/models"
	"github.com/desertthunder/spotgate/internal/services"
	"github.com/desertthunder/spotgate/internal/shared"
)

// RegisterTools populates the registry with the full tool surface bound to
// the given facade.
func RegisterTools(reg *Registry, api *services.Spotify) {
	registerSearchTools(reg, api)
	registerLibraryTools(reg, api)
	registerPlaylistTools(reg, api)
	registerPlaybackTools(reg, api)
	registerAnalysisTools(reg, api)
}

func registerSearchTools(reg *Registry, api *services.Spotify) {
	reg.Register(Tool{
		Name:  "search",
		Usage: "Search the catalog for tracks, artists, albums, or playlists",
		Handler: func(ctx context.Context, req Request) (any, error) {
			query, err := req.Params.RequiredString("query")
			if err != nil {
				return nil, err
			}
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}

			names, err := req.Params.IDList("types")
			if err != nil {
				return nil, err
			}
			types := make([]models.ObjectType, 0, len(names))
			for _, name := range names {
				t, err := models.ParseObjectType(name)
				if err != nil {
					return nil, err
				}
				switch t {
				case models.ObjectTrack, models.ObjectArtist, models.ObjectAlbum, models.ObjectPlaylist:
				default:
					return nil, fmt.Errorf("%w: search does not support type %q", shared.ErrInvalidArgument, name)
				}
				types = append(types, t)
			}

			return api.SearchMusic(ctx, req.Token, query, types,
				req.Params.Int("limit", 10), req.Params.Int("offset", 0), f)
		},
	})

	reg.Register(Tool{
		Name:  "get_categories",
		Usage: "List browse categories",
		Handler: func(ctx context.Context, req Request) (any, error) {
			return api.GetCategories(ctx, req.Token,
				req.Params.Int("limit", 20), req.Params.Int("offset", 0))
		},
	})

	reg.Register(Tool{
		Name:  "get_new_releases",
		Usage: "List newly released albums",
		Handler: func(ctx context.Context, req Request) (any, error) {
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetNewReleases(ctx, req.Token,
				req.Params.Int("limit", 20), req.Params.Int("offset", 0), f)
		},
	})
}
