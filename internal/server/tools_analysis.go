package server

import (
	"context"

	"github.com/desertthunder/spotgate/internal/services"
)

func registerAnalysisTools(reg *Registry, api *services.Spotify) {
	reg.Register(Tool{
		Name:  "get_audio_features",
		Usage: "Return audio feature vectors for up to 100 tracks",
		Handler: func(ctx context.Context, req Request) (any, error) {
			ids, err := req.Params.IDList("ids")
			if err != nil {
				return nil, err
			}
			return api.GetAudioFeatures(ctx, req.Token, ids)
		},
	})

	reg.Register(Tool{
		Name:  "get_audio_analysis",
		Usage: "Return the detailed audio analysis for one track",
		Handler: func(ctx context.Context, req Request) (any, error) {
			trackID, err := req.Params.RequiredString("track_id")
			if err != nil {
				return nil, err
			}
			return api.GetAudioAnalysis(ctx, req.Token, trackID)
		},
	})

	reg.Register(Tool{
		Name:  "get_artists",
		Usage: "Retrieve up to 50 artists by id",
		Handler: func(ctx context.Context, req Request) (any, error) {
			ids, err := req.Params.IDList("ids")
			if err != nil {
				return nil, err
			}
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetArtists(ctx, req.Token, ids, f)
		},
	})

	reg.Register(Tool{
		Name:  "get_artist_top_tracks",
		Usage: "Return an artist's most popular tracks",
		Handler: func(ctx context.Context, req Request) (any, error) {
			artistID, err := req.Params.RequiredString("artist_id")
			if err != nil {
				return nil, err
			}
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetArtistTopTracks(ctx, req.Token, artistID, req.Params.String("market"), f)
		},
	})

	reg.Register(Tool{
		Name:  "get_related_artists",
		Usage: "Return artists similar to an artist",
		Handler: func(ctx context.Context, req Request) (any, error) {
			artistID, err := req.Params.RequiredString("artist_id")
			if err != nil {
				return nil, err
			}
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetRelatedArtists(ctx, req.Token, artistID, f)
		},
	})

	reg.Register(Tool{
		Name:  "get_artist_albums",
		Usage: "List an artist's albums",
		Handler: func(ctx context.Context, req Request) (any, error) {
			artistID, err := req.Params.RequiredString("artist_id")
			if err != nil {
				return nil, err
			}
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetArtistAlbums(ctx, req.Token, artistID,
				req.Params.Int("limit", 20), req.Params.Int("offset", 0), f)
		},
	})

	reg.Register(Tool{
		Name:  "get_album_tracks",
		Usage: "List an album's tracks",
		Handler: func(ctx context.Context, req Request) (any, error) {
			albumID, err := req.Params.RequiredString("album_id")
			if err != nil {
				return nil, err
			}
			f, err := req.Params.Format()
			if err != nil {
				return nil, err
			}
			return api.GetAlbumTracks(ctx, req.Token, albumID,
				req.Params.Int("limit", 20), req.Params.Int("offset", 0), f)
		},
	})
}
