package server

import (
	"context"

	"github.com/desertthunder/spotgate/internal/models"
	"github.com/desertthunder/spotgate/internal/services"
)

func registerPlaybackTools(reg *Registry, api *services.Spotify) {
	reg.Register(Tool{
		Name:  "get_playback",
		Usage: "Return the current playback state, or null when nothing is playing",
		Handler: func(ctx context.Context, req Request) (any, error) {
			state, err := api.GetCurrentPlayback(ctx, req.Token)
			if err != nil {
				return nil, err
			}
			if state == nil {
				return nil, nil
			}
			return state, nil
		},
	})

	reg.Register(Tool{
		Name:  "get_devices",
		Usage: "List available playback devices",
		Handler: func(ctx context.Context, req Request) (any, error) {
			return api.GetDevices(ctx, req.Token)
		},
	})

	reg.Register(Tool{
		Name:  "start_playback",
		Usage: "Start or resume playback of a context URI or explicit track URIs",
		Handler: func(ctx context.Context, req Request) (any, error) {
			uris, err := req.Params.IDList("uris")
			if err != nil {
				return nil, err
			}
			err = api.StartPlayback(ctx, req.Token,
				req.Params.String("device_id"),
				req.Params.String("context_uri"),
				uris,
				req.Params.OptionalInt("position_ms"))
			if err != nil {
				return nil, err
			}
			return map[string]any{"playing": true}, nil
		},
	})

	reg.Register(Tool{
		Name:  "pause_playback",
		Usage: "Pause the active playback",
		Handler: func(ctx context.Context, req Request) (any, error) {
			if err := api.PausePlayback(ctx, req.Token, req.Params.String("device_id")); err != nil {
				return nil, err
			}
			return map[string]any{"playing": false}, nil
		},
	})

	reg.Register(Tool{
		Name:  "next_track",
		Usage: "Skip to the next track",
		Handler: func(ctx context.Context, req Request) (any, error) {
			if err := api.NextTrack(ctx, req.Token, req.Params.String("device_id")); err != nil {
				return nil, err
			}
			return map[string]any{"skipped": "next"}, nil
		},
	})

	reg.Register(Tool{
		Name:  "previous_track",
		Usage: "Skip back to the previous track",
		Handler: func(ctx context.Context, req Request) (any, error) {
			if err := api.PreviousTrack(ctx, req.Token, req.Params.String("device_id")); err != nil {
				return nil, err
			}
			return map[string]any{"skipped": "previous"}, nil
		},
	})

	reg.Register(Tool{
		Name:  "seek",
		Usage: "Seek to a position in the current track (milliseconds)",
		Handler: func(ctx context.Context, req Request) (any, error) {
			positionMS, err := req.Params.RequiredInt("position_ms")
			if err != nil {
				return nil, err
			}
			if err := api.Seek(ctx, req.Token, positionMS, req.Params.String("device_id")); err != nil {
				return nil, err
			}
			return map[string]any{"position_ms": positionMS}, nil
		},
	})

	reg.Register(Tool{
		Name:  "set_volume",
		Usage: "Set playback volume (0-100)",
		Handler: func(ctx context.Context, req Request) (any, error) {
			volume, err := req.Params.RequiredInt("volume_percent")
			if err != nil {
				return nil, err
			}
			if err := api.SetVolume(ctx, req.Token, volume, req.Params.String("device_id")); err != nil {
				return nil, err
			}
			return map[string]any{"volume_percent": volume}, nil
		},
	})

	reg.Register(Tool{
		Name:  "set_repeat",
		Usage: "Set the repeat mode (track, context, or off)",
		Handler: func(ctx context.Context, req Request) (any, error) {
			s, err := req.Params.RequiredString("state")
			if err != nil {
				return nil, err
			}
			state, err := models.ParseRepeatState(s)
			if err != nil {
				return nil, err
			}
			if err := api.SetRepeat(ctx, req.Token, state, req.Params.String("device_id")); err != nil {
				return nil, err
			}
			return map[string]any{"repeat": state}, nil
		},
	})

	reg.Register(Tool{
		Name:  "set_shuffle",
		Usage: "Toggle shuffle",
		Handler: func(ctx context.Context, req Request) (any, error) {
			on := req.Params.Bool("state", false)
			if err := api.SetShuffle(ctx, req.Token, on, req.Params.String("device_id")); err != nil {
				return nil, err
			}
			return map[string]any{"shuffle": on}, nil
		},
	})

	reg.Register(Tool{
		Name:  "transfer_playback",
		Usage: "Move playback to another device",
		Handler: func(ctx context.Context, req Request) (any, error) {
			deviceID, err := req.Params.RequiredString("device_id")
			if err != nil {
				return nil, err
			}
			play := req.Params.Bool("play", false)
			if err := api.TransferPlayback(ctx, req.Token, deviceID, play); err != nil {
				return nil, err
			}
			return map[string]any{"device_id": deviceID, "playing": play}, nil
		},
	})

	reg.Register(Tool{
		Name:  "add_to_queue",
		Usage: "Add a track URI to the playback queue",
		Handler: func(ctx context.Context, req Request) (any, error) {
			uri, err := req.Params.RequiredString("uri")
			if err != nil {
				return nil, err
			}
			if err := api.AddToQueue(ctx, req.Token, uri, req.Params.String("device_id")); err != nil {
				return nil, err
			}
			return map[string]any{"queued": uri}, nil
		},
	})
}
