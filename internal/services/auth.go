package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotgate/internal/models"
	"github.com/desertthunder/spotgate/internal/shared"
)

const (
	defaultTokenEndpoint = "https://api.spotify.com/v1/me"

	// validateTimeout bounds one token check so a hung upstream cannot stall
	// request handling.
	validateTimeout = 10 * time.Second
)

// TokenValidator checks caller-supplied bearer tokens against the Spotify
// profile endpoint and resolves them to the owning identity.
type TokenValidator struct {
	endpoint   string
	httpClient *http.Client
	logger     *log.Logger
}

// NewTokenValidator creates a validator against the given profile endpoint.
func NewTokenValidator(endpoint string, httpClient *http.Client, logger *log.Logger) *TokenValidator {
	if endpoint == "" {
		endpoint = defaultTokenEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &TokenValidator{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Validate resolves a bearer token to the identity it belongs to.
//
// Any outcome other than a 200 profile response with a user id fails with
// [shared.ErrAuthFailed], including transport errors and timeouts reaching
// the profile endpoint. Upstream response bodies are logged but never
// surfaced to the caller.
func (v *TokenValidator) Validate(ctx context.Context, token string) (*models.Identity, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", shared.ErrAuthFailed)
	}

	ctx, cancel := context.WithTimeout(ctx, validateTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.logger.Warn("token validation request failed", "error", err)
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: token validation timed out", shared.ErrAuthFailed)
		}
		return nil, fmt.Errorf("%w: validator unreachable: %v", shared.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		v.logger.Warn("token validation rejected", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: upstream returned %d", shared.ErrAuthFailed, resp.StatusCode)
	}

	var profile struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
		Email       string `json:"email"`
		Country     string `json:"country"`
		Product     string `json:"product"`
		Followers   struct {
			Total int `json:"total"`
		} `json:"followers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: unreadable profile response", shared.ErrAuthFailed)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("%w: profile response missing user id", shared.ErrAuthFailed)
	}

	return &models.Identity{
		UserID:      profile.ID,
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
		Country:     profile.Country,
		Product:     profile.Product,
		Followers:   profile.Followers.Total,
	}, nil
}
