package server

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotgate/internal/shared"
	"golang.org/x/oauth2"
)

// LoginResult is the outcome of one authorization code exchange.
type LoginResult struct {
	Token *oauth2.Token
	Err   error
}

// OAuthHandler serves the authorization code callback that mints the bearer
// token callers present to the gateway. A handler covers exactly one login
// attempt: the first callback is exchanged and later hits are refused.
type OAuthHandler struct {
	config  *oauth2.Config
	state   string
	logger  *log.Logger
	claimed atomic.Bool
	once    sync.Once
	results chan LoginResult
}

// NewOAuthHandler creates a callback handler bound to one state token. The
// state must be freshly generated per login attempt.
func NewOAuthHandler(config *oauth2.Config, state string, logger *log.Logger) *OAuthHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &OAuthHandler{
		config:  config,
		state:   state,
		logger:  logger,
		results: make(chan LoginResult, 1),
	}
}

func (h *OAuthHandler) Routes() []string {
	return []string{"GET /callback"}
}

// ServeHTTP validates the state token, exchanges the authorization code, and
// delivers the result to the waiting login flow. Failures answer the browser
// with the gateway's error envelope.
func (h *OAuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.claimed.CompareAndSwap(false, true) {
		writeError(w, fmt.Errorf("%w: login already completed", shared.ErrInvalidInput))
		return
	}

	q := r.URL.Query()
	if q.Get("state") != h.state {
		h.fail(w, fmt.Errorf("%w: callback state mismatch", shared.ErrAuthFailed))
		return
	}

	code := q.Get("code")
	if code == "" {
		h.logger.Warn("authorization refused",
			"error", q.Get("error"), "description", q.Get("error_description"))
		h.fail(w, fmt.Errorf("%w: authorization refused: %s", shared.ErrAuthFailed, q.Get("error")))
		return
	}

	token, err := h.config.Exchange(r.Context(), code)
	if err != nil {
		h.fail(w, fmt.Errorf("%w: code exchange failed: %v", shared.ErrAuthFailed, err))
		return
	}

	h.logger.Info("access token minted", "expires", token.Expiry)
	h.deliver(LoginResult{Token: token})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, loginCompletePage)
}

func (h *OAuthHandler) fail(w http.ResponseWriter, err error) {
	h.logger.Warn("login callback failed", "error", err)
	h.deliver(LoginResult{Err: err})
	writeError(w, err)
}

func (h *OAuthHandler) deliver(result LoginResult) {
	h.once.Do(func() {
		h.results <- result
		close(h.results)
	})
}

// Result yields exactly one LoginResult, after which the channel is closed.
func (h *OAuthHandler) Result() <-chan LoginResult {
	return h.results
}

const loginCompletePage = `<!DOCTYPE html>
<html>
<head><title>spotgate login</title></head>
<body style="font-family: sans-serif; margin: 4rem auto; max-width: 28rem; text-align: center;">
  <h1 style="color: #1DB954;">Login complete</h1>
  <p>Your access token is ready. Return to the terminal.</p>
</body>
</html>
`
