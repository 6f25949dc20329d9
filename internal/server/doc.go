// Package server provides HTTP routing, middleware, and tool dispatch for the gateway.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
// Middleware snapshots at registration time, which lets the health handler register ahead of authentication.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method and wildcard patterns.
//
// # Tool Dispatch
//
// Tools register by name in a [Registry]; [ToolsHandler] lists them on GET /tools
// and invokes one on POST /tools/{name} with a JSON parameter object.
// Results and failures alike wrap in a uniform response envelope, with the
// shared error taxonomy mapped onto HTTP status codes.
//
// # Authentication
//
// The [Auth] middleware extracts the caller's bearer token, resolves it to an
// identity through a [Validator], and stashes both in the request context.
// The gateway itself holds no Spotify credentials for API calls; every
// upstream request uses the caller's token.
//
// # OAuth Callback Handler
//
// [OAuthHandler] implements the OAuth2 authorization code callback flow used
// by the CLI login command to mint a token. It validates the state parameter
// (CSRF protection), exchanges the authorization code, and sends the result
// through a channel. It only processes one callback to prevent replay attacks.
package server
