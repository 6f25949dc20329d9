// Package services holds the outbound Spotify Web API layer: a rate limited
// raw JSON client, bearer token validation, and the [Spotify] facade that
// validates arguments before anything leaves the process.
//
// The facade never interprets payloads beyond envelope extraction. Responses
// stay as open maps so the normalize package owns all shaping; callers pick a
// format tier there, not here.
package services
