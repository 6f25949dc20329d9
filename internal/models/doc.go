// Package models defines the data model for the Spotify tool gateway.
//
// # Format Tiers
//
// Every reading tool accepts a [Format] selector controlling response fidelity:
//
//   - minimal: identifiers and basic metadata only
//   - compact: essential data for most operations (the default)
//   - full: complete data including detailed metadata
//   - raw: the upstream Spotify payload, verbatim
//
// The tiers are ordered by increasing fidelity: every field populated at
// minimal is populated at compact, and every field at compact is populated at
// full. Raw sits outside the ordering and bypasses normalization entirely.
//
// # Domain Records
//
// [Track], [Artist], [Album], [Playlist], [Device], [PlaybackState], and
// [AudioFeatures] mirror the Spotify Web API object schemas. Fields above the
// minimal tier are pointers or slices so an absent value marshals to nothing
// rather than a zero value. Records are constructed fresh per request and
// never persisted.
//
// # Enumerations
//
// String enums ([Format], [ObjectType], [TimeRange], [RepeatState]) parse
// case-insensitively via their Parse functions and fail on unrecognized
// values, never silently defaulting.
package models
