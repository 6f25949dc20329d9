// Package normalize maps raw Spotify API payloads into fixed-shape domain
// records at a requested format tier.
//
// # Parse Loosely, Construct Strictly
//
// Upstream payloads are read as open maps so additive upstream changes never
// break ingestion. Output records have a fixed field set per tier: fields the
// tier does not include are left unset, and fields the tier includes but
// upstream omitted resolve to an explicit absent value.
//
// # Tier Assembly
//
// Each builder assembles the minimal field set first (id, name, uri, href,
// external_urls, and nested artists for tracks and albums), then merges in the
// compact and full tiers when requested. Missing required minimal fields fail
// with [shared.ErrMalformedObject].
//
// Nested artist and album references are always normalized at minimal,
// regardless of the outer format. This is a deliberate one-level recursion
// bound: it keeps full-format responses from expanding through
// cross-referenced catalog objects.
//
// # Degraded Mode
//
// [Normalizer.NormalizeOrRaw] and [Normalizer.NormalizeList] recover from
// per-object failures by logging and passing the raw object through
// unmodified, so one malformed item never aborts a whole listing.
package normalize
