package normalize

import (
	"github.com/desertthunder/spotgate/internal/models"
)

// Paginated wraps normalized items with the pagination cursors carried by an
// upstream listing envelope (total, limit, offset, next, previous).
//
// The cursors are opaque: next and previous are continuation URLs passed
// through untouched.
func Paginated(items []any, envelope map[string]any) models.PaginatedResponse {
	resp := models.PaginatedResponse{
		Items: items,
		Total: optInt(envelope, "total"),
		Next:  optString(envelope, "next"),
	}
	resp.Previous = optString(envelope, "previous")

	if limit := optInt(envelope, "limit"); limit != nil {
		resp.Limit = *limit
	}
	if offset := optInt(envelope, "offset"); offset != nil {
		resp.Offset = *offset
	}

	return resp
}

// Search assembles a [models.SearchResponse] from a raw multi-type search
// result, normalizing each requested type's items at the given format.
//
// TotalResults sums the per-type totals reported upstream. Summing counts
// across heterogeneous types is a documented limitation of the response
// contract, kept for compatibility.
func (n *Normalizer) Search(results map[string]any, types []models.ObjectType, f models.Format) models.SearchResponse {
	resp := models.SearchResponse{FormatUsed: f}

	for _, t := range types {
		bucket := optObject(results, t.Plural())
		if bucket == nil {
			continue
		}

		if total := optInt(bucket, "total"); total != nil {
			resp.TotalResults += *total
		}

		items, _ := bucket["items"].([]any)
		normalized := n.NormalizeList(items, t, f)

		switch t {
		case models.ObjectTrack:
			resp.Tracks = normalized
		case models.ObjectArtist:
			resp.Artists = normalized
		case models.ObjectAlbum:
			resp.Albums = normalized
		case models.ObjectPlaylist:
			resp.Playlists = normalized
		}
	}

	return resp
}
