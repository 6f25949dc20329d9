package normalize

import (
	"fmt"

	"github.com/desertthunder/spotgate/internal/models"
	"github.com/desertthunder/spotgate/internal/shared"
)

// Field accessors over raw JSON objects. Numbers arrive as float64 from
// encoding/json; accessors convert where the schema calls for integers.

func requireString(raw map[string]any, key string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: missing required field %q", shared.ErrMalformedObject, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is not a string", shared.ErrMalformedObject, key)
	}
	return s, nil
}

func requireBool(raw map[string]any, key string) (bool, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return false, fmt.Errorf("%w: missing required field %q", shared.ErrMalformedObject, key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: field %q is not a boolean", shared.ErrMalformedObject, key)
	}
	return b, nil
}

func requireFloat(raw map[string]any, key string) (float64, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: missing required field %q", shared.ErrMalformedObject, key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: field %q is not a number", shared.ErrMalformedObject, key)
	}
	return f, nil
}

func requireInt(raw map[string]any, key string) (int, error) {
	f, err := requireFloat(raw, key)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func optString(raw map[string]any, key string) *string {
	if s, ok := raw[key].(string); ok {
		return &s
	}
	return nil
}

func optInt(raw map[string]any, key string) *int {
	if f, ok := raw[key].(float64); ok {
		n := int(f)
		return &n
	}
	return nil
}

func optBool(raw map[string]any, key string) *bool {
	if b, ok := raw[key].(bool); ok {
		return &b
	}
	return nil
}

func optObject(raw map[string]any, key string) map[string]any {
	if m, ok := raw[key].(map[string]any); ok {
		return m
	}
	return nil
}

func optObjectList(raw map[string]any, key string) []map[string]any {
	items, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	objs := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			objs = append(objs, m)
		}
	}
	return objs
}

func optStringSlice(raw map[string]any, key string) []string {
	items, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func externalURLs(raw map[string]any, key string) *models.ExternalURLs {
	m := optObject(raw, key)
	if m == nil {
		return nil
	}
	urls := &models.ExternalURLs{}
	if s, ok := m["spotify"].(string); ok {
		urls.Spotify = s
	}
	return urls
}

func externalIDs(raw map[string]any, key string) *models.ExternalIDs {
	m := optObject(raw, key)
	if m == nil {
		return nil
	}
	ids := &models.ExternalIDs{}
	if s, ok := m["isrc"].(string); ok {
		ids.ISRC = s
	}
	if s, ok := m["ean"].(string); ok {
		ids.EAN = s
	}
	if s, ok := m["upc"].(string); ok {
		ids.UPC = s
	}
	return ids
}

func followers(raw map[string]any, key string) *models.Followers {
	m := optObject(raw, key)
	if m == nil {
		return nil
	}
	f := &models.Followers{}
	if s, ok := m["href"].(string); ok {
		f.Href = s
	}
	if n, ok := m["total"].(float64); ok {
		f.Total = int(n)
	}
	return f
}

func images(raw map[string]any, key string) []models.Image {
	objs := optObjectList(raw, key)
	if objs == nil {
		return nil
	}
	imgs := make([]models.Image, 0, len(objs))
	for _, obj := range objs {
		img := models.Image{}
		if s, ok := obj["url"].(string); ok {
			img.URL = s
		}
		img.Height = optInt(obj, "height")
		img.Width = optInt(obj, "width")
		imgs = append(imgs, img)
	}
	return imgs
}
