package domain

import "encoding/json"

// PageDocument is one of the per-route page singletons. Page schemas are
// edited freely in the CMS, so fields are kept loosely typed and read
// through the accessors below.
type PageDocument map[string]any

// Text returns the string field or "".
func (p PageDocument) Text(field string) string {
	if p == nil {
		return ""
	}
	s, _ := p[field].(string)
	return s
}

// Number returns the numeric field and whether it was set.
func (p PageDocument) Number(field string) (float64, bool) {
	if p == nil {
		return 0, false
	}
	switch v := p[field].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// Image decodes an image field, or nil when missing.
func (p PageDocument) Image(field string) *ImageRef {
	if p == nil {
		return nil
	}
	raw, ok := p[field]
	if !ok || raw == nil {
		return nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var img ImageRef
	if err := json.Unmarshal(b, &img); err != nil || img.AssetID() == "" {
		return nil
	}
	return &img
}
