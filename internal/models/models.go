package models

import "sort"

// Field names a post gains during enrichment.
const (
	FieldText      = "text"
	FieldLineCount = "line_count"
	FieldLanguage  = "language"
	FieldTags      = "tags"
)

// Post is one unit of input text plus whatever other fields the caller
// supplied (timestamps, engagement counters, ...). The open field set is
// deliberate: unknown fields must survive a load/enrich/save round trip
// verbatim, so posts are decoded straight into a map rather than a struct.
type Post map[string]any

// Text returns the post body, or "" when the field is missing or not a string.
func (p Post) Text() string {
	s, _ := p[FieldText].(string)
	return s
}

// SetText overwrites the post body in place.
func (p Post) SetText(text string) {
	p[FieldText] = text
}

// Tags returns the post's tag list. ok is false when the tags field is
// absent or not a list; callers treat such posts as untagged.
func (p Post) Tags() (tags []string, ok bool) {
	switch v := p[FieldTags].(type) {
	case []string:
		return v, true
	case []any:
		// JSON decoding yields []any; coerce the string elements.
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, isStr := e.(string); isStr {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// SetTags stores a sorted copy of tags on the post.
func (p Post) SetTags(tags []string) {
	sorted := make([]string, len(tags))
	copy(sorted, tags)
	sort.Strings(sorted)
	p[FieldTags] = sorted
}

// Merge returns a new post whose fields are the union of p and fields,
// with fields winning on key collision. p is left untouched.
func (p Post) Merge(fields map[string]any) Post {
	merged := make(Post, len(p)+len(fields))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}
