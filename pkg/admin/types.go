package admin

import (
	"encoding/json"
	"strconv"
	"time"
)

// Timestamp is a backend timestamp. The API emits RFC 3339, "Y-m-d H:i:s",
// datetime-local values or plain dates depending on the column. A value that
// matches none of them is kept verbatim in Raw and re-emitted on marshal.
type Timestamp struct {
	time.Time

	Raw string `json:"-" yaml:"-"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// IsSet reports whether the backend sent a value, parsed or not.
func (t Timestamp) IsSet() bool {
	return !t.IsZero() || t.Raw != ""
}

// String returns the parsed time, or the raw value when it did not parse.
func (t Timestamp) String() string {
	if t.Raw != "" {
		return t.Raw
	}

	return t.Time.String()
}

// UnmarshalJSON implements json.Unmarshaler. Only non-string values fail;
// unknown layouts land in Raw.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	value, err := strconv.Unquote(string(data))
	if err != nil {
		return ErrInvalidTimestamp
	}

	if value == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		parsed, parseErr := time.Parse(layout, value)
		if parseErr == nil {
			t.Time = parsed
			t.Raw = ""

			return nil
		}
	}

	t.Time = time.Time{}
	t.Raw = value

	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Raw != "" {
		return json.Marshal(t.Raw)
	}

	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.Format(time.RFC3339))
}

// MarshalYAML renders the timestamp the same way as JSON.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.Raw != "" {
		return t.Raw, nil
	}

	if t.IsZero() {
		return nil, nil
	}

	return t.Format(time.RFC3339), nil
}

// PageMeta is the paging descriptor the backend attaches to list responses.
type PageMeta struct {
	CurrentPage int        `json:"current_page"    yaml:"current_page"`
	From        int        `json:"from"            yaml:"from"`
	LastPage    int        `json:"last_page"       yaml:"last_page"`
	PerPage     int        `json:"per_page"        yaml:"per_page"`
	To          int        `json:"to"              yaml:"to"`
	Total       int        `json:"total"           yaml:"total"`
	Path        string     `json:"path,omitempty"  yaml:"path,omitempty"`
	Links       []MetaLink `json:"links,omitempty" yaml:"links,omitempty"`
}

// MetaLink is one entry of the numbered pager the backend renders.
type MetaLink struct {
	URL    *string `json:"url"    yaml:"url"`
	Label  string  `json:"label"  yaml:"label"`
	Active bool    `json:"active" yaml:"active"`
}

// PageLinks holds the first/last/prev/next URLs of a list response.
type PageLinks struct {
	First *string `json:"first" yaml:"first"`
	Last  *string `json:"last"  yaml:"last"`
	Prev  *string `json:"prev"  yaml:"prev"`
	Next  *string `json:"next"  yaml:"next"`
}

// ListResponse represents a paginated list response.
type ListResponse[T any] struct {
	Data  []T       `json:"data"  yaml:"data"`
	Links PageLinks `json:"links" yaml:"links"`
	Meta  PageMeta  `json:"meta"  yaml:"meta"`
}

// HasNext reports whether the backend advertises a following page.
func (l *ListResponse[T]) HasNext() bool {
	return l.Links.Next != nil && *l.Links.Next != ""
}

// DataResponse is the envelope single-resource responses are wrapped in.
type DataResponse[T any] struct {
	Data T `json:"data" yaml:"data"`
}

// MessageResponse is returned by endpoints that only acknowledge an action.
type MessageResponse struct {
	Message string `json:"message" yaml:"message"`
}
