package admin

import (
	"fmt"
	"sort"
	"strings"
)

// Query is an ordered, flat key/value mapping rendered into a list query
// string. Keys and values are written verbatim: nothing is escaped and
// slices or nested values are formatted with fmt, so callers must only pass
// scalar values.
type Query struct {
	keys   []string
	values map[string]interface{}
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{
		values: make(map[string]interface{}),
	}
}

// QueryFromMap creates a query from a map. Keys are added in sorted order.
func QueryFromMap(params map[string]interface{}) *Query {
	query := NewQuery()

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		query.Set(key, params[key])
	}

	return query
}

// Set assigns a value. An existing key keeps its position.
func (q *Query) Set(key string, value interface{}) *Query {
	if _, exists := q.values[key]; !exists {
		q.keys = append(q.keys, key)
	}

	q.values[key] = value

	return q
}

// Get returns the value stored for key.
func (q *Query) Get(key string) (interface{}, bool) {
	value, ok := q.values[key]

	return value, ok
}

// Del removes a key.
func (q *Query) Del(key string) *Query {
	if _, exists := q.values[key]; !exists {
		return q
	}

	delete(q.values, key)

	for i, existing := range q.keys {
		if existing == key {
			q.keys = append(q.keys[:i], q.keys[i+1:]...)

			break
		}
	}

	return q
}

// Merge copies every key of other into q, in other's order.
func (q *Query) Merge(other *Query) *Query {
	if other == nil {
		return q
	}

	for _, key := range other.keys {
		q.Set(key, other.values[key])
	}

	return q
}

// Len returns the number of keys.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}

	return len(q.keys)
}

// Encode joins the pairs as "k1=v1&k2=v2" in insertion order.
func (q *Query) Encode() string {
	if q == nil {
		return ""
	}

	pairs := make([]string, 0, len(q.keys))
	for _, key := range q.keys {
		pairs = append(pairs, key+"="+fmt.Sprint(q.values[key]))
	}

	return strings.Join(pairs, "&")
}

// String implements fmt.Stringer.
func (q *Query) String() string {
	return q.Encode()
}
