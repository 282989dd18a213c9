package sequence

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Groups is the ordered result of GroupBy. Keys keep first-seen order.
type Groups struct {
	keys   []string
	groups map[string][]any
}

func newGroups() *Groups {
	return &Groups{groups: make(map[string][]any)}
}

func (g *Groups) add(key string, item any) {
	if _, ok := g.groups[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.groups[key] = append(g.groups[key], item)
}

// Keys returns the group keys in first-seen order.
func (g *Groups) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the items grouped under key.
func (g *Groups) Get(key string) ([]any, bool) {
	items, ok := g.groups[key]
	if !ok {
		return nil, false
	}
	out := make([]any, len(items))
	copy(out, items)
	return out, true
}

// Len returns the number of groups.
func (g *Groups) Len() int { return len(g.keys) }

// Map returns the groups as a plain map.
func (g *Groups) Map() map[string][]any {
	out := make(map[string][]any, len(g.groups))
	for _, k := range g.keys {
		out[k], _ = g.Get(k)
	}
	return out
}

// MarshalJSON encodes the groups as an object with keys in first-seen order.
func (g *Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(g.groups[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
