package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ServiceEntry describes one offering. The planning catalog publishes its
// bullet list as "capabilities"; both spellings land in Features.
type ServiceEntry struct {
	Key         string   `json:"-"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

func (s *ServiceEntry) UnmarshalJSON(b []byte) error {
	type entry ServiceEntry
	var raw struct {
		entry
		Capabilities []string `json:"capabilities"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = ServiceEntry(raw.entry)
	if s.Features == nil {
		s.Features = raw.Capabilities
	}
	return nil
}

// ServiceCatalog maps service keys to entries while keeping the order in
// which the backend listed them.
type ServiceCatalog struct {
	keys    []string
	entries map[string]ServiceEntry
}

// NewServiceCatalog builds a catalog from entries in display order.
// A repeated key replaces the earlier entry but keeps its position.
func NewServiceCatalog(entries ...ServiceEntry) ServiceCatalog {
	var c ServiceCatalog
	for _, e := range entries {
		c.put(e)
	}
	return c
}

func (c *ServiceCatalog) put(e ServiceEntry) {
	if c.entries == nil {
		c.entries = make(map[string]ServiceEntry)
	}
	if _, ok := c.entries[e.Key]; !ok {
		c.keys = append(c.keys, e.Key)
	}
	c.entries[e.Key] = e
}

// Len reports the number of entries.
func (c ServiceCatalog) Len() int { return len(c.keys) }

// Keys returns the service keys in display order.
func (c ServiceCatalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Get looks up one entry by key.
func (c ServiceCatalog) Get(key string) (ServiceEntry, bool) {
	e, ok := c.entries[key]
	return e, ok
}

// Entries returns all entries in display order.
func (c ServiceCatalog) Entries() []ServiceEntry {
	out := make([]ServiceEntry, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.entries[k])
	}
	return out
}

// UnmarshalJSON walks the object token by token so that key order survives.
func (c *ServiceCatalog) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("service catalog: expected object, got %v", tok)
	}

	var out ServiceCatalog
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("service catalog: expected key, got %v", tok)
		}
		var e ServiceEntry
		if err := dec.Decode(&e); err != nil {
			return fmt.Errorf("service catalog: entry %q: %w", key, err)
		}
		e.Key = key
		out.put(e)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

// MarshalJSON writes the catalog back as an object in display order.
func (c ServiceCatalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(c.entries[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
