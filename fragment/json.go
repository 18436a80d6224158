package fragment

import (
	"bytes"
	"encoding/json"
)

// wireFragment is the response object understood by the client side
// navigation library. Body becomes an object keyed by target. Pointers keep
// absent regions out of the output while present empty ones are sent as
// empty values.
type wireFragment struct {
	Title *string            `json:"title,omitempty"`
	URL   *string            `json:"url,omitempty"`
	Head  *string            `json:"head,omitempty"`
	Body  *map[string]string `json:"body,omitempty"`
	Foot  *string            `json:"foot,omitempty"`
	Attr  *Attrs             `json:"attr,omitempty"`
}

func (c *Core) wire() wireFragment {
	w := wireFragment{
		Title: c.Title,
		URL:   c.URL,
		Head:  c.Head,
		Foot:  c.Foot,
	}
	if c.Body != nil {
		// last container wins should duplicates survive a merge
		body := make(map[string]string, len(c.Body))
		for _, cnt := range c.Body {
			body[cnt.Target] = cnt.Content
		}
		w.Body = &body
	}
	if c.Attr != nil {
		attr := c.Attr
		w.Attr = &attr
	}
	return w
}

// MarshalJSON encodes the core in the response format. Markup is kept
// readable, HTML characters are not escaped.
func (c Core) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c.wire()); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalJSON encodes fragment's core, the name is not part of the response.
func (f *Fragment) MarshalJSON() ([]byte, error) {
	return f.Core.MarshalJSON()
}

// JSON is a shortcut for MarshalJSON.
func (f *Fragment) JSON() ([]byte, error) {
	return f.Core.MarshalJSON()
}
