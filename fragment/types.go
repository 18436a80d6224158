package fragment

import (
	"maps"
)

// DefaultTarget is used for body containers which do not name their target.
const DefaultTarget = "container"

// Container is a single body block together with identifier of the page
// element it should be rendered into.
type Container struct {
	Target  string
	Content string
}

// Attributes maps attribute name to its value.
type Attributes map[string]string

// Attrs maps target identifier to attributes to be set on that element.
// Targets do not have to be present in Body, attributes may be directed at
// elements rendered by other fragments.
type Attrs map[string]Attributes

// Core is normalized representation of a fragment's content.
//
// Nil pointer, slice or map means the template did not have the
// corresponding region; a non-nil empty value is a present but empty region.
type Core struct {
	Title *string
	URL   *string
	Head  *string
	Foot  *string
	// Body keeps document order, which matters for positional target
	// renaming. Identity for merging is Target.
	Body []Container
	Attr Attrs
}

// Fragment is a named Core. After a merge the name lists all merged
// fragments joined by "+".
type Fragment struct {
	Name string
	Core Core
}

func strPtr(s string) *string {
	return &s
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	return strPtr(*s)
}

// Clone returns deep copy of the attributes.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for target, attrs := range a {
		out[target] = maps.Clone(attrs)
	}
	return out
}

// Clone returns deep copy of the core, absent fields stay absent.
func (c *Core) Clone() Core {
	out := Core{
		Title: clonePtr(c.Title),
		URL:   clonePtr(c.URL),
		Head:  clonePtr(c.Head),
		Foot:  clonePtr(c.Foot),
		Attr:  c.Attr.Clone(),
	}
	if c.Body != nil {
		out.Body = make([]Container, len(c.Body))
		copy(out.Body, c.Body)
	}
	return out
}

// Clone returns deep copy of the fragment.
func (f *Fragment) Clone() *Fragment {
	return &Fragment{Name: f.Name, Core: f.Core.Clone()}
}

// Targets returns body targets in document order.
func (c *Core) Targets() []string {
	if c.Body == nil {
		return nil
	}
	out := make([]string, 0, len(c.Body))
	for _, cnt := range c.Body {
		out = append(out, cnt.Target)
	}
	return out
}

// Regions returns names of the fields present in the core in wire order.
func (c *Core) Regions() []string {
	var out []string
	if c.Title != nil {
		out = append(out, "title")
	}
	if c.URL != nil {
		out = append(out, "url")
	}
	if c.Head != nil {
		out = append(out, "head")
	}
	if c.Body != nil {
		out = append(out, "body")
	}
	if c.Foot != nil {
		out = append(out, "foot")
	}
	if c.Attr != nil {
		out = append(out, "attr")
	}
	return out
}
