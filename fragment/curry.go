package fragment

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/multierr"
)

// Params are request time overrides applied by Curry. Empty value means the
// parameter was not supplied.
type Params struct {
	// Attr is a comma separated list of "target.attribute=value" entries.
	Attr string
	Foot string
	Head string
	// Targets is a comma separated list of body targets applied by
	// position.
	Targets string
	Title   string
	URL     string
}

// IsZero reports whether no override is present.
func (p Params) IsZero() bool {
	return p == Params{}
}

// AttrOverride is a single parsed entry of Params.Attr.
type AttrOverride struct {
	Target    string
	Attribute string
	Value     string
}

var attrOverrideRe = regexp.MustCompile(`^([\w-]+)\.([\w-]+)=([\w-]+)$`)

// ParseAttrOverrides parses "target.attribute=value" entries separated by
// commas. Empty entries are skipped. All malformed entries are reported
// together in a single *MalformedOverrideError.
func ParseAttrOverrides(value string) ([]AttrOverride, error) {
	var (
		out   []AttrOverride
		bad   []string
		errs  error
		parts = strings.Split(value, ",")
	)
	for _, part := range parts {
		entry := strings.TrimSpace(part)
		if len(entry) == 0 {
			continue
		}
		m := attrOverrideRe.FindStringSubmatch(entry)
		if m == nil {
			bad = append(bad, entry)
			errs = multierr.Append(errs, fmt.Errorf("entry %q does not match target.attribute=value", entry))
			continue
		}
		out = append(out, AttrOverride{Target: m[1], Attribute: m[2], Value: m[3]})
	}
	if len(bad) > 0 {
		return nil, &MalformedOverrideError{Entries: bad, Err: errs}
	}
	return out, nil
}

// Curry customizes fragment with request parameters. Overrides are applied
// in fixed order: attr, foot, head, title, targets, url. Title, url, head and
// foot replace existing values, attr entries are merged into existing
// attributes, targets rename body containers by position.
//
// Parameters are validated before anything is changed: on error the
// fragment is left untouched.
func (f *Fragment) Curry(p Params) error {
	var overrides []AttrOverride
	if len(p.Attr) > 0 {
		var err error
		if overrides, err = ParseAttrOverrides(p.Attr); err != nil {
			return err
		}
	}

	core := &f.Core
	if len(overrides) > 0 {
		if core.Attr == nil {
			core.Attr = make(Attrs)
		}
		for _, o := range overrides {
			if core.Attr[o.Target] == nil {
				core.Attr[o.Target] = make(Attributes)
			}
			core.Attr[o.Target][o.Attribute] = o.Value
		}
	}
	if len(p.Foot) > 0 {
		core.Foot = strPtr(p.Foot)
	}
	if len(p.Head) > 0 {
		core.Head = strPtr(p.Head)
	}
	if len(p.Title) > 0 {
		core.Title = strPtr(p.Title)
	}
	if len(p.Targets) > 0 {
		core.retarget(strings.Split(p.Targets, ","))
	}
	if len(p.URL) > 0 {
		core.URL = strPtr(p.URL)
	}
	return nil
}

// retarget renames i-th container to i-th target. Surplus targets are
// dropped, surplus containers keep their names, so does a container whose
// target is left blank ("a,,c").
func (c *Core) retarget(targets []string) {
	for i := range c.Body {
		if i >= len(targets) {
			break
		}
		if name := strings.TrimSpace(targets[i]); len(name) > 0 {
			c.Body[i].Target = name
		}
	}
}
