package fragment

import (
	"sort"

	"github.com/maruel/natural"

	"fragd/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable tree of the fragment. It exists solely for
// manual inspection and debug reports.
func (f *Fragment) String() string {
	if f == nil {
		return "<nil Fragment>"
	}
	tw := treeWriter{debug.NewTreeWriter()}
	tw.Line(0, "Fragment %q", f.Name)
	tw.core(1, &f.Core)
	return tw.String()
}

func (tw treeWriter) optional(depth int, label string, value *string) {
	if value == nil {
		tw.Line(depth, "%s: <absent>", label)
		return
	}
	tw.TextBlock(depth, label, *value)
}

func (tw treeWriter) core(depth int, c *Core) {
	tw.optional(depth, "Title", c.Title)
	tw.optional(depth, "URL", c.URL)
	tw.optional(depth, "Head", c.Head)
	if c.Body == nil {
		tw.Line(depth, "Body: <absent>")
	} else {
		tw.Line(depth, "Body: %d", len(c.Body))
		for i, cnt := range c.Body {
			tw.Line(depth+1, "Container[%d] target=%q", i, cnt.Target)
			tw.TextBlock(depth+2, "Content", cnt.Content)
		}
	}
	tw.optional(depth, "Foot", c.Foot)
	if c.Attr == nil {
		tw.Line(depth, "Attr: <absent>")
		return
	}
	tw.Line(depth, "Attr: %d", len(c.Attr))
	targets := make([]string, 0, len(c.Attr))
	for target := range c.Attr {
		targets = append(targets, target)
	}
	sort.Sort(natural.StringSlice(targets))
	for _, target := range targets {
		tw.Pairs(depth+1, "Target["+target+"]", c.Attr[target])
	}
}
