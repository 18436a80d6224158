package fragment

// Merge absorbs other into f. Title and url of other win, body containers
// are merged by target (content appended to the first container with the
// same target, new targets added at the end), attributes are merged per
// target and attribute with other winning, head and foot are concatenated.
//
// Merging is ordered, not associative: A.Merge(B) followed by Merge(C)
// gives C's title and url precedence over B's and B's over A's, while
// accumulated values keep A, B, C order. Nothing from other is shared with f
// afterwards.
func (f *Fragment) Merge(other *Fragment) {
	f.Name += "+" + other.Name

	dst, src := &f.Core, &other.Core
	if src.Title != nil {
		dst.Title = clonePtr(src.Title)
	}
	if src.URL != nil {
		dst.URL = clonePtr(src.URL)
	}
	dst.Head = concat(dst.Head, src.Head)
	dst.Foot = concat(dst.Foot, src.Foot)
	if src.Body != nil {
		dst.mergeBody(src.Body)
	}
	if src.Attr != nil {
		dst.mergeAttr(src.Attr)
	}
}

// concat appends b to a, absent a counts as empty. Absent b leaves a as is.
func concat(a, b *string) *string {
	if b == nil {
		return a
	}
	if a == nil {
		return strPtr(*b)
	}
	return strPtr(*a + *b)
}

func (c *Core) mergeBody(body []Container) {
	if c.Body == nil {
		c.Body = make([]Container, 0, len(body))
	}
	for _, cnt := range body {
		if i := c.findTarget(cnt.Target); i >= 0 {
			c.Body[i].Content += cnt.Content
			continue
		}
		c.Body = append(c.Body, cnt)
	}
}

// findTarget returns position of the first container with target or -1.
func (c *Core) findTarget(target string) int {
	for i := range c.Body {
		if c.Body[i].Target == target {
			return i
		}
	}
	return -1
}

func (c *Core) mergeAttr(attr Attrs) {
	if c.Attr == nil {
		c.Attr = make(Attrs, len(attr))
	}
	for target, attrs := range attr {
		if c.Attr[target] == nil {
			c.Attr[target] = make(Attributes, len(attrs))
		}
		for name, value := range attrs {
			c.Attr[target][name] = value
		}
	}
}
