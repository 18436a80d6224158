package fragment

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// Parse reads fragment template markup and builds its Core. Regions missing
// from the template leave corresponding fields absent.
func Parse(r io.Reader, log *zap.Logger) (Core, error) {
	src, err := charset.NewReader(r, "text/html")
	if err != nil {
		return Core{}, fmt.Errorf("unable to read template markup: %w", err)
	}
	regions, err := scanRegions(src)
	if err != nil {
		return Core{}, fmt.Errorf("unable to read template markup: %w", err)
	}

	var core Core
	for _, region := range RegionValues() {
		markup, ok := regions[region]
		if !ok {
			log.Debug("Region is absent", zap.Stringer("region", region))
			continue
		}
		root, err := parseMarkup(markup)
		if err != nil {
			return Core{}, fmt.Errorf("unable to parse %s markup: %w", region, err)
		}
		part, err := parseRegion(region, root, log)
		if err != nil {
			return Core{}, fmt.Errorf("unable to build %s: %w", region, err)
		}
		core.fill(part)
	}
	return core, nil
}

func parseRegion(region Region, root *html.Node, log *zap.Logger) (Core, error) {
	switch region {
	case RegionHead:
		return parseHead(root, log)
	case RegionBody:
		return parseBody(root, log)
	case RegionFoot:
		return parseFoot(root, log)
	case RegionAttributes:
		return parseAttributes(root, log)
	default:
		// this should never happen
		panic(fmt.Sprintf("unexpected region %q", region))
	}
}

// fill copies fields present in part. Regions produce disjoint fields.
func (c *Core) fill(part Core) {
	if part.Title != nil {
		c.Title = part.Title
	}
	if part.URL != nil {
		c.URL = part.URL
	}
	if part.Head != nil {
		c.Head = part.Head
	}
	if part.Foot != nil {
		c.Foot = part.Foot
	}
	if part.Body != nil {
		c.Body = part.Body
	}
	if part.Attr != nil {
		c.Attr = part.Attr
	}
}

// parseHead extracts title and canonical url (<meta url="...">) out of head
// markup, whatever is left becomes head additions.
func parseHead(root *html.Node, log *zap.Logger) (Core, error) {
	var part Core

	if title := findElement(root, func(n *html.Node) bool { return n.DataAtom == atom.Title }); title != nil {
		if text := textContent(title); len(text) > 0 {
			part.Title = strPtr(text)
			title.Parent.RemoveChild(title)
		} else {
			log.Debug("Empty title in head, keeping it as markup")
		}
	}
	if meta := findElement(root, func(n *html.Node) bool {
		_, ok := attrValue(n, "url")
		return n.DataAtom == atom.Meta && ok
	}); meta != nil {
		if url, _ := attrValue(meta, "url"); len(url) > 0 {
			part.URL = strPtr(url)
			meta.Parent.RemoveChild(meta)
		} else {
			log.Debug("Empty url meta in head, keeping it as markup")
		}
	}

	head, err := innerHTML(root)
	if err != nil {
		return Core{}, err
	}
	part.Head = strPtr(head)
	return part, nil
}

// parseBody makes a container out of every child element. Containers without
// "for" attribute go to DefaultTarget.
func parseBody(root *html.Node, log *zap.Logger) (Core, error) {
	part := Core{Body: make([]Container, 0)}
	for child := range childElements(root) {
		target, _ := attrValue(child, "for")
		if len(target) == 0 {
			target = DefaultTarget
		}
		content, err := innerHTML(child)
		if err != nil {
			return Core{}, err
		}
		part.Body = append(part.Body, Container{Target: target, Content: content})
		log.Debug("Body container", zap.String("tag", child.Data), zap.String("target", target))
	}
	return part, nil
}

func parseFoot(root *html.Node, _ *zap.Logger) (Core, error) {
	foot, err := innerHTML(root)
	if err != nil {
		return Core{}, err
	}
	return Core{Foot: strPtr(foot)}, nil
}

// parseAttributes reads per target attribute overrides: child's id names the
// target, all its other attributes are values to set.
func parseAttributes(root *html.Node, log *zap.Logger) (Core, error) {
	part := Core{Attr: make(Attrs)}
	for child := range childElements(root) {
		target, _ := attrValue(child, "id")
		if len(target) == 0 {
			log.Warn("Attributes entry without id, ignoring", zap.String("tag", child.Data))
			continue
		}
		attrs := make(Attributes, len(child.Attr))
		for _, a := range child.Attr {
			if a.Namespace == "" && a.Key == "id" {
				continue
			}
			attrs[attrKey(a)] = a.Val
		}
		if _, exists := part.Attr[target]; exists {
			log.Warn("Duplicate attributes entry, replacing previous one", zap.String("target", target))
		}
		part.Attr[target] = attrs
	}
	return part, nil
}
