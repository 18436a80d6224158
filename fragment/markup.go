package fragment

import (
	"bytes"
	"io"
	"iter"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// capture collects raw markup between region start tag and its matching end
// tag.
type capture struct {
	region Region
	depth  int
	buf    bytes.Buffer
}

func (c *capture) write(tok html.Token, raw []byte) {
	// Attribute entries carry no content and are often written self-closed.
	// HTML ignores "/>" on non-void elements, so entries would nest.
	// End tag br reads as another br, leave it alone.
	if c.region == RegionAttributes && tok.Type == html.SelfClosingTagToken && tok.DataAtom != atom.Br {
		tok.Type = html.StartTagToken
		c.buf.WriteString(tok.String())
		c.buf.WriteString("</" + tok.Data + ">")
		return
	}
	c.buf.Write(raw)
}

// scanRegions locates first element of every region anywhere in the template
// and returns its raw inner markup. Template is only tokenized here: tree
// construction would relocate head and body content and hoist unknown foot
// and attributes wrappers into body. Region without end tag extends to the
// end of input.
func scanRegions(r io.Reader) (map[Region][]byte, error) {
	var (
		z       = html.NewTokenizer(r)
		found   = make(map[Region][]byte, len(RegionValues()))
		started = make(map[Region]bool, len(RegionValues()))
		active  []*capture
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			break
		}
		// Token unescapes attribute values in place, raw must be copied first.
		raw := bytes.Clone(z.Raw())

		var tok html.Token
		switch tt {
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			tok = z.Token()
		default:
			tok = html.Token{Type: tt}
		}

		kept := active[:0]
		for _, c := range active {
			if tok.Data == c.region.String() {
				switch tt {
				case html.StartTagToken:
					c.depth++
				case html.EndTagToken:
					c.depth--
				}
				if c.depth == 0 {
					found[c.region] = c.buf.Bytes()
					continue
				}
			}
			c.write(tok, raw)
			kept = append(kept, c)
		}
		active = kept

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		region, err := ParseRegion(tok.Data)
		if err != nil || started[region] {
			continue
		}
		started[region] = true
		if tt == html.SelfClosingTagToken {
			found[region] = []byte{}
			continue
		}
		active = append(active, &capture{region: region, depth: 1})
	}
	for _, c := range active {
		found[c.region] = c.buf.Bytes()
	}
	return found, nil
}

// parseMarkup builds tree out of region markup the way browsers do for
// content set on a <div>. Parsed nodes are children of returned node.
func parseMarkup(markup []byte) (*html.Node, error) {
	nodes, err := html.ParseFragment(bytes.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Div.String(),
		DataAtom: atom.Div,
	})
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.ElementNode, Data: atom.Div.String(), DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

func innerHTML(n *html.Node) (string, error) {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			sb.WriteString(d.Data)
		}
	}
	return sb.String()
}

// findElement returns first descendant element satisfying match in document
// order.
func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	for d := range n.Descendants() {
		if d.Type == html.ElementNode && match(d) {
			return d
		}
	}
	return nil
}

func childElements(n *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		for c := range n.ChildNodes() {
			if c.Type == html.ElementNode && !yield(c) {
				return
			}
		}
	}
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attrKey(a html.Attribute) string {
	if a.Namespace == "" {
		return a.Key
	}
	return a.Namespace + ":" + a.Key
}
