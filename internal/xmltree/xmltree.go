// Package xmltree provides namespace-aware lookup helpers on top of etree.
//
// etree path queries match prefixes rather than namespace URIs, while the
// OpenSearch and Atom specifications fix URIs and leave prefixes to the
// server. These helpers resolve element namespaces before matching so that
// lookups work regardless of the prefix a feed happens to use.
package xmltree

import (
	"errors"

	"github.com/beevik/etree"
)

// ErrNoRoot is returned when a document parses but has no root element.
var ErrNoRoot = errors.New("document has no root element")

// Parse reads an XML document and returns its root element.
func Parse(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

// ClarkTag returns the element's namespace-qualified name in Clark notation,
// "{uri}local", or the bare local name when the element has no namespace.
func ClarkTag(el *etree.Element) string {
	if uri := el.NamespaceURI(); uri != "" {
		return "{" + uri + "}" + el.Tag
	}
	return el.Tag
}

// Matches reports whether the element has the given namespace URI and local
// name. An empty ns matches elements without a namespace.
func Matches(el *etree.Element, ns, local string) bool {
	return el.Tag == local && el.NamespaceURI() == ns
}

// matchAttrs reports whether every key/value pair is present on the element.
func matchAttrs(el *etree.Element, attrs map[string]string) bool {
	for k, v := range attrs {
		if el.SelectAttrValue(k, "") != v {
			return false
		}
	}
	return true
}

// FindChild returns the first direct child with the given namespace URI,
// local name, and attribute values, or nil.
func FindChild(parent *etree.Element, ns, local string, attrs map[string]string) *etree.Element {
	for _, child := range parent.ChildElements() {
		if Matches(child, ns, local) && matchAttrs(child, attrs) {
			return child
		}
	}
	return nil
}

// FindChildren returns all direct children with the given namespace URI and
// local name, in document order.
func FindChildren(parent *etree.Element, ns, local string) []*etree.Element {
	var out []*etree.Element
	for _, child := range parent.ChildElements() {
		if Matches(child, ns, local) {
			out = append(out, child)
		}
	}
	return out
}

// FindDescendant returns the first descendant (depth-first, the element
// itself excluded) with the given namespace URI and local name, or nil.
func FindDescendant(root *etree.Element, ns, local string) *etree.Element {
	for _, child := range root.ChildElements() {
		if Matches(child, ns, local) {
			return child
		}
		if found := FindDescendant(child, ns, local); found != nil {
			return found
		}
	}
	return nil
}

// ChildText returns the text of the first matching direct child, or "".
func ChildText(parent *etree.Element, ns, local string) string {
	if child := FindChild(parent, ns, local, nil); child != nil {
		return child.Text()
	}
	return ""
}

// AttrMap returns the element's attributes as a map. Prefixed attributes keep
// their prefix ("xsi:type"); xmlns declarations are skipped.
func AttrMap(el *etree.Element) map[string]string {
	attrs := make(map[string]string, len(el.Attr))
	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		key := a.Key
		if a.Space != "" {
			key = a.Space + ":" + a.Key
		}
		attrs[key] = a.Value
	}
	return attrs
}

// Descendants returns the element and all of its descendants in depth-first
// document order.
func Descendants(el *etree.Element) []*etree.Element {
	out := []*etree.Element{el}
	for _, child := range el.ChildElements() {
		out = append(out, Descendants(child)...)
	}
	return out
}
