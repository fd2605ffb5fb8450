package feed

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-opensearch/internal/xmltree"
)

// Node is one decoded feed element. Tag is the namespace-qualified name in
// Clark notation ("{http://www.w3.org/2005/Atom}id"), Name the local part.
// Text is the element's raw character data ("" when the element is empty).
// Data is not interpreted.
type Node struct {
	Tag      string
	Name     string
	Attrs    map[string]string
	Text     string
	Children []Node
}

// Entry is the decoded node list of one result entry: all descendants of the
// entry element in depth-first document order, excluding any node whose
// qualified tag contains the literal substring "entry". Each node still
// carries its own Children subtree, so both flat scans and tree walks work.
type Entry []Node

// convertEntry flattens one Atom entry (or RSS item) element.
func convertEntry(el *etree.Element) Entry {
	var entry Entry
	for _, desc := range xmltree.Descendants(el) {
		if strings.Contains(xmltree.ClarkTag(desc), "entry") {
			continue
		}
		entry = append(entry, convertNode(desc))
	}
	return entry
}

// convertNode builds the recursive node tree rooted at el. Nested
// entry-tagged nodes are excluded so decoding never re-descends into nested
// result items.
func convertNode(el *etree.Element) Node {
	node := Node{
		Tag:   xmltree.ClarkTag(el),
		Name:  el.Tag,
		Attrs: xmltree.AttrMap(el),
		Text:  el.Text(),
	}
	for _, child := range el.ChildElements() {
		if strings.Contains(xmltree.ClarkTag(child), "entry") {
			continue
		}
		node.Children = append(node.Children, convertNode(child))
	}
	return node
}
