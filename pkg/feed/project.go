package feed

// Field identifies one entry field for projection: the namespace-qualified
// tag and local name of a top-level entry node, plus an optional rel
// attribute to distinguish links. An empty Rel matches any node regardless
// of its rel attribute.
type Field struct {
	Tag  string
	Name string
	Rel  string
}

// AvailableFields lists the fields of the first entry, one descriptor per
// node. Rel is copied when the node carries a rel attribute. Returns nil
// when there are no entries.
func AvailableFields(entries []Entry) []Field {
	if len(entries) == 0 {
		return nil
	}
	fields := make([]Field, 0, len(entries[0]))
	for _, node := range entries[0] {
		f := Field{Tag: node.Tag, Name: node.Name}
		if rel, ok := node.Attrs["rel"]; ok {
			f.Rel = rel
		}
		fields = append(fields, f)
	}
	return fields
}

// Filter keeps, for every entry, the nodes matching at least one field spec.
// A field with a Rel additionally requires the node's rel attribute to be
// equal; nodes without a rel attribute never match such a field. Entry order
// is preserved, and every entry produces a slice even when nothing matched.
func Filter(entries []Entry, fields []Field) [][]Node {
	out := make([][]Node, 0, len(entries))
	for _, entry := range entries {
		var kept []Node
		for _, node := range entry {
			if matchesAny(node, fields) {
				kept = append(kept, node)
			}
		}
		out = append(out, kept)
	}
	return out
}

func matchesAny(node Node, fields []Field) bool {
	for _, f := range fields {
		if node.Tag != f.Tag || node.Name != f.Name {
			continue
		}
		if f.Rel != "" && node.Attrs["rel"] != f.Rel {
			continue
		}
		return true
	}
	return false
}
