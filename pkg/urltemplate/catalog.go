package urltemplate

import (
	"regexp"
	"strings"
)

// placeholderPattern matches one bracketed template placeholder, e.g.
// {searchTerms} or {eop:instrument?}.
var placeholderPattern = regexp.MustCompile(`\{[\w:?]+\}`)

// Type classifies a search parameter for form rendering and validation.
type Type string

// Parameter types
const (
	TypeText   Type = "text"
	TypeDate   Type = "date"
	TypeSelect Type = "select"
)

// Option is one enumerated value of a select parameter. Label falls back to
// the value when the description document declares none.
type Option struct {
	Label string
	Value string
}

// TemplateParameter is the raw parameter metadata declared under the chosen
// Url element of a description document, one per child node.
type TemplateParameter struct {
	Name         string
	Value        string
	Title        string
	Pattern      string
	Minimum      string
	MinInclusive string
	MaxInclusive string
	Options      []Option
}

// Descriptor describes one template placeholder. Key is the normalized
// internal key (braces and optional marker stripped, ':' replaced by '_'),
// CleanTag the placeholder without braces or optional marker, and FullTag the
// original bracketed token, which is the caller-facing lookup key when
// supplying search values.
type Descriptor struct {
	Key          string
	CleanTag     string
	FullTag      string
	Type         Type
	Title        string
	Pattern      string
	Minimum      string
	MinInclusive string
	MaxInclusive string
	Options      []Option
}

// Catalog holds the descriptors of a template's placeholders in first-seen
// order, plus the reverse lookup from protocol parameter name to internal key.
// A Catalog is immutable once built.
type Catalog struct {
	descriptors []Descriptor
	byKey       map[string]int
	paramNames  map[string]string
}

// BuildCatalog scans the template for placeholders and pairs each one with
// the declared parameter node whose value contains its clean tag (first match
// wins). Placeholders without a matching node still get a descriptor with an
// inferred type and a self-mapped parameter name. Duplicate placeholders
// collapse to a single descriptor.
func BuildCatalog(template string, params []TemplateParameter) *Catalog {
	c := &Catalog{
		byKey:      make(map[string]int),
		paramNames: make(map[string]string),
	}

	for _, fullTag := range placeholderPattern.FindAllString(template, -1) {
		cleanTag := strings.NewReplacer("{", "", "}", "", "?", "").Replace(fullTag)
		key := strings.ReplaceAll(cleanTag, ":", "_")
		if _, seen := c.byKey[key]; seen {
			continue
		}

		d := Descriptor{
			Key:      key,
			CleanTag: cleanTag,
			FullTag:  fullTag,
		}

		if node, ok := matchParameter(params, cleanTag); ok {
			if node.Name != "" {
				c.paramNames[node.Name] = key
			}
			d.Type = inferType(node.Value)
			d.Title = node.Title
			d.Pattern = node.Pattern
			d.Minimum = node.Minimum
			d.MinInclusive = node.MinInclusive
			d.MaxInclusive = node.MaxInclusive
			if len(node.Options) > 0 {
				d.Type = TypeSelect
				d.Options = normalizeOptions(node.Options)
			}
		} else {
			c.paramNames[key] = key
			d.Type = inferType(key)
		}

		c.byKey[key] = len(c.descriptors)
		c.descriptors = append(c.descriptors, d)
	}

	return c
}

// matchParameter returns the first declared parameter whose value attribute
// contains the clean tag. Nodes without a value attribute cannot match.
func matchParameter(params []TemplateParameter, cleanTag string) (TemplateParameter, bool) {
	for _, p := range params {
		if p.Value != "" && strings.Contains(p.Value, cleanTag) {
			return p, true
		}
	}
	return TemplateParameter{}, false
}

// inferType classifies a parameter from its value attribute or key: anything
// mentioning "time" is a date, everything else free text.
func inferType(s string) Type {
	if strings.Contains(s, "time") {
		return TypeDate
	}
	return TypeText
}

func normalizeOptions(options []Option) []Option {
	out := make([]Option, len(options))
	for i, opt := range options {
		if opt.Label == "" {
			opt.Label = opt.Value
		}
		out[i] = opt
	}
	return out
}

// Descriptors returns the catalog's descriptors in first-seen template order.
func (c *Catalog) Descriptors() []Descriptor {
	out := make([]Descriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

// Get returns the descriptor for an internal key.
func (c *Catalog) Get(key string) (Descriptor, bool) {
	if i, ok := c.byKey[key]; ok {
		return c.descriptors[i], true
	}
	return Descriptor{}, false
}

// ParamNames returns the mapping from protocol parameter name to internal
// key. Placeholders without a declared parameter node map to themselves.
func (c *Catalog) ParamNames() map[string]string {
	out := make(map[string]string, len(c.paramNames))
	for k, v := range c.paramNames {
		out[k] = v
	}
	return out
}

// Len returns the number of descriptors in the catalog.
func (c *Catalog) Len() int {
	return len(c.descriptors)
}
