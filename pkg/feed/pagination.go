package feed

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-opensearch/internal/xmltree"
)

// PageRef is the query-parameter set needed to fetch one page, keyed by
// parameter name. For explicit Atom navigation links it holds the link's
// trailing query parameters; for synthesized references it holds a single
// "startIndex" entry.
type PageRef map[string]string

// Pagination describes the position of a result page within the full result
// set. Counts default to 0 when the feed omits them.
type Pagination struct {
	TotalResults int
	StartIndex   int
	ItemsPerPage int

	First PageRef
	Prev  PageRef
	Next  PageRef
	Last  PageRef

	// QueryParams mirrors the trailing query parameters of the feed's
	// self link.
	QueryParams PageRef
}

// decodePagination reads the OpenSearch counts and Atom navigation links
// from the feed scope and synthesizes missing navigation references from the
// counts. When ItemsPerPage is 0 no page arithmetic is possible, so only the
// first-page reference is synthesized.
func decodePagination(scope *etree.Element) Pagination {
	p := Pagination{
		TotalResults: intText(scope, nsOpenSearch, "totalResults"),
		StartIndex:   intText(scope, nsOpenSearch, "startIndex"),
		ItemsPerPage: intText(scope, nsOpenSearch, "itemsPerPage"),
	}

	p.First = hrefParams(scope, "first")
	p.Prev = hrefParams(scope, "previous")
	p.Next = hrefParams(scope, "next")
	p.Last = hrefParams(scope, "last")
	p.QueryParams = hrefParams(scope, "self")

	if p.TotalResults > 0 {
		if len(p.First) == 0 {
			p.First = PageRef{"startIndex": "1"}
		}
		if p.ItemsPerPage > 0 {
			if len(p.Prev) == 0 {
				prev := p.StartIndex - p.ItemsPerPage
				if prev <= 0 {
					prev = 1
				}
				p.Prev = PageRef{"startIndex": strconv.Itoa(prev)}
			}
			if len(p.Next) == 0 {
				next := p.StartIndex + p.ItemsPerPage
				if next >= p.TotalResults {
					next = p.TotalResults - p.ItemsPerPage
				}
				p.Next = PageRef{"startIndex": strconv.Itoa(next)}
			}
			if len(p.Last) == 0 {
				rem := p.TotalResults % p.ItemsPerPage
				last := p.TotalResults - rem + 1
				if rem == 0 {
					last = p.TotalResults - p.ItemsPerPage + 1
				}
				p.Last = PageRef{"startIndex": strconv.Itoa(last)}
			}
		}
	}

	return p
}

// hrefParams extracts the trailing query parameters of the Atom link with
// the given rel: everything after the first '&' in the href, split on '&'
// and then on '='. Links without parameters yield an empty map.
func hrefParams(scope *etree.Element, rel string) PageRef {
	out := PageRef{}
	link := xmltree.FindChild(scope, nsAtom, "link", map[string]string{"rel": rel})
	if link == nil {
		return out
	}
	href := link.SelectAttrValue("href", "")
	idx := strings.Index(href, "&")
	if idx <= 0 {
		return out
	}
	for _, pair := range strings.Split(href[idx+1:], "&") {
		if k, v, ok := strings.Cut(pair, "="); ok {
			out[k] = v
		}
	}
	return out
}

// intText parses the integer text of the first matching child, defaulting
// to 0 when absent or malformed.
func intText(scope *etree.Element, ns, local string) int {
	n, err := strconv.Atoi(strings.TrimSpace(xmltree.ChildText(scope, ns, local)))
	if err != nil {
		return 0
	}
	return n
}
