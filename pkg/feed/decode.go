package feed

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-opensearch/internal/xmltree"
)

// Protocol namespaces
const (
	nsAtom       = "http://www.w3.org/2005/Atom"
	nsOpenSearch = "http://a9.com/-/spec/opensearch/1.1/"
	nsOWS        = "http://www.opengis.net/ows/2.0"
	nsSOAPEnv    = "http://www.w3.org/2003/05/soap-envelope"
)

// Result is the decoded outcome of one search response. On success Entries
// and Pagination are populated; on an error status only Diagnostics is, so
// the caller's previous state survives a failed page fetch.
type Result struct {
	Entries    []Entry
	Pagination Pagination

	// DescriptionURL is the description-document URL the feed advertises
	// via its link[rel=search], when present.
	DescriptionURL string

	// Diagnostics collects human-readable error messages: the endpoint
	// status line, decoded protocol faults, and parse failures.
	Diagnostics []string
}

// Decode classifies a search response and decodes its body. The body is
// parsed as XML regardless of status so protocol faults can be extracted
// from error responses; nothing Decode encounters is fatal.
func Decode(statusCode int, reason string, body []byte) *Result {
	res := &Result{}
	root, parseErr := xmltree.Parse(body)

	if statusCode != http.StatusOK {
		res.Diagnostics = append(res.Diagnostics,
			fmt.Sprintf("Endpoint returned: %d - %s", statusCode, reason))
		if parseErr == nil {
			if fault := extractFault(root); fault != "" {
				res.Diagnostics = append(res.Diagnostics, fault)
			}
		}
		return res
	}

	if parseErr != nil {
		res.Diagnostics = append(res.Diagnostics,
			fmt.Sprintf("failed to parse feed: %v", parseErr))
		return res
	}

	scope := feedScope(root)
	res.Pagination = decodePagination(scope)

	if link := xmltree.FindChild(scope, nsAtom, "link", map[string]string{"rel": "search"}); link != nil {
		res.DescriptionURL = link.SelectAttrValue("href", "")
	}

	entries := xmltree.FindChildren(scope, nsAtom, "entry")
	if len(entries) == 0 && res.Pagination.TotalResults > 0 {
		entries = xmltree.FindChildren(scope, "", "item")
	}
	for _, el := range entries {
		res.Entries = append(res.Entries, convertEntry(el))
	}

	return res
}

// feedScope returns the element the feed's metadata hangs off: the root for
// Atom, the channel element for RSS.
func feedScope(root *etree.Element) *etree.Element {
	if root.Tag == "rss" {
		if channel := xmltree.FindChild(root, "", "channel", nil); channel != nil {
			return channel
		}
	}
	return root
}

// extractFault pulls a protocol fault out of an error response: an OWS
// Exception (code, locator, description) or, failing that, a SOAP fault
// reason text. Returns "" when the body carries neither.
func extractFault(root *etree.Element) string {
	if exc := findFault(root, nsOWS, "Exception"); exc != nil {
		code := exc.SelectAttrValue("exceptionCode", "")
		locator := exc.SelectAttrValue("locator", "")
		text := strings.TrimSpace(xmltree.ChildText(exc, nsOWS, "ExceptionText"))
		return fmt.Sprintf("Exception code: \"%s\"\n\tLocator: \"%s\"\n\tDescription: \"%s\"",
			code, locator, text)
	}
	if text := findFault(root, nsSOAPEnv, "Text"); text != nil {
		return strings.TrimSpace(text.Text())
	}
	return ""
}

func findFault(root *etree.Element, ns, local string) *etree.Element {
	if xmltree.Matches(root, ns, local) {
		return root
	}
	return xmltree.FindDescendant(root, ns, local)
}
